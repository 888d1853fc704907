package handlers

import (
	"net/http"

	"github.com/Ideal-Pranav/Career-finder/internal/services"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	careerHandler      *CareerHandler
	scholarshipHandler *ScholarshipHandler
	quizHandler        *QuizHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *utils.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		careerHandler:      NewCareerHandler(serviceManager.Career(), serviceManager.ImportExport(), logger),
		scholarshipHandler: NewScholarshipHandler(serviceManager.Scholarship(), logger),
		quizHandler:        NewQuizHandler(serviceManager.Quiz(), validator, logger),
	}
}

// SetupRoutes sets up all API routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "career-finder",
		})
	})

	v1 := router.Group("/api/v1")
	{
		careers := v1.Group("/careers")
		{
			careers.GET("", hm.careerHandler.ListCareers)
			careers.GET("/:id", hm.careerHandler.GetCareer)
		}

		scholarships := v1.Group("/scholarships")
		{
			scholarships.GET("", hm.scholarshipHandler.ListScholarships)
			scholarships.GET("/:id", hm.scholarshipHandler.GetScholarship)
		}

		quiz := v1.Group("/quiz")
		{
			quiz.GET("/questions", hm.quizHandler.GetQuestions)
			quiz.POST("/submit", hm.quizHandler.SubmitQuiz)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/careers/import", hm.careerHandler.ImportCareers)
			admin.GET("/careers/export", hm.careerHandler.ExportCareers)
		}
	}
}
