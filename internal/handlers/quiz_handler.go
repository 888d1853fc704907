package handlers

import (
	"net/http"
	"strconv"

	"github.com/Ideal-Pranav/Career-finder/internal/services"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/gin-gonic/gin"
)

// maxMatchLimit caps the ?limit= query parameter on quiz submission.
const maxMatchLimit = 20

type QuizHandler struct {
	BaseHandler
	quizService services.QuizService
	validator   *utils.Validator
}

func NewQuizHandler(quizService services.QuizService, validator *utils.Validator, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler: NewBaseHandler(logger),
		quizService: quizService,
		validator:   validator,
	}
}

// GetQuestions returns the ordered question bank for the quiz flow. Only
// option texts are exposed; weight maps stay server-side.
// @Summary List quiz questions
// @Tags quiz
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /quiz/questions [get]
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	questions := h.quizService.Questions(c.Request.Context())
	c.JSON(http.StatusOK, SuccessResponse{
		Message: "questions retrieved",
		Data:    questions,
	})
}

// SubmitQuiz scores a completed answer set and returns the ranked matches.
// @Summary Submit quiz answers
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body services.SubmitQuizRequest true "Answer set"
// @Param limit query int false "Max matches to return (default 5)"
// @Success 200 {object} SuccessResponse{data=services.QuizResultResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	h.LogRequest(c, "quiz submission received")

	var req services.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Details: err.Error(),
		})
		return
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxMatchLimit {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "limit must be an integer between 1 and 20",
			})
			return
		}
		req.Limit = limit
	}

	result, err := h.quizService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "quiz scored",
		Data:    result,
	})
}
