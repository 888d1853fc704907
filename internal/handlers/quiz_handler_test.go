package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ideal-Pranav/Career-finder/internal/quiz"
	"github.com/Ideal-Pranav/Career-finder/internal/services"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQuizService is a hand-rolled QuizService for handler tests; the
// submit function is swapped per test case.
type stubQuizService struct {
	questions []quiz.QuestionView
	submit    func(ctx context.Context, req *services.SubmitQuizRequest) (*services.QuizResultResponse, error)
}

func (s *stubQuizService) Questions(ctx context.Context) []quiz.QuestionView {
	return s.questions
}

func (s *stubQuizService) Submit(ctx context.Context, req *services.SubmitQuizRequest) (*services.QuizResultResponse, error) {
	return s.submit(ctx, req)
}

func (s *stubQuizService) ValidateBankAgainstCatalog(ctx context.Context) error {
	return nil
}

func quizTestRouter(svc services.QuizService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewQuizHandler(svc, utils.NewValidator(), utils.NewDevelopmentLogger())

	router := gin.New()
	router.GET("/api/v1/quiz/questions", handler.GetQuestions)
	router.POST("/api/v1/quiz/submit", handler.SubmitQuiz)
	return router
}

func TestGetQuestions(t *testing.T) {
	svc := &stubQuizService{
		questions: []quiz.QuestionView{
			{ID: "int-1", Category: quiz.CategoryInterests, Text: "Which field?",
				Options: []quiz.OptionView{{Text: "Technology"}}},
		},
	}
	router := quizTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quiz/questions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "questions retrieved", resp.Message)
}

func TestSubmitQuizSuccess(t *testing.T) {
	svc := &stubQuizService{
		submit: func(ctx context.Context, req *services.SubmitQuizRequest) (*services.QuizResultResponse, error) {
			return &services.QuizResultResponse{
				SubmissionID: "sub-1",
				Matches: []quiz.CareerMatch{
					{CareerID: "eng-software", CareerName: "Software Engineer", MatchPercentage: 100},
				},
			}, nil
		},
	}
	router := quizTestRouter(svc)

	body := `{"answers":[{"question_id":"int-1","selected_option":0}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "eng-software")
	assert.Contains(t, w.Body.String(), "sub-1")
}

func TestSubmitQuizMalformedBody(t *testing.T) {
	router := quizTestRouter(&stubQuizService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/submit", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitQuizInvalidAnswerMapsTo400(t *testing.T) {
	svc := &stubQuizService{
		submit: func(ctx context.Context, req *services.SubmitQuizRequest) (*services.QuizResultResponse, error) {
			return nil, quiz.ErrInvalidAnswer
		},
	}
	router := quizTestRouter(svc)

	body := `{"answers":[{"question_id":"ghost","selected_option":0}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitQuizLimitValidation(t *testing.T) {
	var gotLimit int
	svc := &stubQuizService{
		submit: func(ctx context.Context, req *services.SubmitQuizRequest) (*services.QuizResultResponse, error) {
			gotLimit = req.Limit
			return &services.QuizResultResponse{SubmissionID: "sub-1", Matches: []quiz.CareerMatch{}}, nil
		},
	}
	router := quizTestRouter(svc)
	body := `{"answers":[]}`

	for _, bad := range []string{"0", "-1", "21", "abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/submit?limit="+bad, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", bad)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/submit?limit=3", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, gotLimit)
}
