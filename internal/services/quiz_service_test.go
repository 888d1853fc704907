package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Ideal-Pranav/Career-finder/internal/events"
	"github.com/Ideal-Pranav/Career-finder/internal/quiz"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T) *quiz.Engine {
	t.Helper()
	bank, err := quiz.NewBank([]quiz.Question{
		{
			ID:       "q-interests",
			Category: quiz.CategoryInterests,
			Text:     "Which field excites you?",
			Options: []quiz.Option{
				{Text: "Technology", Weights: map[string]float64{"eng-software": 1.0}},
				{Text: "Healthcare", Weights: map[string]float64{"med-mbbs": 1.0}},
			},
		},
		{
			ID:       "q-skills",
			Category: quiz.CategorySkills,
			Text:     "Strongest skill?",
			Options: []quiz.Option{
				{Text: "Coding", Weights: map[string]float64{"eng-software": 1.0, "eng-data-science": 0.5}},
				{Text: "Empathy", Weights: map[string]float64{"med-nursing": 0.9}},
			},
		},
	})
	require.NoError(t, err)

	engine, err := quiz.NewEngine(bank, quiz.DefaultCategoryWeights())
	require.NoError(t, err)
	return engine
}

func TestQuizServiceQuestionsHideWeights(t *testing.T) {
	svc := NewQuizService(testEngine(t), new(MockCareerRepository), &events.MockEventPublisher{}, utils.NewDevelopmentLogger(), 0)

	questions := svc.Questions(context.Background())
	require.Len(t, questions, 2)
	assert.Equal(t, "q-interests", questions[0].ID)
	assert.Equal(t, "Technology", questions[0].Options[0].Text)
}

func TestQuizServiceSubmitResolvesNames(t *testing.T) {
	repo := new(MockCareerRepository)
	repo.On("DisplayNames", mock.Anything, mock.Anything).Return(map[string]string{
		"eng-software": "Software Engineer",
	}, nil)
	publisher := &events.MockEventPublisher{}
	svc := NewQuizService(testEngine(t), repo, publisher, utils.NewDevelopmentLogger(), 0)

	result, err := svc.Submit(context.Background(), &SubmitQuizRequest{
		Answers: []quiz.Answer{
			{QuestionID: "q-interests", SelectedOption: 0},
			{QuestionID: "q-skills", SelectedOption: 0},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.SubmissionID)
	require.Len(t, result.Matches, 2)

	assert.Equal(t, "eng-software", result.Matches[0].CareerID)
	assert.Equal(t, "Software Engineer", result.Matches[0].CareerName)
	assert.Equal(t, 100, result.Matches[0].MatchPercentage)

	// No catalog entry: display name falls back to the identifier.
	assert.Equal(t, "eng-data-science", result.Matches[1].CareerID)
	assert.Equal(t, "eng-data-science", result.Matches[1].CareerName)

	require.Len(t, publisher.QuizCompleted, 1)
	event := publisher.QuizCompleted[0]
	assert.Equal(t, result.SubmissionID, event.SubmissionID)
	assert.Equal(t, "eng-software", event.TopCareerID)
	assert.Equal(t, 100, event.TopMatchPercent)
	assert.Equal(t, 2, event.AnswerCount)
	repo.AssertExpectations(t)
}

func TestQuizServiceSubmitNameLookupFailureFallsBack(t *testing.T) {
	repo := new(MockCareerRepository)
	repo.On("DisplayNames", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	svc := NewQuizService(testEngine(t), repo, &events.MockEventPublisher{}, utils.NewDevelopmentLogger(), 0)

	result, err := svc.Submit(context.Background(), &SubmitQuizRequest{
		Answers: []quiz.Answer{{QuestionID: "q-interests", SelectedOption: 0}},
	})
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "eng-software", result.Matches[0].CareerName)
}

func TestQuizServiceSubmitInvalidAnswerFailsClosed(t *testing.T) {
	publisher := &events.MockEventPublisher{}
	svc := NewQuizService(testEngine(t), new(MockCareerRepository), publisher, utils.NewDevelopmentLogger(), 0)

	result, err := svc.Submit(context.Background(), &SubmitQuizRequest{
		Answers: []quiz.Answer{
			{QuestionID: "q-interests", SelectedOption: 0},
			{QuestionID: "nope", SelectedOption: 0},
		},
	})
	require.ErrorIs(t, err, quiz.ErrInvalidAnswer)
	assert.True(t, IsInvalidAnswer(err))
	assert.Nil(t, result)
	assert.Empty(t, publisher.QuizCompleted)
}

func TestQuizServiceSubmitEmptyAnswers(t *testing.T) {
	repo := new(MockCareerRepository)
	repo.On("DisplayNames", mock.Anything, mock.Anything).Return(map[string]string{}, nil)
	publisher := &events.MockEventPublisher{}
	svc := NewQuizService(testEngine(t), repo, publisher, utils.NewDevelopmentLogger(), 0)

	result, err := svc.Submit(context.Background(), &SubmitQuizRequest{})
	require.NoError(t, err)
	assert.Empty(t, result.Matches)

	require.Len(t, publisher.QuizCompleted, 1)
	assert.Empty(t, publisher.QuizCompleted[0].TopCareerID)
}

func TestQuizServiceSubmitHonorsLimit(t *testing.T) {
	repo := new(MockCareerRepository)
	repo.On("DisplayNames", mock.Anything, mock.Anything).Return(map[string]string{}, nil)
	svc := NewQuizService(testEngine(t), repo, &events.MockEventPublisher{}, utils.NewDevelopmentLogger(), 0)

	result, err := svc.Submit(context.Background(), &SubmitQuizRequest{
		Answers: []quiz.Answer{
			{QuestionID: "q-interests", SelectedOption: 0},
			{QuestionID: "q-skills", SelectedOption: 0},
		},
		Limit: 1,
	})
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "eng-software", result.Matches[0].CareerID)
}

func TestQuizServiceValidateBankAgainstCatalog(t *testing.T) {
	repo := new(MockCareerRepository)
	repo.On("ListIDs", mock.Anything).Return([]string{"eng-software", "med-mbbs"}, nil)
	svc := NewQuizService(testEngine(t), repo, &events.MockEventPublisher{}, utils.NewDevelopmentLogger(), 0)

	// Missing catalog entries only warn, they never fail startup.
	assert.NoError(t, svc.ValidateBankAgainstCatalog(context.Background()))

	broken := new(MockCareerRepository)
	broken.On("ListIDs", mock.Anything).Return(nil, errors.New("db down"))
	svc = NewQuizService(testEngine(t), broken, &events.MockEventPublisher{}, utils.NewDevelopmentLogger(), 0)
	assert.Error(t, svc.ValidateBankAgainstCatalog(context.Background()))
}
