package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Ideal-Pranav/Career-finder/internal/events"
	"github.com/Ideal-Pranav/Career-finder/internal/quiz"
	"github.com/Ideal-Pranav/Career-finder/internal/repositories"
	"github.com/Ideal-Pranav/Career-finder/internal/utils"
	"github.com/google/uuid"
)

// SubmitQuizRequest is one complete quiz attempt. An empty answer slice is a
// valid (degenerate) submission and yields an empty match list.
type SubmitQuizRequest struct {
	Answers []quiz.Answer `json:"answers" validate:"dive"`
	Limit   int           `json:"-"`
}

// QuizResultResponse is the scored, ranked outcome of one submission.
type QuizResultResponse struct {
	SubmissionID string             `json:"submission_id"`
	Matches      []quiz.CareerMatch `json:"matches"`
}

// QuizService exposes the question bank to front ends and turns submitted
// answer sets into ranked career matches.
type QuizService interface {
	Questions(ctx context.Context) []quiz.QuestionView
	Submit(ctx context.Context, req *SubmitQuizRequest) (*QuizResultResponse, error)
	ValidateBankAgainstCatalog(ctx context.Context) error
}

type quizService struct {
	engine       *quiz.Engine
	careers      repositories.CareerRepository
	publisher    events.EventPublisher
	logger       utils.Logger
	defaultLimit int
}

func NewQuizService(
	engine *quiz.Engine,
	careers repositories.CareerRepository,
	publisher events.EventPublisher,
	logger utils.Logger,
	defaultLimit int,
) QuizService {
	if defaultLimit < 1 {
		defaultLimit = quiz.DefaultMatchLimit
	}
	return &quizService{
		engine:       engine,
		careers:      careers,
		publisher:    publisher,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

func (s *quizService) Questions(ctx context.Context) []quiz.QuestionView {
	return s.engine.Bank().PublicView()
}

func (s *quizService) Submit(ctx context.Context, req *SubmitQuizRequest) (*QuizResultResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}

	matches, err := s.engine.ComputeMatches(req.Answers)
	if err != nil {
		// Fail-closed: a reference to a non-existent question or option
		// signals a corrupted or tampered payload; no partial result.
		return nil, err
	}

	ranked, err := quiz.Rank(matches, limit)
	if err != nil {
		return nil, err
	}

	s.resolveNames(ctx, ranked)

	result := &QuizResultResponse{
		SubmissionID: uuid.NewString(),
		Matches:      ranked,
	}

	event := &events.QuizCompletedEvent{
		SubmissionID: result.SubmissionID,
		AnswerCount:  len(req.Answers),
		MatchCount:   len(ranked),
		Timestamp:    time.Now().UTC(),
	}
	if len(ranked) > 0 {
		event.TopCareerID = ranked[0].CareerID
		event.TopMatchPercent = ranked[0].MatchPercentage
	}
	if err := s.publisher.PublishQuizCompleted(ctx, event); err != nil {
		// The user still gets their result if the event stream is down.
		s.logger.Warn("failed to publish quiz completed event",
			"submission_id", result.SubmissionID, "error", err)
	}

	s.logger.InfoContext(ctx, "quiz submission scored",
		"submission_id", result.SubmissionID,
		"answers", len(req.Answers),
		"matches", len(ranked))

	return result, nil
}

// resolveNames fills display names from the catalog. A missing catalog entry
// falls back to the career identifier; one stale entry never denies the user
// their ranked results.
func (s *quizService) resolveNames(ctx context.Context, matches []quiz.CareerMatch) {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.CareerID)
	}

	names, err := s.careers.DisplayNames(ctx, ids)
	if err != nil {
		s.logger.Warn("failed to resolve career display names", "error", err)
		names = map[string]string{}
	}

	for i := range matches {
		if name, ok := names[matches[i].CareerID]; ok && name != "" {
			matches[i].CareerName = name
		} else {
			matches[i].CareerName = matches[i].CareerID
		}
	}
}

// ValidateBankAgainstCatalog is the startup integrity pass: every career
// identifier referenced by the question bank should exist in the catalog.
// Mismatches are logged as warnings, never a runtime failure.
func (s *quizService) ValidateBankAgainstCatalog(ctx context.Context) error {
	known, err := s.careers.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog ids for bank validation: %w", err)
	}

	knownSet := make(map[string]bool, len(known))
	for _, id := range known {
		knownSet[id] = true
	}

	missing := 0
	for _, id := range s.engine.Bank().CareerIDs() {
		if !knownSet[id] {
			missing++
			s.logger.Warn("question bank references career absent from catalog", "career_id", id)
		}
	}
	if missing > 0 {
		s.logger.Warn("question bank validation finished with unresolved careers", "missing", missing)
	}
	return nil
}
