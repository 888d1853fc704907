package events

import "time"

type EventType string

const (
	EventQuizCompleted   EventType = "quiz.completed"
	EventCareersImported EventType = "careers.imported"
)

// QuizCompletedEvent is emitted after a quiz submission has been scored and
// ranked. It carries only the headline result, never the raw answers.
type QuizCompletedEvent struct {
	SubmissionID    string    `json:"submission_id"`
	AnswerCount     int       `json:"answer_count"`
	MatchCount      int       `json:"match_count"`
	TopCareerID     string    `json:"top_career_id,omitempty"`
	TopMatchPercent int       `json:"top_match_percent,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// CareersImportedEvent is emitted after a catalog import job finishes.
type CareersImportedEvent struct {
	JobID        string    `json:"job_id"`
	TotalRows    int       `json:"total_rows"`
	SuccessCount int       `json:"success_count"`
	ErrorCount   int       `json:"error_count"`
	Timestamp    time.Time `json:"timestamp"`
}
