package services

import (
	"errors"

	"github.com/Ideal-Pranav/Career-finder/internal/quiz"
)

// ===== COMMON SERVICE ERRORS =====

var (
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrInternalError    = errors.New("internal server error")

	ErrCareerNotFound      = errors.New("career not found")
	ErrScholarshipNotFound = errors.New("scholarship not found")
)

// ===== ERROR CLASSIFIERS =====

// IsNotFound checks if the error represents a "not found" condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCareerNotFound) ||
		errors.Is(err, ErrScholarshipNotFound)
}

// IsInvalidAnswer checks if the error came from a rejected quiz submission:
// an answer referencing an unknown question or an out-of-range option.
func IsInvalidAnswer(err error) bool {
	return errors.Is(err, quiz.ErrInvalidAnswer)
}

// IsValidation checks if the error represents a client-input validation
// failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrBadRequest) ||
		errors.Is(err, quiz.ErrInvalidLimit)
}
