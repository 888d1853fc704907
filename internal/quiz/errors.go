package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAnswer marks a submitted answer that references an unknown
	// question or an out-of-range option index. A submission containing one
	// is rejected whole; scoring never produces a partial result from it.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrInvalidLimit marks a non-positive ranking limit.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

func errUnknownQuestion(questionID string) error {
	return fmt.Errorf("%w: unknown question %q", ErrInvalidAnswer, questionID)
}

func errOptionOutOfRange(questionID string, index, optionCount int) error {
	return fmt.Errorf("%w: option index %d out of range for question %q (%d options)",
		ErrInvalidAnswer, index, questionID, optionCount)
}
