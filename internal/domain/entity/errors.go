package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrBlankText indicates the input text is empty or whitespace-only.
	ErrBlankText = errors.New("text is required")

	// ErrInsufficientSentences indicates the input contains fewer than
	// two sentences. Summarizing a single sentence is refused rather
	// than degraded to returning it unchanged.
	ErrInsufficientSentences = errors.New("text must contain at least two sentences")

	// ErrInvalidCount indicates the requested summary sentence count
	// is not a positive integer.
	ErrInvalidCount = errors.New("sentence count must be positive")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
