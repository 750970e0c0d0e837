package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrServiceUnavailable marks a failed word-service lookup. Callers
	// recover by treating the result as an empty word list.
	ErrServiceUnavailable = errors.New("word service unavailable")

	// ErrNoTopics means no topics could be resolved from the user input.
	ErrNoTopics = errors.New("no topics resolved")

	// ErrInvalidInput means the user input was empty or whitespace-only.
	ErrInvalidInput = errors.New("invalid input")

	ErrValidation = errors.New("validation error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
