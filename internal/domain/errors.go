package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is wrapped by ValidationError, which names the failing field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidSubmissionStatus is returned when a contact submission
	// carries a status outside the known set.
	ErrInvalidSubmissionStatus = errors.New("invalid submission status")
)

// ValidationError describes a single failed field check. Message is safe to
// show to the person who filled in the form.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. err is usually
// ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel so errors.Is(err, ErrValidation) works.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
