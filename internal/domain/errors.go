package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned when a request carries no credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when a credential is invalid or lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError describes a single invalid input field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel so errors.Is works against it.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
