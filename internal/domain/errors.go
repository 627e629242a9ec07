// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or an operation's input
	// fails validation. It is usually wrapped by a ValidationError that names
	// the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when an operation would violate a uniqueness rule,
	// such as two categories sharing a name.
	ErrConflict = errors.New("conflict")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidPriority is returned when a priority value is outside the known range.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidStatus is returned when a task status value is not recognized.
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, ErrValidation) {
		return fmt.Sprintf("%s: %s %s: %v", ErrValidation, e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Message)
}

// Unwrap exposes both ErrValidation and the more specific cause, so that
// errors.Is(err, ErrValidation) holds for every ValidationError.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil || errors.Is(e.Err, ErrValidation) {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}

// NewValidationError creates a ValidationError for the given field.
// err may be nil or a more specific sentinel such as ErrInvalidPriority.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// ConflictError reports that a value collides with an existing entity.
type ConflictError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface for ConflictError.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %q already exists", ErrConflict, e.Field, e.Value)
}

// Unwrap returns ErrConflict and, when present, the underlying cause.
func (e *ConflictError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConflict}
	}
	return []error{ErrConflict, e.Err}
}

// NewConflictError creates a ConflictError for the given field and value.
func NewConflictError(field, value string, err error) *ConflictError {
	return &ConflictError{
		Field: field,
		Value: value,
		Err:   err,
	}
}
