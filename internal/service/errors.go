// Package service provides application-level services for managing tasks and categories.
package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// Error handling principles:
// 1. Expected failures are returned as domain errors: callers check
//    errors.Is(err, domain.ErrValidation) or errors.Is(err, domain.ErrConflict).
// 2. A missing entity is not an error: lookups return (nil, nil) and
//    deletes return (false, nil).
// 3. Unexpected errors are wrapped in ServiceError with the failing operation.
// 4. The API layer maps these to HTTP status codes.

// ServiceError wraps unexpected errors from a service with context.
type ServiceError struct {
	// Service names the service that failed (e.g., "task", "category")
	Service string
	// Operation is the operation that failed (e.g., "create_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps err for the given service and operation.
// Validation and conflict errors are returned unchanged so callers can
// match them without unwrapping through service context.
func newServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrConflict) {
		return err
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewCategoryServiceError creates an error for a failed category service operation.
func NewCategoryServiceError(operation, message string, err error) error {
	return newServiceError("category", operation, message, err)
}

// NewTaskServiceError creates an error for a failed task service operation.
func NewTaskServiceError(operation, message string, err error) error {
	return newServiceError("task", operation, message, err)
}

// errNilDependency is returned by constructors when a required dependency is missing.
func errNilDependency(service, name string) error {
	return &ServiceError{
		Service:   service,
		Operation: "create_service",
		Message:   name + " cannot be nil",
	}
}
