package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that the input data is invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// Client-facing messages carried by domain errors.
const (
	MsgResourceNotFound = "Resource not found"
	MsgReviewNotFound   = "Review Not Found"
	MsgBadRequest       = "Bad Request"
)

// ValidationError represents a validation error for a specific field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotFoundError provides details about a not found entity. Message is the
// text reported to API clients.
type NotFoundError struct {
	Entity  string
	ID      string
	Message string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a NotFoundError with the generic client message.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{
		Entity:  entity,
		ID:      id,
		Message: MsgResourceNotFound,
	}
}

// NewReviewNotFoundError creates the NotFoundError reported when a single
// review lookup finds nothing.
func NewReviewNotFoundError(id int) *NotFoundError {
	return &NotFoundError{
		Entity:  "review",
		ID:      fmt.Sprint(id),
		Message: MsgReviewNotFound,
	}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NotFoundMessage returns the client message for err when it is a
// NotFoundError, falling back to MsgResourceNotFound.
func NotFoundMessage(err error) string {
	var nf *NotFoundError
	if errors.As(err, &nf) && nf.Message != "" {
		return nf.Message
	}
	return MsgResourceNotFound
}
