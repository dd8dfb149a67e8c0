package efa

import (
	"errors"
	"fmt"

	"github.com/mobil-koeln/efa-go/command"
)

// Common errors
var (
	// ErrFormatNotSupported indicates a requested response format other
	// than rapidJSON. Raised at client construction, before any I/O.
	ErrFormatNotSupported = errors.New("response format not supported")

	// ErrNotImplemented indicates a remote operation whose response
	// schema is not known yet. Calling it fails unconditionally.
	ErrNotImplemented = command.ErrNotImplemented

	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest indicates the server rejected the query
	ErrInvalidRequest = errors.New("invalid request")

	// ErrServerError indicates a server-side error
	ErrServerError = errors.New("server error")
)

// APIError represents a non-200 answer from the EFA endpoint. There is
// no retry anywhere in this client; the error surfaces immediately.
type APIError struct {
	StatusCode int
	Status     string
	Operation  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s (operation: %s)", e.StatusCode, e.Status, e.Operation)
}

// Is implements errors.Is for APIError
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrServerError:
		return e.StatusCode >= 500
	case ErrInvalidRequest:
		return e.StatusCode == 400
	}
	return false
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, status, operation string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Operation:  operation,
	}
}

// ValidationError reports a request the façade refused before any
// network activity, e.g. an empty stop identifier.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrMissingField builds the validation error for a required input that
// was left empty.
func ErrMissingField(field string) error {
	return &ValidationError{Field: field, Message: "field is required"}
}

// ErrInvalidValue builds the validation error for an input outside its
// legal domain.
func ErrInvalidValue(field string, value any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf("invalid value: %v", value)}
}
