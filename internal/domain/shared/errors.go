// Package shared provides the domain errors and base entity used by every bounded context.
package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same error code, so that
// errors.Is(err, ErrNotFound) matches any not-found error regardless of message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes
const (
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeBadRequest      = "BAD_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeValidation      = "VALIDATION_ERROR"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternal        = "INTERNAL_ERROR"
)

// Common domain errors
var (
	ErrNotFound        = NewDomainError(CodeNotFound, "Resource not found")
	ErrConflict        = NewDomainError(CodeConflict, "Resource already exists")
	ErrBadRequest      = NewDomainError(CodeBadRequest, "Malformed request data")
	ErrUnauthorized    = NewDomainError(CodeUnauthorized, "Could not validate credentials")
	ErrInvalidInput    = NewDomainError(CodeValidation, "Invalid input provided")
	ErrTooManyRequests = NewDomainError(CodeTooManyRequests, "Too many requests. Please try again later.")
	ErrInternal        = NewDomainError(CodeInternal, "Internal server error")
)

// NewNotFoundError builds the not-found error for a lookup of model by identifier.
func NewNotFoundError(model string, identifier any) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s with identifier %v not found", model, identifier))
}

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}
