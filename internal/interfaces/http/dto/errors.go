// Package dto holds the wire shapes shared by HTTP handlers.
package dto

import (
	"net/http"

	"github.com/inventorydb/backend/internal/domain/shared"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeNotFound:        http.StatusNotFound,
	shared.CodeConflict:        http.StatusConflict,
	shared.CodeBadRequest:      http.StatusBadRequest,
	shared.CodeUnauthorized:    http.StatusUnauthorized,
	shared.CodeValidation:      http.StatusUnprocessableEntity,
	shared.CodeTooManyRequests: http.StatusTooManyRequests,
	shared.CodeInternal:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// FieldError describes one rejected request field
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorResponse is the 422 body. Detail is a summary, Errors lists
// every rejected field.
type ValidationErrorResponse struct {
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// NewValidationErrorResponse creates a 422 response body
func NewValidationErrorResponse(detail string, errs []FieldError) ValidationErrorResponse {
	if errs == nil {
		errs = []FieldError{}
	}
	return ValidationErrorResponse{Detail: detail, Errors: errs}
}
