package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/inventorydb/backend/internal/interfaces/http/dto"
)

// Request locations reported in FieldError.Loc
const (
	LocBody  = "body"
	LocQuery = "query"
	LocPath  = "path"
)

// ValidationFailedDetail is the detail of 422 responses for rejected bindings
const ValidationFailedDetail = "Request validation failed"

var setupOnce sync.Once

// SetupValidator configures gin's validator to report json (or form) field
// names. It is safe to call more than once.
func SetupValidator() {
	setupOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name == "" {
					name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
				}
				return name
			})
		}
	})
}

// FormatValidationErrors converts a binding error into per-field errors.
// Validation failures, JSON type mismatches and malformed JSON are all
// reported against the given location.
func FormatValidationErrors(err error, location string) []dto.FieldError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]dto.FieldError, 0, len(validationErrors))
		for _, e := range validationErrors {
			details = append(details, dto.FieldError{
				Loc:  []string{location, e.Field()},
				Msg:  getValidationMessage(e),
				Type: e.Tag(),
			})
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []dto.FieldError{{
			Loc:  []string{location, typeErr.Field},
			Msg:  "Must be of type " + typeErr.Type.String(),
			Type: "type_error",
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []dto.FieldError{{
			Loc:  []string{location},
			Msg:  "Malformed JSON body",
			Type: "json_invalid",
		}}
	}

	return []dto.FieldError{{
		Loc:  []string{location},
		Msg:  err.Error(),
		Type: "value_error",
	}}
}

// HandleValidationError aborts with 422 for a rejected request body
func HandleValidationError(c *gin.Context, err error) {
	HandleValidationErrorAt(c, LocBody, err)
}

// HandleValidationErrorAt aborts with 422 for a rejected query, path or body
// value. A body cut off by BodyLimit while binding is a 413.
func HandleValidationErrorAt(c *gin.Context, location string, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		AbortWithDetail(c, http.StatusRequestEntityTooLarge, RequestTooLargeDetail)
		return
	}
	AbortWithValidationErrors(c, FormatValidationErrors(err, location))
}

// AbortWithValidationErrors aborts with 422 and the given field errors
func AbortWithValidationErrors(c *gin.Context, details []dto.FieldError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity,
		dto.NewValidationErrorResponse(ValidationFailedDetail, details))
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "uuid":
		return "Invalid UUID format"
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "lte":
		return "Must be less than or equal to " + e.Param()
	case "ne":
		return "Must not be " + e.Param()
	case "iso3166_1_alpha2":
		return "Must be an ISO 3166-1 alpha-2 country code"
	case "alphanum":
		return "Must be alphanumeric"
	default:
		return "Invalid value"
	}
}
