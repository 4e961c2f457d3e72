package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/inventorydb/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationInput struct {
	Email    string `json:"email" binding:"required,email"`
	Country  string `json:"country" binding:"required,iso3166_1_alpha2"`
	Quantity int    `json:"quantity" binding:"gte=0"`
}

func newValidationRouter() *gin.Engine {
	SetupValidator()

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req validationInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, req)
	})
	return router
}

func postJSON(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeValidation(t *testing.T, w *httptest.ResponseRecorder) dto.ValidationErrorResponse {
	t.Helper()
	var resp dto.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSetupValidator(t *testing.T) {
	SetupValidator()
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError_FieldErrors(t *testing.T) {
	router := newValidationRouter()

	w := postJSON(router, `{"email": "invalid", "country": "XX", "quantity": -1}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeValidation(t, w)
	assert.Equal(t, ValidationFailedDetail, resp.Detail)
	require.Len(t, resp.Errors, 3)

	byField := map[string]dto.FieldError{}
	for _, e := range resp.Errors {
		require.Len(t, e.Loc, 2)
		assert.Equal(t, LocBody, e.Loc[0])
		byField[e.Loc[1]] = e
	}
	assert.Equal(t, "email", byField["email"].Type)
	assert.Equal(t, "Invalid email format", byField["email"].Msg)
	assert.Equal(t, "iso3166_1_alpha2", byField["country"].Type)
	assert.Equal(t, "gte", byField["quantity"].Type)
}

func TestHandleValidationError_MissingFields(t *testing.T) {
	router := newValidationRouter()

	w := postJSON(router, `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeValidation(t, w)
	require.Len(t, resp.Errors, 2)
	for _, e := range resp.Errors {
		assert.Equal(t, "required", e.Type)
		assert.Equal(t, "This field is required", e.Msg)
	}
}

func TestHandleValidationError_TypeMismatch(t *testing.T) {
	router := newValidationRouter()

	w := postJSON(router, `{"email": "a@x.com", "country": "DE", "quantity": "ten"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeValidation(t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, []string{LocBody, "quantity"}, resp.Errors[0].Loc)
	assert.Equal(t, "type_error", resp.Errors[0].Type)
}

func TestHandleValidationError_MalformedJSON(t *testing.T) {
	router := newValidationRouter()

	for _, body := range []string{`{"email": `, `not json`, ``} {
		w := postJSON(router, body)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, body)
		resp := decodeValidation(t, w)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "json_invalid", resp.Errors[0].Type, body)
	}
}

func TestHandleValidationError_Valid(t *testing.T) {
	router := newValidationRouter()

	w := postJSON(router, `{"email": "test@example.com", "country": "DE", "quantity": 3}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleValidationErrorAt(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		HandleValidationErrorAt(c, LocQuery, errors.New("invalid UUID length: 3"))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeValidation(t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, []string{LocQuery}, resp.Errors[0].Loc)
	assert.Equal(t, "value_error", resp.Errors[0].Type)
}

func TestGetValidationMessage(t *testing.T) {
	type input struct {
		Name  string `binding:"min=3"`
		Count int    `binding:"max=5"`
		Code  string `binding:"len=2"`
	}

	SetupValidator()
	err := binding.Validator.ValidateStruct(&input{Name: "ab", Count: 9, Code: "abc"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	messages := map[string]string{}
	for _, e := range verrs {
		messages[e.Field()] = getValidationMessage(e)
	}
	assert.Equal(t, "Must be at least 3 characters", messages["Name"])
	assert.Equal(t, "Must be at most 5", messages["Count"])
	assert.Equal(t, "Must be exactly 2 characters", messages["Code"])
}
