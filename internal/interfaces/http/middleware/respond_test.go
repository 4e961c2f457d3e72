package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abortWith(err error) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		AbortWithError(c, err)
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	return w
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation error has field errors", func(t *testing.T) {
		w := abortWith(shared.NewValidationError("Password cannot exceed 72 bytes"))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp dto.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Password cannot exceed 72 bytes", resp.Detail)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, []string{"body"}, resp.Errors[0].Loc)
		assert.Equal(t, "Password cannot exceed 72 bytes", resp.Errors[0].Msg)
		assert.Equal(t, "value_error", resp.Errors[0].Type)
	})

	t.Run("not found keeps the detail body", func(t *testing.T) {
		w := abortWith(shared.NewNotFoundError("Category", "abc"))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Category with identifier abc not found"}`, w.Body.String())
	})

	t.Run("unauthorized sets the bearer challenge", func(t *testing.T) {
		w := abortWith(shared.ErrUnauthorized)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})

	t.Run("foreign errors are internal", func(t *testing.T) {
		w := abortWith(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail":"Internal server error"}`, w.Body.String())
	})
}
