package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func TestNewSystemHandler(t *testing.T) {
	h := NewSystemHandler(stubPinger{}, "inventorydb", "1.0.0")
	assert.NotNil(t, h)
	assert.False(t, h.startTime.IsZero())
}

func TestSystemHandler_Health(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"up"}`, w.Body.String())
}

func TestSystemHandler_Health_DatabaseDown(t *testing.T) {
	h := NewSystemHandler(stubPinger{err: errors.New("connection refused")}, "inventorydb", "1.0.0")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	h.Health(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","database":"down"}`, w.Body.String())
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler(stubPinger{}, "inventorydb", "1.0.0")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/system/info", nil)

	h.GetSystemInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SystemInfoResponse
	decode(t, w, &resp)
	assert.Equal(t, "inventorydb", resp.Name)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.NotEmpty(t, resp.GoVersion)
	assert.NotEmpty(t, resp.Uptime)
}
