package telemetry

import (
	"context"
	"runtime/pprof"
	"strings"
	"testing"

	"github.com/inventorydb/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewProfiler_Disabled(t *testing.T) {
	p, err := NewProfiler(config.TelemetryConfig{}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, p.IsEnabled())
	assert.NoError(t, p.Stop())
	assert.NoError(t, p.Stop())
}

func TestNewProfiler_Validation(t *testing.T) {
	_, err := NewProfiler(config.TelemetryConfig{ProfilingEnabled: true, ServiceName: "svc"}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewProfiler(config.TelemetryConfig{ProfilingEnabled: true, ProfilingServerURL: "http://localhost:4040"}, zap.NewNop())
	assert.Error(t, err)
}

func TestLabelPairs(t *testing.T) {
	long := strings.Repeat("x", MaxLabelValueLength+10)
	pairs := labelPairs(map[string]string{
		"route":      "/admin/category/:id",
		"method":     "PUT",
		"request_id": "abc",
		"empty":      "",
		"operation":  long,
	})

	require.Len(t, pairs, 6)
	assert.Equal(t, []string{"method", "PUT", "operation"}, pairs[:3])
	assert.Len(t, pairs[3], MaxLabelValueLength)
	assert.Equal(t, []string{"route", "/admin/category/:id"}, pairs[4:])
}

func TestWithProfilingLabels(t *testing.T) {
	var got string
	WithProfilingLabels(context.Background(), HTTPRequestLabels("/admin/categories", "GET"), func(ctx context.Context) {
		got, _ = pprof.Label(ctx, ProfilingLabelRoute)
	})
	assert.Equal(t, "/admin/categories", got)

	called := false
	WithProfilingLabels(context.Background(), nil, func(context.Context) { called = true })
	assert.True(t, called)
}
