package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupTestMeter sets up a test meter provider and reader.
func setupTestMeter(t *testing.T) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = mp.Shutdown(context.Background())
	})
	return mp, reader
}

// findMetricByName collects from the reader and returns the named metric
func findMetricByName(t *testing.T, reader *sdkmetric.ManualReader, name string) *metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func newMetricsRouter(t *testing.T) (*gin.Engine, *sdkmetric.ManualReader) {
	t.Helper()
	mp, reader := setupTestMeter(t)

	router := gin.New()
	router.Use(HTTPMetrics(mp.Meter("http.server"), nil))
	router.GET("/admin/category_by_id/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.POST("/admin/category", func(c *gin.Context) {
		c.Status(http.StatusConflict)
	})
	return router, reader
}

func TestHTTPMetrics_NilMeter(t *testing.T) {
	router := gin.New()
	router.Use(HTTPMetrics(nil, nil))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTPMetrics_RequestCounter(t *testing.T) {
	router, reader := newMetricsRouter(t)

	for _, id := range []string{"1", "2", "3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/category_by_id/"+id, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/category", nil))

	m := findMetricByName(t, reader, "http_server_request_total")
	require.NotNil(t, m)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		route, _ := dp.Attributes.Value(attribute.Key("http.route"))
		status, _ := dp.Attributes.Value(attribute.Key("http.status_code"))
		counts[route.AsString()+" "+status.Emit()] = dp.Value
	}
	assert.Equal(t, int64(3), counts["/admin/category_by_id/:id 200"], "route pattern, not raw path")
	assert.Equal(t, int64(1), counts["/admin/category 409"])
}

func TestHTTPMetrics_RequestDuration(t *testing.T) {
	router, reader := newMetricsRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/category_by_id/1", nil))

	m := findMetricByName(t, reader, "http_server_request_duration_seconds")
	require.NotNil(t, m)
	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
	_, hasStatus := hist.DataPoints[0].Attributes.Value(attribute.Key("http.status_code"))
	assert.False(t, hasStatus)
}

func TestHTTPMetrics_ActiveRequestsSettle(t *testing.T) {
	router, reader := newMetricsRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/category_by_id/1", nil))

	m := findMetricByName(t, reader, "http_server_active_requests")
	require.NotNil(t, m)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(0), sum.DataPoints[0].Value)
}

func TestHTTPMetrics_UnmatchedRoute(t *testing.T) {
	router, reader := newMetricsRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/42", nil))

	m := findMetricByName(t, reader, "http_server_request_total")
	require.NotNil(t, m)
	sum := m.Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 1)
	route, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.route"))
	assert.Equal(t, "unknown", route.AsString())
}
