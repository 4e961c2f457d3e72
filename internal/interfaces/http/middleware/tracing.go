package middleware

import (
	"slices"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys added on top of otelgin's HTTP attributes
const (
	SpanAttrRequestID = attribute.Key("request_id")
	SpanAttrAdminID   = attribute.Key("admin_id")
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
	// TracerProvider defaults to the global provider
	TracerProvider trace.TracerProvider
	// SkipPaths are not traced (health probes)
	SkipPaths []string
}

// DefaultTracingConfig returns default tracing configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "inventorydb-backend",
		Enabled:     true,
		SkipPaths:   []string{"/health"},
	}
}

// Tracing returns OpenTelemetry tracing middleware with default configuration.
func Tracing() gin.HandlerFunc {
	return TracingWithConfig(DefaultTracingConfig())
}

// TracingWithConfig starts a server span per request through otelgin.
// Span names follow "METHOD /route/:param"; 5xx responses get error status.
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	opts := []otelgin.Option{
		otelgin.WithGinFilter(func(c *gin.Context) bool {
			return !slices.Contains(cfg.SkipPaths, c.Request.URL.Path)
		}),
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgin.WithTracerProvider(cfg.TracerProvider))
	}

	return otelgin.Middleware(cfg.ServiceName, opts...)
}

// SpanAttributes tags the request span with the request id and, once
// BearerAuth has run further down the chain, the admin id. It must be
// registered after the tracing middleware.
func SpanAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		if requestID := GetRequestID(c); requestID != "" {
			span.SetAttributes(SpanAttrRequestID.String(requestID))
		}
		if adminID := GetAdminID(c); adminID != "" {
			span.SetAttributes(SpanAttrAdminID.String(adminID))
		}
	}
}
