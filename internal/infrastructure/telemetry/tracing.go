package telemetry

import (
	"context"
	"errors"

	"github.com/inventorydb/backend/internal/domain/shared"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer used for service spans
const TracerName = "inventorydb-backend"

// StartServiceSpan starts an internal span named "<service>.<method>".
// The caller must End the returned span.
func StartServiceSpan(ctx context.Context, service, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, service+"."+method,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err on span when it is a server-side failure and ends it.
// Domain errors such as not found or conflict are outcomes, not span errors.
func EndSpan(span trace.Span, err error) {
	defer span.End()

	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Code != shared.CodeInternal {
		span.SetAttributes(attribute.String("error.code", domainErr.Code))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
