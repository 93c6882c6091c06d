package middleware

import (
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/dimitrije/league-api/internal/middleware"

// Tracing opens a server span per request and hands its context to the
// handlers through c.Request, so service spans become its children.
func Tracing() drift.HandlerFunc {
	tracer := otel.Tracer(tracerName)

	return func(c *drift.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		ctx, span := tracer.Start(ctx, c.Request.Method+" "+c.Request.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(c.Request.Method),
				semconv.URLPath(c.Request.URL.Path),
			),
		)
		defer span.End()

		if id := GetRequestID(c); id != uuid.Nil {
			span.SetAttributes(attribute.String("request.id", id.String()))
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
