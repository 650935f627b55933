package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Only handler-level names become real spans; the write/map helpers run on
// every request and would double the span count for no diagnostic value.
const tracedSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("matchday/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	// Without a parent (filtered routes like /healthz) a new span would be
	// a standalone root, so skip it.
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !strings.HasPrefix(name, tracedSpanPrefix) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}
