package runtime

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies Lucent spans in the global tracer provider.
const tracerName = "lucent"

var tracingEnabled atomic.Bool

// EnableTracing turns on OpenTelemetry spans around mount and
// reconciliation passes. The spans go to the global tracer provider;
// configure it in your main() before mounting:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
//	runtime.EnableTracing()
func EnableTracing() {
	tracingEnabled.Store(true)
}

// startSpan opens a span when tracing is enabled; otherwise it returns
// a no-op span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !tracingEnabled.Load() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on the span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
