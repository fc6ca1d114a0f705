package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the contract tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("eventcontract")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartFactorySpan starts a span for building an event.
	StartFactorySpan(ctx context.Context, eventType string) (context.Context, trace.Span)

	// StartValidationSpan starts a span for validating an inbound value.
	StartValidationSpan(ctx context.Context, eventType string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartFactorySpan starts a span for building an event.
func (m *otelSpanManager) StartFactorySpan(ctx context.Context, eventType string) (context.Context, trace.Span) {
	return StartFactorySpan(ctx, eventType)
}

// StartValidationSpan starts a span for validating an inbound value.
func (m *otelSpanManager) StartValidationSpan(ctx context.Context, eventType string) (context.Context, trace.Span) {
	return StartValidationSpan(ctx, eventType)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartFactorySpan starts a span for building an event.
// Uses the global OTel tracer.
func StartFactorySpan(ctx context.Context, eventType string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "eventcontract.create",
		trace.WithAttributes(
			attribute.String("event.type", eventType),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartValidationSpan starts a span for validating an inbound value.
// Uses the global OTel tracer.
func StartValidationSpan(ctx context.Context, eventType string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "eventcontract.validate",
		trace.WithAttributes(
			attribute.String("event.type", eventType),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
