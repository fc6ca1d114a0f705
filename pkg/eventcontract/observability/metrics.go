package observability

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/randalmurphal/eventcontract/pkg/eventcontract"
)

// Outcome classifies the result of a validation or construction.
type Outcome string

const (
	OutcomeAccepted    Outcome = "accepted"
	OutcomeRejected    Outcome = "rejected"
	OutcomeUnknownType Outcome = "unknown_type"
)

// OutcomeFor maps a contract error to its metric outcome.
func OutcomeFor(err error) Outcome {
	if err == nil {
		return OutcomeAccepted
	}
	var unknown *eventcontract.UnknownTypeError
	if errors.As(err, &unknown) {
		return OutcomeUnknownType
	}
	return OutcomeRejected
}

// MetricsRecorder records contract metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCreated records a factory construction with its error status.
	RecordCreated(ctx context.Context, eventType string, err error)

	// RecordValidation records an inbound validation with its duration
	// and outcome.
	RecordValidation(ctx context.Context, eventType string, duration time.Duration, outcome Outcome)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	created           metric.Int64Counter
	createdErrors     metric.Int64Counter
	validations       metric.Int64Counter
	validationLatency metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("eventcontract")

	created, err := meter.Int64Counter("eventcontract.events.created",
		metric.WithDescription("Number of events built by the factory"),
	)
	if err != nil {
		return nil, err
	}

	createdErrors, err := meter.Int64Counter("eventcontract.events.created_errors",
		metric.WithDescription("Number of factory constructions that failed validation"),
	)
	if err != nil {
		return nil, err
	}

	validations, err := meter.Int64Counter("eventcontract.validations",
		metric.WithDescription("Number of inbound validations by outcome"),
	)
	if err != nil {
		return nil, err
	}

	validationLatency, err := meter.Float64Histogram("eventcontract.validation.latency_ms",
		metric.WithDescription("Inbound validation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		created:           created,
		createdErrors:     createdErrors,
		validations:       validations,
		validationLatency: validationLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordCreated records a factory construction.
func (m *otelMetrics) RecordCreated(ctx context.Context, eventType string, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("event_type", eventType),
	}

	m.created.Add(ctx, 1, metric.WithAttributes(attrs...))
	if err != nil {
		m.createdErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordValidation records an inbound validation.
func (m *otelMetrics) RecordValidation(ctx context.Context, eventType string, duration time.Duration, outcome Outcome) {
	attrs := []attribute.KeyValue{
		attribute.String("event_type", eventType),
		attribute.String("outcome", string(outcome)),
	}
	m.validations.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.validationLatency.Record(ctx, float64(duration.Microseconds())/1000.0, metric.WithAttributes(attrs...))
}
