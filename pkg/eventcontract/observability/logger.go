// Package observability provides production-grade observability for the
// event contract: structured logging, metrics, and distributed tracing
// around event construction and inbound validation.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import "log/slog"

// EnrichLogger adds event context to a logger.
// Returns a new logger with event_type and correlation_id fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "order.created", evt.CorrelationID)
//	enriched.Info("publishing") // includes event_type, correlation_id
func EnrichLogger(logger *slog.Logger, eventType, correlationID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("event_type", eventType),
		slog.String("correlation_id", correlationID),
	)
}

// LogEventCreated logs a successful factory construction.
func LogEventCreated(logger *slog.Logger, eventType, correlationID string) {
	if logger == nil {
		return
	}
	logger.Info("event created",
		slog.String("event_type", eventType),
		slog.String("correlation_id", correlationID),
	)
}

// LogEventAccepted logs an inbound event that passed validation.
func LogEventAccepted(logger *slog.Logger, eventType, correlationID string) {
	if logger == nil {
		return
	}
	logger.Debug("event accepted",
		slog.String("event_type", eventType),
		slog.String("correlation_id", correlationID),
	)
}

// LogEventRejected logs an inbound event that failed validation.
// Rejections are expected on untrusted input, so this logs at Warn.
func LogEventRejected(logger *slog.Logger, eventType string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("event rejected",
		slog.String("event_type", eventType),
		slog.String("error", err.Error()),
	)
}

// LogUnknownType logs a tag outside this build's contract. A burst of
// these usually means a producer deployed a newer contract version.
func LogUnknownType(logger *slog.Logger, tag string) {
	if logger == nil {
		return
	}
	logger.Warn("unknown event type",
		slog.String("event_type", tag),
	)
}
