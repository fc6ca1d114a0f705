package observability

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/randalmurphal/eventcontract/pkg/eventcontract"
)

// instrumentation bundles the recorders shared by the Validator and
// Factory wrappers.
type instrumentation struct {
	metrics MetricsRecorder
	spans   SpanManager
	logger  *slog.Logger
}

// Option configures a Validator or Factory.
type Option func(*instrumentation)

// WithMetrics sets the metrics recorder (default: NewMetricsRecorder()).
func WithMetrics(m MetricsRecorder) Option {
	return func(i *instrumentation) {
		i.metrics = m
	}
}

// WithSpans sets the span manager (default: NewSpanManager()).
func WithSpans(s SpanManager) Option {
	return func(i *instrumentation) {
		i.spans = s
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(i *instrumentation) {
		i.logger = l
	}
}

func newInstrumentation(opts []Option) instrumentation {
	inst := instrumentation{
		metrics: NewMetricsRecorder(),
		spans:   NewSpanManager(),
	}
	for _, opt := range opts {
		opt(&inst)
	}
	return inst
}

// Validator wraps the contract's inbound validator with metrics, traces,
// and structured logs. Consumers drop it into their receive loop in
// place of the bare eventcontract.ValidateEvent.
type Validator struct {
	inst instrumentation
}

// NewValidator creates an instrumented inbound validator.
func NewValidator(opts ...Option) *Validator {
	return &Validator{inst: newInstrumentation(opts)}
}

// ValidateEvent validates an untrusted value, recording the outcome.
func (v *Validator) ValidateEvent(ctx context.Context, value any) eventcontract.Result {
	eventType := declaredType(value)
	ctx, span := v.inst.spans.StartValidationSpan(ctx, eventType)

	start := time.Now()
	res := eventcontract.ValidateEvent(value)
	elapsed := time.Since(start)

	outcome := OutcomeFor(res.Err)
	v.inst.metrics.RecordValidation(ctx, eventType, elapsed, outcome)
	v.inst.spans.EndSpanWithError(span, res.Err)

	switch outcome {
	case OutcomeAccepted:
		LogEventAccepted(v.inst.logger, string(res.Event.Type), res.Event.CorrelationID)
	case OutcomeUnknownType:
		LogUnknownType(v.inst.logger, eventType)
	default:
		LogEventRejected(v.inst.logger, eventType, res.Err)
	}
	return res
}

// ParseEvent decodes wire bytes and validates them, recording the outcome.
func (v *Validator) ParseEvent(ctx context.Context, raw []byte) eventcontract.Result {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		// Undecodable bytes never reach the schema; still count them.
		res := eventcontract.ParseEvent(raw)
		v.inst.metrics.RecordValidation(ctx, "", 0, OutcomeRejected)
		LogEventRejected(v.inst.logger, "", res.Err)
		return res
	}
	return v.ValidateEvent(ctx, value)
}

// declaredType extracts the type tag for labeling, before validation has
// vouched for it. Unknown shapes label as "".
func declaredType(value any) string {
	m, ok := value.(map[string]any)
	if !ok {
		return ""
	}
	tag, _ := m["type"].(string)
	return tag
}
