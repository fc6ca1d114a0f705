package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/eventcontract/pkg/eventcontract"
)

// recordingMetrics captures recorder calls for assertions.
type recordingMetrics struct {
	created     []string
	createdErrs []error
	eventTypes  []string
	outcomes    []Outcome
}

func (r *recordingMetrics) RecordCreated(_ context.Context, eventType string, err error) {
	r.created = append(r.created, eventType)
	r.createdErrs = append(r.createdErrs, err)
}

func (r *recordingMetrics) RecordValidation(_ context.Context, eventType string, _ time.Duration, outcome Outcome) {
	r.eventTypes = append(r.eventTypes, eventType)
	r.outcomes = append(r.outcomes, outcome)
}

func validEnvelope() map[string]any {
	return map[string]any{
		"type":          "payment.failed",
		"orderId":       1,
		"userId":        1,
		"correlationId": "936da01f-9abd-4d9d-80c7-02af85c822a8",
		"timestamp":     "2024-01-15T10:30:00.000Z",
		"data":          map[string]any{"reason": "card declined", "retryable": true},
	}
}

func newRecordedValidator(metrics MetricsRecorder, buf *bytes.Buffer) *Validator {
	return NewValidator(
		WithMetrics(metrics),
		WithSpans(NoopSpanManager{}),
		WithLogger(newTestLogger(buf)),
	)
}

func TestValidatorAccepts(t *testing.T) {
	metrics := &recordingMetrics{}
	var buf bytes.Buffer
	v := newRecordedValidator(metrics, &buf)

	res := v.ValidateEvent(context.Background(), validEnvelope())
	require.True(t, res.Success, "expected valid envelope to pass: %v", res.Err)

	require.Len(t, metrics.outcomes, 1)
	assert.Equal(t, OutcomeAccepted, metrics.outcomes[0])
	assert.Equal(t, "payment.failed", metrics.eventTypes[0])
	assert.Equal(t, "event accepted", lastRecord(t, &buf)["msg"])
}

func TestValidatorRejects(t *testing.T) {
	metrics := &recordingMetrics{}
	var buf bytes.Buffer
	v := newRecordedValidator(metrics, &buf)

	env := validEnvelope()
	env["orderId"] = 0
	res := v.ValidateEvent(context.Background(), env)
	require.False(t, res.Success)

	var verr *eventcontract.ValidationError
	require.True(t, errors.As(res.Err, &verr))

	require.Len(t, metrics.outcomes, 1)
	assert.Equal(t, OutcomeRejected, metrics.outcomes[0])
	assert.Equal(t, "event rejected", lastRecord(t, &buf)["msg"])
}

func TestValidatorUnknownType(t *testing.T) {
	metrics := &recordingMetrics{}
	var buf bytes.Buffer
	v := newRecordedValidator(metrics, &buf)

	env := validEnvelope()
	env["type"] = "order.refunded"
	res := v.ValidateEvent(context.Background(), env)
	require.False(t, res.Success)

	require.Len(t, metrics.outcomes, 1)
	assert.Equal(t, OutcomeUnknownType, metrics.outcomes[0])
	assert.Equal(t, "order.refunded", metrics.eventTypes[0])
	assert.Equal(t, "unknown event type", lastRecord(t, &buf)["msg"])
}

func TestValidatorParseEvent(t *testing.T) {
	metrics := &recordingMetrics{}
	var buf bytes.Buffer
	v := newRecordedValidator(metrics, &buf)

	raw, err := json.Marshal(validEnvelope())
	require.NoError(t, err)

	res := v.ParseEvent(context.Background(), raw)
	require.True(t, res.Success, "expected wire bytes to pass: %v", res.Err)
	assert.Equal(t, []Outcome{OutcomeAccepted}, metrics.outcomes)

	res = v.ParseEvent(context.Background(), []byte("{not json"))
	require.False(t, res.Success)
	assert.Equal(t, []Outcome{OutcomeAccepted, OutcomeRejected}, metrics.outcomes)
}

func TestValidatorDefaults(t *testing.T) {
	// Defaults (global OTel providers, nil logger) must work out of the box.
	v := NewValidator()
	res := v.ValidateEvent(context.Background(), validEnvelope())
	assert.True(t, res.Success)
}
