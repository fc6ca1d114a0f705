package observability

import (
	"context"

	"github.com/randalmurphal/eventcontract/pkg/eventcontract"
)

// Factory wraps the contract's event factories with metrics, traces,
// and structured logs. Producers call it in place of the bare
// eventcontract.NewOrderEvent / NewPaymentEvent before publishing.
type Factory struct {
	inst instrumentation
}

// NewFactory creates an instrumented event factory.
func NewFactory(opts ...Option) *Factory {
	return &Factory{inst: newInstrumentation(opts)}
}

// NewOrderEvent builds and validates an order.* event, recording the
// construction outcome. Construction stays fail-loud: the error is
// recorded and returned, never swallowed.
func (f *Factory) NewOrderEvent(ctx context.Context, t eventcontract.EventType, orderID, userID int64, data any, opts ...eventcontract.Option) (*eventcontract.Event, error) {
	return f.record(ctx, t, func() (*eventcontract.Event, error) {
		return eventcontract.NewOrderEvent(t, orderID, userID, data, opts...)
	})
}

// NewPaymentEvent builds and validates a payment.* event, recording the
// construction outcome.
func (f *Factory) NewPaymentEvent(ctx context.Context, t eventcontract.EventType, orderID, userID int64, data any, opts ...eventcontract.Option) (*eventcontract.Event, error) {
	return f.record(ctx, t, func() (*eventcontract.Event, error) {
		return eventcontract.NewPaymentEvent(t, orderID, userID, data, opts...)
	})
}

func (f *Factory) record(ctx context.Context, t eventcontract.EventType, build func() (*eventcontract.Event, error)) (*eventcontract.Event, error) {
	ctx, span := f.inst.spans.StartFactorySpan(ctx, string(t))

	evt, err := build()

	f.inst.metrics.RecordCreated(ctx, string(t), err)
	f.inst.spans.EndSpanWithError(span, err)

	if err != nil {
		LogEventRejected(f.inst.logger, string(t), err)
		return nil, err
	}
	LogEventCreated(f.inst.logger, string(evt.Type), evt.CorrelationID)
	return evt, nil
}
