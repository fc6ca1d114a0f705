package eventcontract

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the wire format of event timestamps: ISO-8601 with
// millisecond precision and a UTC "Z" designator.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Option overrides a generated envelope field during construction.
type Option func(*eventDefaults)

// eventDefaults tracks which generated fields the caller supplied.
// Pointers distinguish "not supplied" from "supplied but empty": only a
// missing option triggers generation, so a deliberately empty value
// reaches validation instead of being silently replaced.
type eventDefaults struct {
	correlationID *string
	timestamp     *string
}

// WithCorrelationID supplies the correlation ID instead of generating a
// fresh UUID v4. Use it to join the event to an existing correlation
// chain.
func WithCorrelationID(id string) Option {
	return func(d *eventDefaults) {
		d.correlationID = &id
	}
}

// WithTimestamp supplies the event timestamp instead of reading the
// clock. The value must already be in TimestampLayout form or an
// equivalent ISO-8601 datetime.
func WithTimestamp(ts string) Option {
	return func(d *eventDefaults) {
		d.timestamp = &ts
	}
}

// NewOrderEvent builds and validates an order.* event. Construction is
// fail-loud: a malformed request returns the full validation failure,
// since at a producer call site bad input is a bug.
func NewOrderEvent(t EventType, orderID, userID int64, data any, opts ...Option) (*Event, error) {
	return newEvent(FamilyOrder, t, orderID, userID, data, opts...)
}

// NewPaymentEvent builds and validates a payment.* event.
func NewPaymentEvent(t EventType, orderID, userID int64, data any, opts ...Option) (*Event, error) {
	return newEvent(FamilyPayment, t, orderID, userID, data, opts...)
}

func newEvent(fam Family, t EventType, orderID, userID int64, data any, opts ...Option) (*Event, error) {
	if !DefaultRegistry.Has(t) {
		return nil, &UnknownTypeError{Tag: string(t)}
	}
	if t.Family() != fam {
		return nil, fmt.Errorf("event type %s is not in the %s family", t, fam)
	}

	var defaults eventDefaults
	for _, opt := range opts {
		opt(&defaults)
	}

	correlationID := uuid.NewString()
	if defaults.correlationID != nil {
		correlationID = *defaults.correlationID
	}
	timestamp := time.Now().UTC().Format(TimestampLayout)
	if defaults.timestamp != nil {
		timestamp = *defaults.timestamp
	}

	candidate := Event{
		Type:          t,
		OrderID:       orderID,
		UserID:        userID,
		CorrelationID: correlationID,
		Timestamp:     timestamp,
		Data:          data,
	}

	// Normalize through JSON so typed payloads and hand-built maps take
	// the same validation path as inbound wire values.
	raw, err := json.Marshal(candidate)
	if err != nil {
		return nil, fmt.Errorf("encode candidate event: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode candidate event: %w", err)
	}

	return DefaultRegistry.Validate(m)
}
