package eventcontract

import "encoding/json"

// Result is the outcome of inbound validation. Exactly one of Event and
// Err is set: Event when Success is true, Err otherwise. Err is a
// *ValidationError or *UnknownTypeError; use errors.As to tell them
// apart.
type Result struct {
	Success bool
	Event   *Event
	Err     error
}

// Validate checks an arbitrary untrusted value against the contract and,
// on success, narrows it into a typed Event. It is the single validation
// path under both the factory and the inbound validator, and it never
// panics on malformed input.
func Validate(v any) (*Event, error) {
	return DefaultRegistry.Validate(v)
}

// ValidateEvent wraps Validate in a Result for consumers processing a
// stream of untrusted messages, where a malformed message is expected
// and must not kill the loop.
func ValidateEvent(v any) Result {
	evt, err := Validate(v)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Success: true, Event: evt}
}

// ParseEvent decodes wire bytes and validates them. This is the usual
// consumer path: bytes straight off the bus.
func ParseEvent(raw []byte) Result {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Result{Err: &ValidationError{
			Violations: []Violation{{Field: "event", Constraint: "must be valid JSON", Got: err.Error()}},
		}}
	}
	return ValidateEvent(v)
}

// Validate checks an arbitrary value against the registry's contract.
//
// The envelope is classified before any schema runs: a non-object value
// and a missing type tag are validation failures of the envelope itself,
// and a tag outside the contract is an *UnknownTypeError. Everything
// else is full schema validation, collecting every violation in one
// pass.
func (r *Registry) Validate(v any) (*Event, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &ValidationError{Violations: []Violation{
			{Field: "event", Constraint: "must be a non-null object", Got: describe(v)},
		}}
	}

	rawType, present := m["type"]
	if !present || rawType == nil || rawType == "" {
		return nil, &ValidationError{Violations: []Violation{
			{Field: "type", Constraint: "required", Got: describe(rawType)},
		}}
	}
	tag, ok := rawType.(string)
	if !ok {
		return nil, &ValidationError{Violations: []Violation{
			{Field: "type", Constraint: "must be a string", Got: describe(rawType)},
		}}
	}

	schema, ok := r.Lookup(EventType(tag))
	if !ok {
		return nil, &UnknownTypeError{Tag: tag}
	}

	if violations := schema.Validate(m); len(violations) > 0 {
		return nil, &ValidationError{Type: tag, Violations: violations}
	}

	return schema.narrow(m)
}

// narrow converts a validated envelope map into a typed Event. The map
// has already passed Validate, so decoding can only fail on a
// programming defect in the schema itself.
func (s *Schema) narrow(m map[string]any) (*Event, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	var wire struct {
		Type          EventType       `json:"type"`
		OrderID       int64           `json:"orderId"`
		UserID        int64           `json:"userId"`
		CorrelationID string          `json:"correlationId"`
		Timestamp     string          `json:"timestamp"`
		Data          json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}

	data, err := s.decodeData(wire.Data)
	if err != nil {
		return nil, err
	}

	return &Event{
		Type:          wire.Type,
		OrderID:       wire.OrderID,
		UserID:        wire.UserID,
		CorrelationID: wire.CorrelationID,
		Timestamp:     wire.Timestamp,
		Data:          data,
	}, nil
}
