package eventcontract

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/randalmurphal/eventcontract/pkg/eventcontract/field"
)

// fieldRule binds one object member to its constraint. Exactly one of
// check or nested is set; nested rules validate structured members and
// report their own violations.
type fieldRule struct {
	name       string
	required   bool
	constraint string
	check      func(any) bool
	nested     func(path string, v any) []Violation
}

// Schema validates one event variant: the shared envelope plus the
// variant's payload shape.
type Schema struct {
	// Type is the literal tag this schema validates.
	Type EventType

	// Description explains the event's purpose.
	Description string

	payload    []fieldRule
	decodeData func(raw json.RawMessage) (any, error)
}

// Validate checks an untyped envelope against the schema and returns
// every violation found in one pass. An empty slice means the value
// conforms.
func (s *Schema) Validate(m map[string]any) []Violation {
	rules := []fieldRule{
		{
			name:       "type",
			required:   true,
			constraint: fmt.Sprintf("must equal %q", s.Type),
			check:      func(v any) bool { return v == string(s.Type) },
		},
		{name: "orderId", required: true, constraint: "positive integer", check: field.PositiveInt},
		{name: "userId", required: true, constraint: "positive integer", check: field.PositiveInt},
		{name: "correlationId", required: true, constraint: "UUID v4", check: field.UUIDv4},
		{name: "timestamp", required: true, constraint: "ISO-8601 datetime", check: field.ISODatetime},
		{name: "data", required: true, nested: s.checkData},
	}
	return checkObject("", m, rules)
}

func (s *Schema) checkData(path string, v any) []Violation {
	m, ok := v.(map[string]any)
	if !ok {
		return []Violation{{Field: path, Constraint: "must be an object", Got: describe(v)}}
	}
	return checkObject(path, m, s.payload)
}

// checkObject validates every rule against m and rejects members m has
// that no rule names. Unknown members are reported in sorted order so
// diagnostics are stable.
func checkObject(path string, m map[string]any, rules []fieldRule) []Violation {
	var out []Violation
	known := make(map[string]bool, len(rules))

	for _, r := range rules {
		known[r.name] = true
		fieldPath := joinPath(path, r.name)

		v, present := m[r.name]
		if !present || v == nil {
			// Only null/absent counts as missing. A present-but-wrong
			// value falls through to its constraint check.
			if r.required {
				out = append(out, Violation{Field: fieldPath, Constraint: "required", Got: "missing"})
			}
			continue
		}
		if r.nested != nil {
			out = append(out, r.nested(fieldPath, v)...)
			continue
		}
		if !r.check(v) {
			out = append(out, Violation{Field: fieldPath, Constraint: r.constraint, Got: describe(v)})
		}
	}

	var unknown []string
	for k := range m {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		out = append(out, Violation{Field: joinPath(path, k), Constraint: "unknown field", Got: describe(m[k])})
	}
	return out
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

var itemRules = []fieldRule{
	{name: "productId", required: true, constraint: "positive integer", check: field.PositiveInt},
	{name: "quantity", required: true, constraint: "positive integer", check: field.PositiveInt},
	{name: "price", required: true, constraint: "positive number", check: field.PositiveNumber},
}

// checkItems validates the order line list shared by order.created and
// order.confirmed: a non-empty list of {productId, quantity, price}.
func checkItems(path string, v any) []Violation {
	list, ok := v.([]any)
	if !ok {
		return []Violation{{Field: path, Constraint: "must be a list of items", Got: describe(v)}}
	}
	if len(list) == 0 {
		return []Violation{{Field: path, Constraint: "must contain at least one item", Got: "empty list"}}
	}

	var out []Violation
	for i, el := range list {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		m, ok := el.(map[string]any)
		if !ok {
			out = append(out, Violation{Field: itemPath, Constraint: "must be an object", Got: describe(el)})
			continue
		}
		out = append(out, checkObject(itemPath, m, itemRules)...)
	}
	return out
}

func decodeInto[T any](raw json.RawMessage) (any, error) {
	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

var orderCreatedSchema = &Schema{
	Type:        OrderCreated,
	Description: "An order was placed",
	payload: []fieldRule{
		{name: "items", required: true, nested: checkItems},
		{name: "totalAmount", required: true, constraint: "positive number", check: field.PositiveNumber},
		{name: "shippingAddress", constraint: "string", check: field.String},
	},
	decodeData: decodeInto[OrderCreatedData],
}

var orderConfirmedSchema = &Schema{
	Type:        OrderConfirmed,
	Description: "An order passed payment and stock checks",
	payload: []fieldRule{
		{name: "items", required: true, nested: checkItems},
		{name: "totalAmount", required: true, constraint: "positive number", check: field.PositiveNumber},
		{name: "paymentId", constraint: "string", check: field.String},
	},
	decodeData: decodeInto[OrderConfirmedData],
}

var orderShippedSchema = &Schema{
	Type:        OrderShipped,
	Description: "An order left the warehouse",
	payload: []fieldRule{
		{name: "trackingNumber", constraint: "string", check: field.String},
		{name: "carrier", constraint: "string", check: field.String},
		{name: "estimatedDelivery", constraint: "ISO-8601 datetime", check: field.ISODatetime},
	},
	decodeData: decodeInto[OrderShippedData],
}

var orderCancelledSchema = &Schema{
	Type:        OrderCancelled,
	Description: "An order was cancelled before fulfillment",
	payload: []fieldRule{
		{name: "reason", required: true, constraint: "non-empty string", check: field.NonEmptyString},
		{
			name:       "cancelledBy",
			required:   true,
			constraint: `one of "user", "system", "admin"`,
			check: field.OneOf(
				string(CancelledByUser),
				string(CancelledBySystem),
				string(CancelledByAdmin),
			),
		},
		{name: "refundAmount", constraint: "non-negative number", check: field.NonNegativeNumber},
	},
	decodeData: decodeInto[OrderCancelledData],
}

var paymentAuthorizedSchema = &Schema{
	Type:        PaymentAuthorized,
	Description: "A payment was authorized by the provider",
	payload: []fieldRule{
		{name: "transactionId", required: true, constraint: "non-empty string", check: field.NonEmptyString},
		{name: "amount", required: true, constraint: "positive number", check: field.PositiveNumber},
		{name: "currency", required: true, constraint: "non-empty string", check: field.NonEmptyString},
	},
	decodeData: decodeInto[PaymentAuthorizedData],
}

var paymentFailedSchema = &Schema{
	Type:        PaymentFailed,
	Description: "A payment attempt failed",
	payload: []fieldRule{
		{name: "reason", required: true, constraint: "non-empty string", check: field.NonEmptyString},
		{name: "retryable", required: true, constraint: "boolean", check: field.Bool},
	},
	decodeData: decodeInto[PaymentFailedData],
}
