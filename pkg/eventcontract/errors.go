package eventcontract

import (
	"fmt"
	"strconv"
	"strings"
)

// Violation describes a single violated constraint.
type Violation struct {
	// Field is the path of the offending field, e.g. "data.items[0].price".
	// The envelope itself is reported as "event".
	Field string `json:"field"`

	// Constraint is the rule that was violated, e.g. "positive integer".
	Constraint string `json:"constraint"`

	// Got describes the offending value, e.g. `string ""` or "missing".
	Got string `json:"got"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (got %s)", v.Field, v.Constraint, v.Got)
}

// ValidationError reports every constraint an event violated. Validation
// does not stop at the first failure, so Violations is the complete
// diagnosis for the value.
type ValidationError struct {
	// Type is the declared type tag, when one was present.
	Type string

	// Violations holds one entry per violated field constraint.
	Violations []Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("event validation failed")
	if e.Type != "" {
		b.WriteString(" for ")
		b.WriteString(e.Type)
	}
	for i, v := range e.Violations {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(v.String())
	}
	return b.String()
}

// FieldFailed reports whether any violation concerns the given field path.
func (e *ValidationError) FieldFailed(path string) bool {
	for _, v := range e.Violations {
		if v.Field == path {
			return true
		}
	}
	return false
}

// UnknownTypeError reports a type tag outside the contract. It is a
// distinct type so consumers can special-case events emitted by a newer
// contract version than the one they were built against.
type UnknownTypeError struct {
	Tag string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return "unknown event type: " + e.Tag
}

// describe renders a value for Violation.Got.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return "string " + strconv.Quote(t)
	case bool:
		return "bool " + strconv.FormatBool(t)
	case float64:
		return "number " + strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return "number " + strconv.FormatFloat(float64(t), 'g', -1, 32)
	case int:
		return "number " + strconv.Itoa(t)
	case int32:
		return "number " + strconv.FormatInt(int64(t), 10)
	case int64:
		return "number " + strconv.FormatInt(t, 10)
	case map[string]any:
		return "object"
	case []any:
		return fmt.Sprintf("list of %d", len(t))
	default:
		return fmt.Sprintf("%T", v)
	}
}
