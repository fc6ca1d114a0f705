// Package field provides the reusable field-level predicates the event
// schemas are built from.
//
// Every check is a total function over any: it reports whether the value
// satisfies the constraint and never panics, whatever the input. Numeric
// checks accept both native Go integers/floats and the float64 values
// produced by encoding/json, so the same predicate works on hand-built
// maps and on freshly decoded wire payloads.
package field

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Int extracts an integer value from v. A float64 (the JSON number
// representation) qualifies only if it has no fractional part.
func Int(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float32:
		return Int(float64(n))
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		// Conversion of an out-of-range float64 to int64 is undefined,
		// so gate the range explicitly. 1<<63 is exactly representable.
		if n >= float64(1<<63) || n < -float64(1<<63) {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// Number extracts a numeric value from v.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// PositiveInt reports whether v is an integer greater than zero.
func PositiveInt(v any) bool {
	n, ok := Int(v)
	return ok && n > 0
}

// PositiveNumber reports whether v is a number greater than zero.
func PositiveNumber(v any) bool {
	n, ok := Number(v)
	return ok && n > 0
}

// NonNegativeNumber reports whether v is a number greater than or equal
// to zero.
func NonNegativeNumber(v any) bool {
	n, ok := Number(v)
	return ok && n >= 0
}

// NonEmptyString reports whether v is a string of length >= 1.
func NonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && len(s) >= 1
}

// String reports whether v is a string. Emptiness is not checked.
func String(v any) bool {
	_, ok := v.(string)
	return ok
}

// Bool reports whether v is a boolean.
func Bool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// UUIDv4 reports whether v is a string in canonical UUID v4 form:
// 8-4-4-4-12 hex groups with the version nibble set to 4 and the RFC 4122
// variant. The length pre-check rejects the URN and braced forms that
// uuid.Parse would otherwise accept.
func UUIDv4(v any) bool {
	s, ok := v.(string)
	if !ok || len(s) != 36 {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}

// ISODatetime reports whether v is a string parseable as an ISO-8601
// datetime with a zone designator (RFC 3339 date-time).
func ISODatetime(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// OneOf returns a check that accepts only string members of set.
func OneOf(set ...string) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		for _, member := range set {
			if s == member {
				return true
			}
		}
		return false
	}
}
