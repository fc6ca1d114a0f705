package config

// Config wraps a map[string]any for type-safe value extraction. All
// accessor methods return default values if the key is missing or the
// value cannot be converted to the requested type. Config is read-only
// after creation and safe for concurrent use.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// Raw returns the underlying map. Callers must not modify it.
func (c Config) Raw() map[string]any {
	return c.data
}

// String returns the string value for key, or defaultVal if missing or
// not a string.
func (c Config) String(key, defaultVal string) string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// StringSlice returns the string list for key, or defaultVal if missing
// or not a list of strings.
//
// Accepts:
//   - []string: used directly
//   - []any: each element must be a string
func (c Config) StringSlice(key string, defaultVal []string) []string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, el := range val {
			s, ok := el.(string)
			if !ok {
				return defaultVal
			}
			out = append(out, s)
		}
		return out
	}
	return defaultVal
}

// Sub returns the nested Config under key. A missing or non-map value
// yields an empty Config, so lookups can be chained without nil checks.
func (c Config) Sub(key string) Config {
	v, ok := c.data[key]
	if !ok {
		return New(nil)
	}
	if m, ok := v.(map[string]any); ok {
		return New(m)
	}
	return New(nil)
}
