package filters

import "fmt"

// Options is a mapping of filter-specific configuration values,
// usually loaded from YAML.
type Options map[string]interface{}

func (o Options) typeError(key, want string) error {
	return fmt.Errorf("option %q: expected %s, got %T", key, want, o[key])
}

// Bool returns a boolean option or def if it's not set.
func (o Options) Bool(key string, def bool) (bool, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, o.typeError(key, "boolean")
	}
	return b, nil
}

// Int returns an integer option or def if it's not set.
func (o Options) Int(key string, def int) (int, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if x == float64(int(x)) {
			return int(x), nil
		}
	}
	return def, o.typeError(key, "integer")
}

// String returns a string option or def if it's not set.
func (o Options) String(key string, def string) (string, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, o.typeError(key, "string")
	}
	return s, nil
}

// Strings returns a string list option or nil if it's not set.
// A single string is returned as a list of one element.
func (o Options) Strings(key string) ([]string, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	switch x := v.(type) {
	case string:
		return []string{x}, nil
	case []string:
		return x, nil
	case []interface{}:
		out := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, o.typeError(key, "array of strings")
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, o.typeError(key, "array of strings")
}
