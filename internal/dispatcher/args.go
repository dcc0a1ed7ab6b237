package dispatcher

import (
	"fmt"
	"math"
)

// Args are the named arguments of a configured action. Values come from
// YAML or Lua, so numbers may be any Go numeric type.
type Args map[string]any

// Int returns the integer argument key, or def when it is absent.
func (a Args) Int(key string, def int) (int, error) {
	v, ok := a[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidArgs, key, v)
}

// String returns the string argument key, or def when it is absent.
func (a Args) String(key, def string) (string, error) {
	v, ok := a[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidArgs, key, v)
	}
	return s, nil
}

// RequiredString returns the string argument key, which must be present
// and non-empty.
func (a Args) RequiredString(key string) (string, error) {
	s, err := a.String(key, "")
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidArgs, key)
	}
	return s, nil
}
