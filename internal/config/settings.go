package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"unicode/utf8"
)

// Settings is the editor's option set. It is read once at startup and not
// changed afterwards.
type Settings struct {
	DefaultMode         string `toml:"defaultMode"`
	VisualTabWidth      int    `toml:"visualTabWidth"`
	SoftTabWidth        int    `toml:"softTabWidth"`
	SoftTabs            bool   `toml:"softTabs"`
	ShowLineNumbers     bool   `toml:"showLineNumbers"`
	RelativeLineNumbers bool   `toml:"relativeLineNumbers"`
	MinimumGutterWidth  int    `toml:"minimumGutterWidth"`
	EmptyLineFill       string `toml:"emptyLineFill"`
	Colorscheme         string `toml:"colorscheme"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		DefaultMode:         "insert",
		VisualTabWidth:      4,
		SoftTabWidth:        4,
		SoftTabs:            false,
		ShowLineNumbers:     true,
		RelativeLineNumbers: false,
		MinimumGutterWidth:  2,
		EmptyLineFill:       "~",
		Colorscheme:         "monochrome",
	}
}

type field struct {
	get func(s *Settings) any
	set func(s *Settings, v any) error
}

func stringField(p func(s *Settings) *string) field {
	return field{
		get: func(s *Settings) any { return *p(s) },
		set: func(s *Settings, v any) error {
			str, ok := v.(string)
			if !ok {
				return &TypeError{Expected: "string", Actual: fmt.Sprintf("%T", v)}
			}
			*p(s) = str
			return nil
		},
	}
}

func intField(p func(s *Settings) *int) field {
	return field{
		get: func(s *Settings) any { return *p(s) },
		set: func(s *Settings, v any) error {
			switch n := v.(type) {
			case int:
				*p(s) = n
			case int64:
				*p(s) = int(n)
			case float64:
				if n != float64(int(n)) {
					return &TypeError{Expected: "integer", Actual: fmt.Sprint(n)}
				}
				*p(s) = int(n)
			default:
				return &TypeError{Expected: "integer", Actual: fmt.Sprintf("%T", v)}
			}
			return nil
		},
	}
}

func boolField(p func(s *Settings) *bool) field {
	return field{
		get: func(s *Settings) any { return *p(s) },
		set: func(s *Settings, v any) error {
			b, ok := v.(bool)
			if !ok {
				return &TypeError{Expected: "boolean", Actual: fmt.Sprintf("%T", v)}
			}
			*p(s) = b
			return nil
		},
	}
}

var fields = map[string]field{
	"defaultMode":         stringField(func(s *Settings) *string { return &s.DefaultMode }),
	"visualTabWidth":      intField(func(s *Settings) *int { return &s.VisualTabWidth }),
	"softTabWidth":        intField(func(s *Settings) *int { return &s.SoftTabWidth }),
	"softTabs":            boolField(func(s *Settings) *bool { return &s.SoftTabs }),
	"showLineNumbers":     boolField(func(s *Settings) *bool { return &s.ShowLineNumbers }),
	"relativeLineNumbers": boolField(func(s *Settings) *bool { return &s.RelativeLineNumbers }),
	"minimumGutterWidth":  intField(func(s *Settings) *int { return &s.MinimumGutterWidth }),
	"emptyLineFill":       stringField(func(s *Settings) *string { return &s.EmptyLineFill }),
	"colorscheme":         stringField(func(s *Settings) *string { return &s.Colorscheme }),
}

// Names returns every setting name in sorted order.
func Names() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the value of the named setting.
func (s *Settings) Get(name string) (any, error) {
	f, ok := fields[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownSetting)
	}
	return f.get(s), nil
}

// Set assigns value to the named setting. Integers may be given as any Go
// integer or an integral float, as Lua numbers are.
func (s *Settings) Set(name string, value any) error {
	f, ok := fields[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownSetting)
	}
	if err := f.set(s, value); err != nil {
		var te *TypeError
		if errors.As(err, &te) {
			te.Setting = name
		}
		return err
	}
	return nil
}

// Apply sets every entry of values, in sorted name order. All failures are
// reported together.
func (s *Settings) Apply(values map[string]any) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		if err := s.Set(name, values[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks the settings against the known modes and colour schemes.
func (s *Settings) Validate(modes, schemes []string) error {
	var errs []error
	invalid := func(name string, value any, msg string) {
		errs = append(errs, &ValidationError{Setting: name, Value: value, Message: msg})
	}

	if !slices.Contains(modes, s.DefaultMode) {
		invalid("defaultMode", s.DefaultMode, "unknown mode")
	}
	if !slices.Contains(schemes, s.Colorscheme) {
		invalid("colorscheme", s.Colorscheme, "unknown colour scheme")
	}
	if s.VisualTabWidth < 1 {
		invalid("visualTabWidth", s.VisualTabWidth, "must be positive")
	}
	if s.SoftTabWidth < 1 {
		invalid("softTabWidth", s.SoftTabWidth, "must be positive")
	}
	if s.MinimumGutterWidth < 0 {
		invalid("minimumGutterWidth", s.MinimumGutterWidth, "must not be negative")
	}
	if utf8.RuneCountInString(s.EmptyLineFill) != 1 {
		invalid("emptyLineFill", s.EmptyLineFill, "must be a single character")
	}
	return errors.Join(errs...)
}
