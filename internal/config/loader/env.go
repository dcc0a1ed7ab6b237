package loader

import (
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of environment overrides.
const DefaultEnvPrefix = "MODEDIT_"

// EnvLoader loads settings from environment variables. A variable such as
// MODEDIT_VISUAL_TAB_WIDTH maps to the setting visualTabWidth.
type EnvLoader struct {
	prefix  string
	environ []string
}

// NewEnvLoader creates a loader reading environ, in the "KEY=value" form
// os.Environ returns. The prefix should include the trailing underscore.
func NewEnvLoader(prefix string, environ []string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		environ: environ,
	}
}

// Load returns the prefixed variables as settings. Empty values are kept.
func (l *EnvLoader) Load() (map[string]any, error) {
	settings := make(map[string]any)
	for _, env := range l.environ {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		key := EnvToSetting(strings.TrimPrefix(name, l.prefix))
		if key == "" {
			continue
		}
		settings[key] = parseEnvValue(value)
	}
	return settings, nil
}

// EnvToSetting converts VISUAL_TAB_WIDTH to visualTabWidth.
func EnvToSetting(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		part = strings.ToLower(part)
		if sb.Len() > 0 {
			part = strings.ToUpper(part[:1]) + part[1:]
		}
		sb.WriteString(part)
	}
	return sb.String()
}

// parseEnvValue converts booleans and integers; everything else stays a
// string.
func parseEnvValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}
