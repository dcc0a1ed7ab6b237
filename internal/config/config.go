// Package config holds the editor settings and assembles them from their
// sources.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. built-in defaults
//  2. settings.toml in the config directory
//  3. MODEDIT_* environment variables
//
// The config directory may also hold keymap.yaml with extra bindings and
// init.lua, which the application runs after loading.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/modedit/internal/config/loader"
)

// File names inside the config directory.
const (
	SettingsFile = "settings.toml"
	KeymapFile   = "keymap.yaml"
	InitFile     = "init.lua"
)

// Config is the loaded configuration.
type Config struct {
	// Dir is the config directory, or "" when none was found.
	Dir string

	Settings *Settings

	// Bindings are the entries of keymap.yaml in file order.
	Bindings []loader.BindingSpec

	// Sources lists the files that contributed, for logging.
	Sources []string
}

// InitScript returns the path of init.lua, or "" when the directory has
// none.
func (c *Config) InitScript() string {
	if c.Dir == "" {
		return ""
	}
	path := filepath.Join(c.Dir, InitFile)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Options control Load.
type Options struct {
	// Dir overrides the config directory.
	Dir string

	// Environ is the environment, in os.Environ form.
	Environ []string

	// FS is used for reading files. Defaults to the OS.
	FS loader.FileSystem
}

// Load reads the settings and keymap files and applies environment
// overrides. Missing files are not errors.
func Load(opts Options) (*Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir(opts.Environ)
	}

	cfg := &Config{Dir: dir, Settings: Defaults()}

	var sources []loader.Loader
	if dir != "" {
		tl := loader.NewTOMLLoaderWithFS(fsys, filepath.Join(dir, SettingsFile))
		sources = append(sources, tl)
	}
	sources = append(sources, loader.NewEnvLoader(loader.DefaultEnvPrefix, opts.Environ))

	values := make(map[string]any)
	for _, src := range sources {
		v, err := src.Load()
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		if tl, ok := src.(*loader.TOMLLoader); ok {
			cfg.Sources = append(cfg.Sources, tl.Path())
		}
		loader.Merge(values, v)
	}
	if err := cfg.Settings.Apply(values); err != nil {
		return nil, fmt.Errorf("applying settings: %w", err)
	}

	if dir != "" {
		kl := loader.NewKeymapLoaderWithFS(fsys, filepath.Join(dir, KeymapFile))
		specs, err := kl.Load()
		if err != nil {
			return nil, err
		}
		if specs != nil {
			cfg.Bindings = specs
			cfg.Sources = append(cfg.Sources, kl.Path())
		}
	}

	return cfg, nil
}

// DefaultDir returns $XDG_CONFIG_HOME/modedit, or ~/.config/modedit when
// XDG_CONFIG_HOME is unset. It returns "" when neither can be determined.
func DefaultDir(environ []string) string {
	if xdg := lookupEnv(environ, "XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "modedit")
	}
	if home := lookupEnv(environ, "HOME"); home != "" {
		return filepath.Join(home, ".config", "modedit")
	}
	return ""
}

func lookupEnv(environ []string, key string) string {
	for i := len(environ) - 1; i >= 0; i-- {
		if k, v, ok := strings.Cut(environ[i], "="); ok && k == key {
			return v
		}
	}
	return ""
}

// WriteTOML writes s in settings.toml form.
func (s *Settings) WriteTOML(w io.Writer) error {
	enc := toml.NewEncoder(w)
	return enc.Encode(s)
}
