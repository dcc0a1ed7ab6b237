// Package app wires the editor together: configuration, keymap, buffers,
// mode controller, renderer and file watcher, driven by a single-goroutine
// event loop.
package app

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modedit/internal/config"
	"github.com/dshills/modedit/internal/dispatcher"
	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/engine/buffer"
	"github.com/dshills/modedit/internal/engine/bufferset"
	"github.com/dshills/modedit/internal/input/keymap"
	"github.com/dshills/modedit/internal/input/mode"
	"github.com/dshills/modedit/internal/plugin/lua"
	"github.com/dshills/modedit/internal/project/watcher"
	"github.com/dshills/modedit/internal/renderer"
	"github.com/dshills/modedit/internal/renderer/backend"
	"github.com/dshills/modedit/internal/renderer/style"
)

// Screen is the terminal the application draws on and reads events from.
type Screen interface {
	backend.Backend

	// PollEvent returns the next event, or nil when none is pending.
	PollEvent() tcell.Event
}

// Options configures the application.
type Options struct {
	// File is opened at startup. Empty starts with an untitled buffer.
	File string

	// ReadOnly opens File read-only.
	ReadOnly bool

	// ConfigDir overrides the config directory.
	ConfigDir string

	// Environ is the environment, in os.Environ form. Nil means the
	// process environment.
	Environ []string

	// Logger receives diagnostics. Nil discards them.
	Logger *Logger

	// Screen is drawn on by Run.
	Screen Screen

	// DisableWatcher turns off external-change notices.
	DisableWatcher bool
}

// Application is the running editor.
type Application struct {
	opts   Options
	logger *Logger

	config     *config.Config
	table      *keymap.Table
	registry   *dispatcher.Registry
	controller *mode.Controller
	ctx        *execctx.Context

	buffers *bufferset.Set
	prompt  *buffer.Buffer

	screen   Screen
	renderer *renderer.Renderer
	watcher  *watcher.Watcher
	notified map[string]int64 // path -> mod time already reported
	metrics  *Metrics

	dirty   bool
	running atomic.Bool
}

// New loads the configuration, builds the keymap and opens the initial
// buffer.
func New(opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	if opts.Environ == nil {
		opts.Environ = os.Environ()
	}

	app := &Application{
		opts:     opts,
		logger:   logger,
		screen:   opts.Screen,
		notified: make(map[string]int64),
		metrics:  NewMetrics(),
	}
	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes the components in dependency order.
func (app *Application) bootstrap() error {
	log := app.logger.WithComponent("config")

	// 1. Settings and keymap file
	cfg, err := config.Load(config.Options{Dir: app.opts.ConfigDir, Environ: app.opts.Environ})
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg
	log.Info("config loaded", "dir", cfg.Dir, "sources", strings.Join(cfg.Sources, ","))

	// 2. Keymap: built-in bindings, then keymap.yaml, then init.lua
	app.table = keymap.NewTable(mode.Builtin()...)
	app.table.OnOverwrite(func(o keymap.Overwrite) {
		app.logger.WithComponent("keymap").Debug("binding replaced",
			"mode", o.Mode, "keys", strings.Join(o.Sequence, " "), "replaced", o.Replaced)
	})
	app.registry = dispatcher.DefaultRegistry()
	if err := registerDefaults(app.table, app.registry); err != nil {
		return &InitError{Component: "keymap", Err: err}
	}
	for _, spec := range cfg.Bindings {
		if err := bind(app.table, app.registry, spec.Modes, spec.Keys, spec.Action, spec.Args); err != nil {
			return &InitError{Component: "keymap", Err: NewOperationError("bind", spec.Action, err).
				WithContext(config.KeymapFile + " line " + strconv.Itoa(spec.Line))}
		}
	}
	if script := cfg.InitScript(); script != "" {
		if err := lua.RunInit(context.Background(), script, &luaHost{app: app}); err != nil {
			return &InitError{Component: "init script", Err: err}
		}
		log.Info("init script run", "path", script)
	}

	// 3. Settings are final from here on
	if err := cfg.Settings.Validate(app.table.Modes(), style.Names()); err != nil {
		return &InitError{Component: "config", Err: err}
	}

	// 4. Buffers
	app.buffers = bufferset.New(buffer.DefaultPageWidth, buffer.DefaultPageHeight-1)
	app.prompt = buffer.New(buffer.WithPageSize(buffer.DefaultPageWidth, 1))
	if app.opts.File != "" {
		if _, err := app.buffers.Open(app.opts.File, app.opts.ReadOnly); err != nil {
			return NewOperationError("open", app.opts.File, err)
		}
	} else {
		app.buffers.NewUntitled()
	}

	// 5. Mode controller and action context
	app.controller, err = mode.NewController(app.table, cfg.Settings.DefaultMode)
	if err != nil {
		return &InitError{Component: "mode", Err: err}
	}
	app.controller.OnChange(func(from, to string) {
		app.logger.WithComponent("mode").Debug("mode changed", "from", from, "to", to)
	})
	app.ctx = &execctx.Context{
		Buffers:  app.buffers,
		Prompt:   app.prompt,
		Modes:    app.controller,
		Settings: cfg.Settings,
		Logger:   app.logger.WithComponent("action"),
	}

	// 6. Renderer
	if app.screen != nil {
		scheme, _ := style.Lookup(cfg.Settings.Colorscheme)
		app.renderer = renderer.New(app.screen, scheme)
	}

	// 7. File watcher, optional
	if !app.opts.DisableWatcher {
		w, err := watcher.New()
		if err != nil {
			app.logger.WithComponent("watcher").Warn("file watcher unavailable", "error", err)
		} else {
			app.watcher = w
			app.syncWatcher()
		}
	}

	app.dirty = true
	return nil
}

// Close releases the file watcher.
func (app *Application) Close() {
	if app.watcher != nil {
		_ = app.watcher.Close()
		app.watcher = nil
	}
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config { return app.config }

// Settings returns the editor settings.
func (app *Application) Settings() *config.Settings { return app.config.Settings }

// Buffers returns the open buffers.
func (app *Application) Buffers() *bufferset.Set { return app.buffers }

// Prompt returns the prompt buffer.
func (app *Application) Prompt() *buffer.Buffer { return app.prompt }

// Mode returns the current mode.
func (app *Application) Mode() string { return app.controller.Mode() }

// Keymap returns the keybinding table.
func (app *Application) Keymap() *keymap.Table { return app.table }

// Metrics returns the event loop counters.
func (app *Application) Metrics() MetricsSnapshot { return app.metrics.Snapshot() }

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool { return app.running.Load() }

// View returns the state the next frame is drawn from.
func (app *Application) View() renderer.View {
	return renderer.View{
		Buffers:  app.buffers,
		Prompt:   app.prompt,
		Mode:     app.controller.Mode(),
		Pending:  app.controller.PendingDisplay(),
		Settings: app.config.Settings,
	}
}

// luaHost applies init.lua calls to the application being built.
type luaHost struct {
	app *Application
}

func (h *luaHost) Set(name string, value any) error {
	return h.app.config.Settings.Set(name, value)
}

func (h *luaHost) Bind(modes, seqs []string, action string, args map[string]any) error {
	return bind(h.app.table, h.app.registry, modes, seqs, action, args)
}

func (h *luaHost) Print(msg string) {
	h.app.logger.WithComponent("lua").Info("%s", msg)
}
