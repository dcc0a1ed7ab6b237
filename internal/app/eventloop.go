package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
	"github.com/dshills/modedit/internal/input/key"
	"github.com/dshills/modedit/internal/input/mode"
)

// idleSleep is how long the loop sleeps after an iteration with no input.
const idleSleep = 10 * time.Millisecond

// Run polls for input and redraws until a quit action fires.
func (app *Application) Run() error {
	if app.screen == nil {
		return ErrNoScreen
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	for {
		busy, err := app.Step()
		if errors.Is(err, execctx.ErrQuit) {
			s := app.metrics.Snapshot()
			app.logger.Info("quit", "fired", s.Fired, "pending", s.Pending,
				"unbound", s.NoAction, "frames", s.Frames, "uptime", s.Uptime.Round(time.Second))
			return nil
		}
		if err != nil {
			return err
		}
		if !busy {
			time.Sleep(idleSleep)
		}
	}
}

// Step runs one loop iteration: at most one input event, external-change
// checks, then a redraw if anything changed. It reports whether an event
// was handled. execctx.ErrQuit means the session is over.
func (app *Application) Step() (bool, error) {
	var ev tcell.Event
	if app.screen != nil {
		ev = app.screen.PollEvent()
	}
	if ev != nil {
		if err := app.HandleEvent(ev); err != nil {
			return true, err
		}
		app.syncWatcher()
	}
	app.checkExternalChanges()

	if app.dirty {
		app.Draw()
	}
	return ev != nil, nil
}

// HandleEvent processes one terminal event. An interrupt event ends the
// session like a forced exit.
func (app *Application) HandleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		for _, tok := range key.FromEvent(ev) {
			if err := app.HandleToken(tok); err != nil {
				return err
			}
		}
	case *tcell.EventResize:
		app.dirty = true
	case *tcell.EventInterrupt:
		app.logger.Info("interrupted")
		return execctx.ErrQuit
	}
	return nil
}

// HandleToken feeds one key token to the mode controller and applies the
// result of any action it fires.
func (app *Application) HandleToken(tok string) error {
	if app.ctx.ClearTransient() {
		app.dirty = true
	}

	before := app.controller.Mode()
	outcome, res := app.controller.Dispatch(tok, app.ctx)
	app.metrics.RecordToken(outcome)
	app.logger.WithComponent("dispatch").Debug("token",
		"token", tok, "mode", before, "outcome", outcome)

	app.dirty = true
	if outcome != mode.Fired {
		return nil
	}
	return app.applyResult(res)
}

// applyResult shows an action's message or error on the prompt. Notices
// are not shown while the prompt is being edited.
func (app *Application) applyResult(res handler.Result) error {
	notify := func(msg string) {
		if !mode.IsPrompt(app.controller.Mode()) {
			app.ctx.Notify(msg)
		}
	}

	switch {
	case res.Error == nil:
		if res.Message != "" {
			notify(res.Message)
		}
		return nil
	case errors.Is(res.Error, execctx.ErrQuit):
		return execctx.ErrQuit
	case errors.Is(res.Error, ErrUnsavedChanges):
		return nil
	}

	app.metrics.RecordActionError()
	app.logger.WithComponent("dispatch").Warn("action failed", "error", res.Error)
	notify(res.Error.Error())
	return nil
}

// Draw repaints the screen.
func (app *Application) Draw() {
	app.dirty = false
	if app.renderer == nil {
		return
	}
	start := time.Now()
	app.renderer.Draw(app.View())
	app.metrics.RecordFrame(time.Since(start))
}

// syncWatcher watches exactly the files of the open buffers.
func (app *Application) syncWatcher() {
	if app.watcher == nil {
		return
	}
	paths := make([]string, 0, app.buffers.Len())
	for _, b := range app.buffers.Buffers() {
		paths = append(paths, b.FilePath())
	}
	if err := app.watcher.Sync(paths); err != nil {
		app.logger.WithComponent("watcher").Debug("sync", "error", err)
	}
}

// checkExternalChanges notices open files whose modification time no
// longer matches the one recorded when they were read or written.
func (app *Application) checkExternalChanges() {
	if app.watcher == nil {
		return
	}
	log := app.logger.WithComponent("watcher")
	events, err := app.watcher.Poll()
	if err != nil {
		log.Warn("poll", "error", err)
	}

	for _, ev := range events {
		i := app.buffers.Find(ev.Path)
		if i < 0 {
			continue
		}
		b := app.buffers.At(i)
		info, err := os.Stat(ev.Path)
		if err != nil {
			log.Debug("changed file unreadable", "path", ev.Path, "op", ev.Op, "error", err)
			continue
		}
		mod := info.ModTime()
		if b.ModTime().IsZero() || mod.Equal(b.ModTime()) || app.notified[ev.Path] == mod.UnixNano() {
			continue
		}
		app.notified[ev.Path] = mod.UnixNano()
		log.Info("file changed on disk", "path", ev.Path, "op", ev.Op)
		if !mode.IsPrompt(app.controller.Mode()) {
			app.ctx.Notify(fmt.Sprintf("%s changed on disk", b.FilePath()))
			app.dirty = true
		}
	}
}
