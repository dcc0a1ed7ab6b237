// Package session provides the actions that end the editing session.
package session

import (
	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
)

// Action names for session operations.
const (
	ActionQuit = "session.quit"
	ActionExit = "session.exit"
)

// UnsavedNotice is shown when a quit is refused.
const UnsavedNotice = "A file has unsaved changes. Press Ctrl e to exit without saving."

// Quit ends the session unless a buffer has unsaved changes, in which case
// it shows UnsavedNotice and reports execctx.ErrUnsavedChanges.
type Quit struct{}

// Name implements handler.Action.
func (Quit) Name() string { return ActionQuit }

// Invoke implements handler.Action.
func (Quit) Invoke(ctx *execctx.Context, _ string) handler.Result {
	if ctx.Buffers != nil && ctx.Buffers.HasUnsavedChanges() {
		ctx.Notify(UnsavedNotice)
		return handler.Error(execctx.ErrUnsavedChanges)
	}
	return handler.Error(execctx.ErrQuit)
}

// Exit ends the session without checking for unsaved changes.
type Exit struct{}

// Name implements handler.Action.
func (Exit) Name() string { return ActionExit }

// Invoke implements handler.Action.
func (Exit) Invoke(*execctx.Context, string) handler.Result {
	return handler.Error(execctx.ErrQuit)
}
