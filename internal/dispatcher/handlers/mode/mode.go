// Package mode provides the action that switches the active mode.
package mode

import (
	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
)

// ActionSet is the name of Set.
const ActionSet = "mode.set"

// Set switches to Mode and clears the prompt. An empty Mode means the
// configured default mode.
type Set struct {
	Mode string
}

// Name implements handler.Action.
func (Set) Name() string { return ActionSet }

// Invoke implements handler.Action.
func (a Set) Invoke(ctx *execctx.Context, _ string) handler.Result {
	target := a.Mode
	if target == "" && ctx.Settings != nil {
		target = ctx.Settings.DefaultMode
	}
	if err := ctx.Modes.SetMode(target); err != nil {
		return handler.Error(err)
	}
	if ctx.Prompt != nil {
		ctx.Prompt.Close()
	}
	return handler.Success()
}
