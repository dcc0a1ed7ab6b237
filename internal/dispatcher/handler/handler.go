// Package handler provides the action interface bound into keymaps and the
// result type actions report.
package handler

import (
	"github.com/dshills/modedit/internal/dispatcher/execctx"
)

// Action is a bound command. Parameterised commands are small value types
// carrying their parameters; Invoke receives the token that completed the
// key sequence.
type Action interface {
	// Name identifies the action in logs and configuration files.
	Name() string

	// Invoke runs the action against ctx.
	Invoke(ctx *execctx.Context, token string) Result
}

// Func adapts a function to the Action interface.
type Func struct {
	// ActionName is returned by Name.
	ActionName string

	// Fn is the function run by Invoke.
	Fn func(ctx *execctx.Context, token string) Result
}

// NewFunc creates a Func action.
func NewFunc(name string, fn func(ctx *execctx.Context, token string) Result) *Func {
	return &Func{ActionName: name, Fn: fn}
}

// Name implements Action.
func (f *Func) Name() string {
	return f.ActionName
}

// Invoke implements Action.
func (f *Func) Invoke(ctx *execctx.Context, token string) Result {
	if f.Fn == nil {
		return Errorf("action %s has no function", f.ActionName)
	}
	return f.Fn(ctx, token)
}
