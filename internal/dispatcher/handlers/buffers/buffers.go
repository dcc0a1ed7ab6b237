// Package buffers provides actions that change which open buffer is
// current.
package buffers

import (
	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
)

// Action names for buffer switching.
const (
	ActionForward  = "buffers.forward"
	ActionBackward = "buffers.backward"
	ActionPrevious = "buffers.previous"
	ActionNew      = "buffers.new"
)

// Forward makes the next buffer current, stopping at the last one.
type Forward struct{}

// Name implements handler.Action.
func (Forward) Name() string { return ActionForward }

// Invoke implements handler.Action.
func (Forward) Invoke(ctx *execctx.Context, _ string) handler.Result {
	if ctx.Buffers.Len() == 0 {
		return handler.Error(execctx.ErrNoBuffer)
	}
	ctx.Buffers.Forward()
	return handler.Success()
}

// Backward makes the preceding buffer current, stopping at the first one.
type Backward struct{}

// Name implements handler.Action.
func (Backward) Name() string { return ActionBackward }

// Invoke implements handler.Action.
func (Backward) Invoke(ctx *execctx.Context, _ string) handler.Result {
	if ctx.Buffers.Len() == 0 {
		return handler.Error(execctx.ErrNoBuffer)
	}
	ctx.Buffers.Backward()
	return handler.Success()
}

// Previous returns to the buffer that was current before the last switch.
type Previous struct{}

// Name implements handler.Action.
func (Previous) Name() string { return ActionPrevious }

// Invoke implements handler.Action.
func (Previous) Invoke(ctx *execctx.Context, _ string) handler.Result {
	if ctx.Buffers.Len() == 0 {
		return handler.Error(execctx.ErrNoBuffer)
	}
	ctx.Buffers.SwitchToPrevious()
	return handler.Success()
}

// New adds an untitled buffer and makes it current.
type New struct{}

// Name implements handler.Action.
func (New) Name() string { return ActionNew }

// Invoke implements handler.Action.
func (New) Invoke(ctx *execctx.Context, _ string) handler.Result {
	ctx.Buffers.NewUntitled()
	return handler.Success()
}
