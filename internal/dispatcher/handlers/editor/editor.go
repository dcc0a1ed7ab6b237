// Package editor provides actions that change document text.
//
// Every action here refuses read-only buffers with execctx.ErrReadOnly
// and leaves them untouched.
package editor

import (
	"strings"

	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
	"github.com/dshills/modedit/internal/engine/buffer"
	"github.com/dshills/modedit/internal/input/key"
)

// Action names for editing operations.
const (
	ActionInsertCharacter = "editor.insertCharacter"
	ActionInsertText      = "editor.insertText"
	ActionIndent          = "editor.indent"
	ActionInsertLineAbove = "editor.insertLineAbove"
	ActionInsertLineBelow = "editor.insertLineBelow"
	ActionSplitLine       = "editor.splitLine"
	ActionDeleteRight     = "editor.deleteRight"
	ActionDeleteLeft      = "editor.deleteLeft"
	ActionDeleteLine      = "editor.deleteLine"
)

// edit runs fn on the current buffer when it may be edited.
func edit(ctx *execctx.Context, fn func(b *buffer.Buffer)) handler.Result {
	b, err := ctx.EditableBuffer()
	if err != nil {
		return handler.Error(err)
	}
	fn(b)
	return handler.Success()
}

// InsertCharacter types the character of the token that fired it. Space
// types a blank; tokens that type nothing are ignored.
type InsertCharacter struct{}

// Name implements handler.Action.
func (InsertCharacter) Name() string { return ActionInsertCharacter }

// Invoke implements handler.Action.
func (InsertCharacter) Invoke(ctx *execctx.Context, token string) handler.Result {
	text, ok := key.Text(token)
	if !ok {
		return handler.NoOp()
	}
	return edit(ctx, func(b *buffer.Buffer) { b.Insert(text) })
}

// InsertText types fixed text regardless of the token.
type InsertText struct {
	Text string
}

// Name implements handler.Action.
func (InsertText) Name() string { return ActionInsertText }

// Invoke implements handler.Action.
func (a InsertText) Invoke(ctx *execctx.Context, _ string) handler.Result {
	return edit(ctx, func(b *buffer.Buffer) { b.Insert(a.Text) })
}

// Indent inserts one level of indentation: softTabWidth blanks when soft
// tabs are on, otherwise a tab character.
type Indent struct{}

// Name implements handler.Action.
func (Indent) Name() string { return ActionIndent }

// Invoke implements handler.Action.
func (Indent) Invoke(ctx *execctx.Context, _ string) handler.Result {
	text := "\t"
	if s := ctx.Settings; s != nil && s.SoftTabs {
		text = strings.Repeat(" ", s.SoftTabWidth)
	}
	return edit(ctx, func(b *buffer.Buffer) { b.Insert(text) })
}

// InsertLineAbove opens Count blank lines above the cursor line.
type InsertLineAbove struct {
	Count int
}

// Name implements handler.Action.
func (InsertLineAbove) Name() string { return ActionInsertLineAbove }

// Invoke implements handler.Action.
func (a InsertLineAbove) Invoke(ctx *execctx.Context, _ string) handler.Result {
	return edit(ctx, func(b *buffer.Buffer) { b.InsertLineAbove(max(a.Count, 1)) })
}

// InsertLineBelow opens Count blank lines below the cursor line.
type InsertLineBelow struct {
	Count int
}

// Name implements handler.Action.
func (InsertLineBelow) Name() string { return ActionInsertLineBelow }

// Invoke implements handler.Action.
func (a InsertLineBelow) Invoke(ctx *execctx.Context, _ string) handler.Result {
	return edit(ctx, func(b *buffer.Buffer) { b.InsertLineBelow(max(a.Count, 1)) })
}

// SplitLine breaks the line at the cursor.
type SplitLine struct{}

// Name implements handler.Action.
func (SplitLine) Name() string { return ActionSplitLine }

// Invoke implements handler.Action.
func (SplitLine) Invoke(ctx *execctx.Context, _ string) handler.Result {
	return edit(ctx, (*buffer.Buffer).SplitLine)
}

// DeleteRight deletes the character under the cursor, joining the next
// line at the end of a line.
type DeleteRight struct{}

// Name implements handler.Action.
func (DeleteRight) Name() string { return ActionDeleteRight }

// Invoke implements handler.Action.
func (DeleteRight) Invoke(ctx *execctx.Context, _ string) handler.Result {
	return edit(ctx, (*buffer.Buffer).DeleteCharacterRight)
}

// DeleteLeft deletes the character before the cursor, joining onto the
// previous line at the start of a line.
type DeleteLeft struct{}

// Name implements handler.Action.
func (DeleteLeft) Name() string { return ActionDeleteLeft }

// Invoke implements handler.Action.
func (DeleteLeft) Invoke(ctx *execctx.Context, _ string) handler.Result {
	return edit(ctx, (*buffer.Buffer).DeleteCharacterLeft)
}

// DeleteLine removes the cursor line.
type DeleteLine struct{}

// Name implements handler.Action.
func (DeleteLine) Name() string { return ActionDeleteLine }

// Invoke implements handler.Action.
func (DeleteLine) Invoke(ctx *execctx.Context, _ string) handler.Result {
	return edit(ctx, (*buffer.Buffer).DeleteLine)
}
