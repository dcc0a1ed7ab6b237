// Package prompt provides actions that edit the single-line prompt shown on
// the status row.
//
// A prompt starts with a label the user should not edit. Actions that move
// left or delete take a Limit, the label's length in characters, and never
// cross it.
package prompt

import (
	"unicode/utf8"

	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
	"github.com/dshills/modedit/internal/input/key"
)

// Action names for prompt operations.
const (
	ActionBegin       = "prompt.begin"
	ActionInsert      = "prompt.insert"
	ActionDeleteLeft  = "prompt.deleteLeft"
	ActionCursorLeft  = "prompt.cursorLeft"
	ActionCursorRight = "prompt.cursorRight"
)

// Labels of the built-in prompts.
const (
	OpenLabel = "File path to open: "
	SaveLabel = "Save as: "
)

// Limit returns the column limit for a prompt labelled label.
func Limit(label string) int {
	return utf8.RuneCountInString(label)
}

// Begin shows Label on the prompt and switches to Mode.
type Begin struct {
	Label string
	Mode  string
}

// Name implements handler.Action.
func (Begin) Name() string { return ActionBegin }

// Invoke implements handler.Action.
func (a Begin) Invoke(ctx *execctx.Context, _ string) handler.Result {
	if err := ctx.Modes.SetMode(a.Mode); err != nil {
		return handler.Error(err)
	}
	ctx.SetPrompt(a.Label)
	return handler.Success()
}

// Insert types the token's character into the prompt.
type Insert struct{}

// Name implements handler.Action.
func (Insert) Name() string { return ActionInsert }

// Invoke implements handler.Action.
func (Insert) Invoke(ctx *execctx.Context, token string) handler.Result {
	text, ok := key.Text(token)
	if !ok {
		return handler.NoOp()
	}
	ctx.Prompt.Insert(text)
	return handler.Success()
}

// DeleteLeft deletes the character before the prompt cursor.
type DeleteLeft struct {
	Limit int
}

// Name implements handler.Action.
func (DeleteLeft) Name() string { return ActionDeleteLeft }

// Invoke implements handler.Action.
func (a DeleteLeft) Invoke(ctx *execctx.Context, _ string) handler.Result {
	if ctx.Prompt.CursorX() <= a.Limit {
		return handler.NoOp()
	}
	ctx.Prompt.DeleteCharacterLeft()
	return handler.Success()
}

// CursorLeft moves the prompt cursor one character left.
type CursorLeft struct {
	Limit int
}

// Name implements handler.Action.
func (CursorLeft) Name() string { return ActionCursorLeft }

// Invoke implements handler.Action.
func (a CursorLeft) Invoke(ctx *execctx.Context, _ string) handler.Result {
	if ctx.Prompt.CursorX() <= a.Limit {
		return handler.NoOp()
	}
	ctx.Prompt.CursorCharacterLeft(1)
	return handler.Success()
}

// CursorRight moves the prompt cursor one character right, stopping after
// the last character.
type CursorRight struct{}

// Name implements handler.Action.
func (CursorRight) Name() string { return ActionCursorRight }

// Invoke implements handler.Action.
func (CursorRight) Invoke(ctx *execctx.Context, _ string) handler.Result {
	p := ctx.Prompt
	if p.CursorX() >= len([]rune(p.CurrentLineText())) {
		return handler.NoOp()
	}
	p.MoveToColumn(p.CursorX() + 1)
	return handler.Success()
}
