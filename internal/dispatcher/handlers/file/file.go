// Package file provides actions that read and write documents.
package file

import (
	"fmt"
	"strings"

	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
	"github.com/dshills/modedit/internal/dispatcher/handlers/prompt"
	"github.com/dshills/modedit/internal/input/mode"
)

// Action names for file operations.
const (
	ActionWrite  = "file.write"  // write the current buffer
	ActionOpen   = "file.open"   // open the path typed on the prompt
	ActionSaveAs = "file.saveAs" // write the current buffer to the path typed on the prompt
)

// Write saves the current buffer to its file. A buffer with no file
// starts the save-as prompt instead.
type Write struct{}

// Name implements handler.Action.
func (Write) Name() string { return ActionWrite }

// Invoke implements handler.Action.
func (Write) Invoke(ctx *execctx.Context, _ string) handler.Result {
	b, err := ctx.EditableBuffer()
	if err != nil {
		return handler.Error(err)
	}
	if b.FilePath() == "" {
		if err := ctx.Modes.SetMode(mode.SaveFile); err != nil {
			return handler.Error(err)
		}
		ctx.SetPrompt(prompt.SaveLabel)
		return handler.Success()
	}
	if err := b.Write(b.IsNewFile()); err != nil {
		return handler.Error(err)
	}
	return handler.SuccessWithMessage(fmt.Sprintf("%s written", b.FilePath()))
}

// promptPath returns the prompt text after the first start characters.
func promptPath(ctx *execctx.Context, start int) string {
	text := []rune(ctx.PromptText())
	if start > len(text) {
		return ""
	}
	return strings.TrimSpace(string(text[start:]))
}

// leavePrompt clears the prompt and returns to the default mode.
func leavePrompt(ctx *execctx.Context) error {
	ctx.Prompt.Close()
	target := mode.Insert
	if ctx.Settings != nil {
		target = ctx.Settings.DefaultMode
	}
	return ctx.Modes.SetMode(target)
}

// Open opens the path typed on the prompt after the label's Start
// characters, or switches to it when it is already open.
type Open struct {
	Start int
}

// Name implements handler.Action.
func (Open) Name() string { return ActionOpen }

// Invoke implements handler.Action.
func (a Open) Invoke(ctx *execctx.Context, _ string) handler.Result {
	path := promptPath(ctx, a.Start)
	if err := leavePrompt(ctx); err != nil {
		return handler.Error(err)
	}
	if path == "" {
		return handler.NoOpWithMessage("no file name given")
	}
	if _, err := ctx.Buffers.Open(path, false); err != nil {
		return handler.Error(err)
	}
	ctx.Debugf("opened buffer", "path", path)
	return handler.Success()
}

// SaveAs associates the current buffer with the path typed on the prompt
// and writes it, creating the file when missing.
type SaveAs struct {
	Start int
}

// Name implements handler.Action.
func (SaveAs) Name() string { return ActionSaveAs }

// Invoke implements handler.Action.
func (a SaveAs) Invoke(ctx *execctx.Context, _ string) handler.Result {
	path := promptPath(ctx, a.Start)
	if err := leavePrompt(ctx); err != nil {
		return handler.Error(err)
	}
	if path == "" {
		return handler.NoOpWithMessage("no file name given")
	}
	b, err := ctx.EditableBuffer()
	if err != nil {
		return handler.Error(err)
	}

	if err := b.WriteAs(path); err != nil {
		return handler.Error(err)
	}
	return handler.SuccessWithMessage(fmt.Sprintf("%s written", path))
}
