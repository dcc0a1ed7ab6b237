package execctx

import (
	"errors"
	"testing"

	"github.com/dshills/modedit/internal/engine/buffer"
	"github.com/dshills/modedit/internal/engine/bufferset"
)

func TestBuffer(t *testing.T) {
	ctx := &Context{}
	if ctx.Buffer() != nil {
		t.Error("expected nil buffer without a set")
	}

	ctx.Buffers = bufferset.New(80, 24)
	b := ctx.Buffers.NewUntitled()
	if ctx.Buffer() != b {
		t.Error("Buffer did not return the current buffer")
	}
}

func TestEditableBuffer(t *testing.T) {
	ctx := &Context{Buffers: bufferset.New(80, 24)}
	if _, err := ctx.EditableBuffer(); !errors.Is(err, ErrNoBuffer) {
		t.Errorf("empty set: %v, want ErrNoBuffer", err)
	}

	b := ctx.Buffers.NewUntitled()
	if got, err := ctx.EditableBuffer(); err != nil || got != b {
		t.Errorf("EditableBuffer = %v, %v", got, err)
	}

	b.SetReadOnly(true)
	if _, err := ctx.EditableBuffer(); !errors.Is(err, ErrReadOnly) {
		t.Errorf("read-only: %v, want ErrReadOnly", err)
	}
}

func TestPrompt(t *testing.T) {
	ctx := &Context{Prompt: buffer.New()}

	ctx.SetPrompt("File path to open: ")
	if ctx.PromptText() != "File path to open: " {
		t.Errorf("prompt = %q", ctx.PromptText())
	}
	if ctx.Prompt.CursorX() != len("File path to open: ") {
		t.Errorf("prompt cursor = %d", ctx.Prompt.CursorX())
	}
	if ctx.ClearTransient() {
		t.Error("a plain prompt was cleared as a notice")
	}

	ctx.Notify("saved")
	if ctx.PromptText() != "saved" {
		t.Errorf("prompt = %q", ctx.PromptText())
	}
	if !ctx.ClearTransient() {
		t.Error("notice was not cleared")
	}
	if ctx.PromptText() != "" {
		t.Errorf("prompt after clear = %q", ctx.PromptText())
	}
	if ctx.ClearTransient() {
		t.Error("cleared twice")
	}
}

func TestDebugfWithoutLogger(t *testing.T) {
	ctx := &Context{}
	ctx.Debugf("no logger %d", 1)
}
