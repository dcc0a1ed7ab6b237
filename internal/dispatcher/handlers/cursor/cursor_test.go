package cursor_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/modedit/internal/dispatcher/execctx"
	cursorhandler "github.com/dshills/modedit/internal/dispatcher/handlers/cursor"
	"github.com/dshills/modedit/internal/engine/bufferset"
)

func newContext(t *testing.T, lines ...string) *execctx.Context {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	set := bufferset.New(80, 24)
	if _, err := set.Open(path, true); err != nil {
		t.Fatal(err)
	}
	return &execctx.Context{Buffers: set}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name  string
		moves []cursorhandler.Move
		wantX int
		wantY int
	}{
		{"right", []cursorhandler.Move{{Motion: cursorhandler.Right}}, 1, 0},
		{"right count", []cursorhandler.Move{{Motion: cursorhandler.Right, Count: 3}}, 3, 0},
		{"right wraps", []cursorhandler.Move{{Motion: cursorhandler.Right, Count: 6}}, 0, 1},
		{"down", []cursorhandler.Move{{Motion: cursorhandler.Down}}, 0, 1},
		{"down clamps column", []cursorhandler.Move{
			{Motion: cursorhandler.LineEnd},
			{Motion: cursorhandler.Down},
		}, 2, 1},
		{"remembered column", []cursorhandler.Move{
			{Motion: cursorhandler.LineEnd},
			{Motion: cursorhandler.Down},
			{Motion: cursorhandler.Down},
		}, 5, 2},
		{"up at top", []cursorhandler.Move{{Motion: cursorhandler.Up, Count: 2}}, 0, 0},
		{"left wraps", []cursorhandler.Move{
			{Motion: cursorhandler.Down},
			{Motion: cursorhandler.Left},
		}, 5, 0},
		{"line end then start", []cursorhandler.Move{
			{Motion: cursorhandler.LineEnd},
			{Motion: cursorhandler.LineStart},
		}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(t, "hello", "ab", "world")
			for _, m := range tt.moves {
				if r := m.Invoke(ctx, ""); !r.IsOK() {
					t.Fatalf("%s: %v", m.Name(), r.Error)
				}
			}
			b := ctx.Buffer()
			if b.CursorX() != tt.wantX || b.CursorY() != tt.wantY {
				t.Errorf("cursor = (%d,%d), want (%d,%d)", b.CursorX(), b.CursorY(), tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMoveWithoutBuffer(t *testing.T) {
	ctx := &execctx.Context{Buffers: bufferset.New(80, 24)}
	r := cursorhandler.Move{Motion: cursorhandler.Left}.Invoke(ctx, "")
	if !errors.Is(r.Error, execctx.ErrNoBuffer) {
		t.Errorf("error = %v, want ErrNoBuffer", r.Error)
	}
}

func TestMotionNames(t *testing.T) {
	for _, name := range []string{
		cursorhandler.ActionMoveLeft,
		cursorhandler.ActionMoveRight,
		cursorhandler.ActionMoveUp,
		cursorhandler.ActionMoveDown,
		cursorhandler.ActionMoveLineStart,
		cursorhandler.ActionMoveLineEnd,
	} {
		m, ok := cursorhandler.MotionFor(name)
		if !ok {
			t.Errorf("MotionFor(%q) not found", name)
			continue
		}
		if got := (cursorhandler.Move{Motion: m}).Name(); got != name {
			t.Errorf("Name() = %q, want %q", got, name)
		}
	}
	if _, ok := cursorhandler.MotionFor("cursor.teleport"); ok {
		t.Error("unknown name resolved")
	}
}
