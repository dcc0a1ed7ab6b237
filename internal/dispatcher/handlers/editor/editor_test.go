package editor_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/modedit/internal/config"
	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
	"github.com/dshills/modedit/internal/dispatcher/handlers/editor"
	"github.com/dshills/modedit/internal/engine/bufferset"
)

func newContext(t *testing.T, readOnly bool, lines ...string) *execctx.Context {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	set := bufferset.New(80, 24)
	if _, err := set.Open(path, readOnly); err != nil {
		t.Fatal(err)
	}
	return &execctx.Context{Buffers: set, Settings: config.Defaults()}
}

type step struct {
	action handler.Action
	token  string
}

func TestEditing(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		steps []step
		want  []string
		wantX int
		wantY int
	}{
		{
			name:  "insert characters",
			lines: []string{"world"},
			steps: []step{
				{editor.InsertCharacter{}, "h"},
				{editor.InsertCharacter{}, "i"},
				{editor.InsertCharacter{}, "Space"},
			},
			want:  []string{"hi world"},
			wantX: 3,
		},
		{
			name:  "named token types nothing",
			lines: []string{"abc"},
			steps: []step{{editor.InsertCharacter{}, "Enter"}},
			want:  []string{"abc"},
		},
		{
			name:  "insert text",
			lines: []string{"abc"},
			steps: []step{{editor.InsertText{Text: "xy"}, "Ctrl"}},
			want:  []string{"xyabc"},
			wantX: 2,
		},
		{
			name:  "hard tab",
			lines: []string{"x"},
			steps: []step{{editor.Indent{}, "Tab"}},
			want:  []string{"\tx"},
			wantX: 1,
		},
		{
			name:  "line above",
			lines: []string{"a", "b"},
			steps: []step{{editor.InsertLineAbove{Count: 2}, "N"}},
			want:  []string{"", "", "a", "b"},
		},
		{
			name:  "line below",
			lines: []string{"a", "b"},
			steps: []step{{editor.InsertLineBelow{}, "o"}},
			want:  []string{"a", "", "b"},
			wantY: 1,
		},
		{
			name:  "split line",
			lines: []string{"hello"},
			steps: []step{
				{editor.InsertText{Text: "he"}, ""},
				{editor.SplitLine{}, "Enter"},
			},
			want:  []string{"he", "hello"},
			wantY: 1,
		},
		{
			name:  "delete right",
			lines: []string{"abc"},
			steps: []step{{editor.DeleteRight{}, "Delete"}},
			want:  []string{"bc"},
		},
		{
			name:  "delete left joins",
			lines: []string{"ab", "cd"},
			steps: []step{
				{editor.InsertLineBelow{}, ""},
				{editor.DeleteLeft{}, "Backspace"},
			},
			want:  []string{"ab", "cd"},
			wantX: 2,
		},
		{
			name:  "delete line",
			lines: []string{"a", "b", "c"},
			steps: []step{{editor.DeleteLine{}, "D"}},
			want:  []string{"b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(t, false, tt.lines...)
			for _, s := range tt.steps {
				if r := s.action.Invoke(ctx, s.token); r.IsError() {
					t.Fatalf("%s: %v", s.action.Name(), r.Error)
				}
			}
			b := ctx.Buffer()
			if diff := cmp.Diff(tt.want, b.Lines()); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			if b.CursorX() != tt.wantX || b.CursorY() != tt.wantY {
				t.Errorf("cursor = (%d,%d), want (%d,%d)", b.CursorX(), b.CursorY(), tt.wantX, tt.wantY)
			}
		})
	}
}

func TestEditingMarksBufferDirty(t *testing.T) {
	ctx := newContext(t, false, "abc")
	if ctx.Buffer().HasUnsavedChanges() {
		t.Fatal("freshly opened buffer is dirty")
	}
	editor.DeleteRight{}.Invoke(ctx, "")
	if !ctx.Buffer().HasUnsavedChanges() {
		t.Error("delete did not mark the buffer dirty")
	}
}

func TestSoftTabs(t *testing.T) {
	ctx := newContext(t, false, "x")
	ctx.Settings.SoftTabs = true
	ctx.Settings.SoftTabWidth = 2

	editor.Indent{}.Invoke(ctx, "Tab")
	if got := ctx.Buffer().CurrentLineText(); got != "  x" {
		t.Errorf("line = %q, want %q", got, "  x")
	}
}

func TestReadOnlyRefused(t *testing.T) {
	actions := []handler.Action{
		editor.InsertCharacter{},
		editor.InsertText{Text: "y"},
		editor.Indent{},
		editor.InsertLineAbove{},
		editor.InsertLineBelow{},
		editor.SplitLine{},
		editor.DeleteRight{},
		editor.DeleteLeft{},
		editor.DeleteLine{},
	}
	for _, a := range actions {
		t.Run(a.Name(), func(t *testing.T) {
			ctx := newContext(t, true, "abc", "def")
			r := a.Invoke(ctx, "x")
			if !errors.Is(r.Error, execctx.ErrReadOnly) {
				t.Errorf("error = %v, want ErrReadOnly", r.Error)
			}
			if diff := cmp.Diff([]string{"abc", "def"}, ctx.Buffer().Lines()); diff != "" {
				t.Errorf("read-only buffer changed (-want +got):\n%s", diff)
			}
			if ctx.Buffer().HasUnsavedChanges() {
				t.Error("read-only buffer marked dirty")
			}
		})
	}
}
