package bufferset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/modedit/internal/engine/buffer"
	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewIsEmpty(t *testing.T) {
	s := New(80, 24)
	if s.Len() != 0 || s.Current() != nil {
		t.Errorf("Len=%d Current=%v", s.Len(), s.Current())
	}
}

func TestForwardBackwardClamp(t *testing.T) {
	s := New(80, 24)
	s.NewUntitled()
	s.NewUntitled()

	if s.CurrentIndex() != 1 || s.PreviousIndex() != 0 {
		t.Fatalf("current=%d previous=%d after adding two", s.CurrentIndex(), s.PreviousIndex())
	}

	s.Forward()
	if s.CurrentIndex() != 1 || s.PreviousIndex() != 0 {
		t.Errorf("Forward at last index moved: current=%d previous=%d", s.CurrentIndex(), s.PreviousIndex())
	}

	s.Backward()
	if s.CurrentIndex() != 0 || s.PreviousIndex() != 1 {
		t.Errorf("current=%d previous=%d, want 0 and 1", s.CurrentIndex(), s.PreviousIndex())
	}

	s.Backward()
	if s.CurrentIndex() != 0 || s.PreviousIndex() != 1 {
		t.Errorf("Backward at index 0 moved: current=%d previous=%d", s.CurrentIndex(), s.PreviousIndex())
	}
}

func TestSwitchTo(t *testing.T) {
	s := New(80, 24)
	for range 3 {
		s.NewUntitled()
	}

	if err := s.SwitchTo(0); err != nil {
		t.Fatal(err)
	}
	if s.CurrentIndex() != 0 || s.PreviousIndex() != 2 {
		t.Errorf("current=%d previous=%d", s.CurrentIndex(), s.PreviousIndex())
	}

	if err := s.SwitchTo(0); err != nil {
		t.Fatal(err)
	}
	if s.PreviousIndex() != 2 {
		t.Errorf("switching to the current buffer changed previous to %d", s.PreviousIndex())
	}

	for _, i := range []int{-1, 3} {
		if err := s.SwitchTo(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SwitchTo(%d) = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestSwitchToPrevious(t *testing.T) {
	s := New(80, 24)
	for range 3 {
		s.NewUntitled()
	}
	_ = s.SwitchTo(0)

	s.SwitchToPrevious()
	if s.CurrentIndex() != 2 || s.PreviousIndex() != 0 {
		t.Errorf("current=%d previous=%d, want 2 and 0", s.CurrentIndex(), s.PreviousIndex())
	}
	s.SwitchToPrevious()
	if s.CurrentIndex() != 0 || s.PreviousIndex() != 2 {
		t.Errorf("current=%d previous=%d, want 0 and 2", s.CurrentIndex(), s.PreviousIndex())
	}
}

func TestOpenRoutesToExistingBuffer(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a\n")
	b := writeFile(t, dir, "b.txt", "b\n")

	s := New(80, 24)
	first, err := s.Open(a, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Open(b, false); err != nil {
		t.Fatal(err)
	}

	again, err := s.Open(filepath.Join(dir, ".", "a.txt"), false)
	if err != nil {
		t.Fatal(err)
	}
	if again != first {
		t.Error("opening an open path returned a different buffer")
	}
	if s.Len() != 2 || s.CurrentIndex() != 0 || s.PreviousIndex() != 1 {
		t.Errorf("Len=%d current=%d previous=%d", s.Len(), s.CurrentIndex(), s.PreviousIndex())
	}
}

func TestOpenNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	s := New(80, 24)

	b, err := s.Open(path, false)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !b.IsNewFile() || b.FilePath() != path {
		t.Errorf("new file buffer: isNew=%v path=%q", b.IsNewFile(), b.FilePath())
	}
	if err := b.Write(true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestOpenFailureLeavesSetUnchanged(t *testing.T) {
	dir := t.TempDir()
	s := New(80, 24)
	s.NewUntitled()

	// A directory cannot be read as a file.
	if _, err := s.Open(dir, false); err == nil {
		t.Fatal("expected error opening a directory")
	}
	if s.Len() != 1 || s.CurrentIndex() != 0 {
		t.Errorf("Len=%d current=%d", s.Len(), s.CurrentIndex())
	}
}

func TestRemove(t *testing.T) {
	s := New(80, 24)
	for range 3 {
		s.NewUntitled()
	}
	_ = s.SwitchTo(1)

	if err := s.Remove(2); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 || s.CurrentIndex() != 1 || s.PreviousIndex() != 1 {
		t.Errorf("Len=%d current=%d previous=%d", s.Len(), s.CurrentIndex(), s.PreviousIndex())
	}
	if err := s.Remove(0); err != nil {
		t.Fatal(err)
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("current=%d, want 0", s.CurrentIndex())
	}
	if err := s.Remove(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Remove(5) = %v", err)
	}
}

func TestDirty(t *testing.T) {
	s := New(80, 24)
	s.NewUntitled()
	s.NewUntitled().Insert("x")
	s.NewUntitled()

	if diff := cmp.Diff([]int{1}, s.Dirty()); diff != "" {
		t.Errorf("dirty mismatch (-want +got):\n%s", diff)
	}
	if !s.HasUnsavedChanges() {
		t.Error("expected unsaved changes")
	}
}

func TestResize(t *testing.T) {
	s := New(80, 24)
	s.NewUntitled()
	s.Resize(40, 10)
	b := s.NewUntitled()

	for i, buf := range s.Buffers() {
		if buf.PageWidth() != 40 || buf.PageHeight() != 10 {
			t.Errorf("buffer %d page size = %dx%d", i, buf.PageWidth(), buf.PageHeight())
		}
	}
	if b != s.Current() {
		t.Error("new buffer is not current")
	}
}

func TestName(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "file.txt", "x\n")

	s := New(80, 24)
	s.NewUntitled()
	ro := buffer.New()
	if err := ro.Open(path, true); err != nil {
		t.Fatal(err)
	}
	s.Add(ro)
	dirty := buffer.New()
	dirty.SetFilePath("/tmp/some/long/path/name.txt")
	dirty.Insert("x")
	s.Add(dirty)

	tests := []struct {
		i, width int
		want     string
	}{
		{0, 80, "0 [untitled]"},
		{1, 200, "1 [ro] " + path},
		{2, 80, "2 [+] /tmp/some/long/path/name.txt"},
		{2, 20, "2 [+] ...th/name.txt"},
	}
	for _, tt := range tests {
		if got := s.Name(tt.i, tt.width); got != tt.want {
			t.Errorf("Name(%d, %d) = %q, want %q", tt.i, tt.width, got, tt.want)
		}
	}
}
