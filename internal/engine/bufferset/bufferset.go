// Package bufferset keeps the ordered list of open buffers and tracks which
// one is current and which one was current before it.
package bufferset

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/dshills/modedit/internal/engine/buffer"
)

// ErrIndexOutOfRange is returned when switching to a buffer that does not
// exist.
var ErrIndexOutOfRange = errors.New("buffer index out of range")

// Set is an ordered list of buffers with a current and a previous index.
// Both indices are valid whenever the set is not empty.
type Set struct {
	buffers  []*buffer.Buffer
	current  int
	previous int

	pageWidth  int
	pageHeight int
}

// New creates an empty set. Buffers it creates get the given page size.
func New(pageWidth, pageHeight int) *Set {
	return &Set{
		pageWidth:  max(pageWidth, 1),
		pageHeight: max(pageHeight, 1),
	}
}

// Len returns the number of open buffers.
func (s *Set) Len() int { return len(s.buffers) }

// CurrentIndex returns the index of the current buffer.
func (s *Set) CurrentIndex() int { return s.current }

// PreviousIndex returns the index of the previously current buffer.
func (s *Set) PreviousIndex() int { return s.previous }

// Current returns the current buffer, or nil when the set is empty.
func (s *Set) Current() *buffer.Buffer {
	if len(s.buffers) == 0 {
		return nil
	}
	return s.buffers[s.current]
}

// At returns the buffer at index i.
func (s *Set) At(i int) *buffer.Buffer {
	return s.buffers[i]
}

// Buffers returns the open buffers in order. The slice must not be
// modified.
func (s *Set) Buffers() []*buffer.Buffer {
	return s.buffers
}

// Add appends b and makes it current.
func (s *Set) Add(b *buffer.Buffer) int {
	b.SetPageSize(s.pageWidth, s.pageHeight)
	s.buffers = append(s.buffers, b)
	i := len(s.buffers) - 1
	if i == 0 {
		s.current, s.previous = 0, 0
		return i
	}
	s.switchTo(i)
	return i
}

// NewUntitled adds an empty buffer with no file and makes it current.
func (s *Set) NewUntitled() *buffer.Buffer {
	b := s.newBuffer()
	s.Add(b)
	return b
}

func (s *Set) newBuffer() *buffer.Buffer {
	return buffer.New(buffer.WithPageSize(s.pageWidth, s.pageHeight))
}

// SwitchTo makes buffer i current. Switching to the current buffer does
// nothing.
func (s *Set) SwitchTo(i int) error {
	if i < 0 || i >= len(s.buffers) {
		return fmt.Errorf("switch to %d of %d: %w", i, len(s.buffers), ErrIndexOutOfRange)
	}
	s.switchTo(i)
	return nil
}

func (s *Set) switchTo(i int) {
	if i == s.current {
		return
	}
	s.previous = s.current
	s.current = i
}

// Forward makes the next buffer current. It does nothing at the last one.
func (s *Set) Forward() {
	if s.current+1 < len(s.buffers) {
		s.switchTo(s.current + 1)
	}
}

// Backward makes the preceding buffer current. It does nothing at the
// first one.
func (s *Set) Backward() {
	if s.current > 0 {
		s.switchTo(s.current - 1)
	}
}

// SwitchToPrevious swaps the current and previous buffers.
func (s *Set) SwitchToPrevious() {
	if len(s.buffers) > 0 {
		s.switchTo(s.previous)
	}
}

// Find returns the index of the buffer associated with path, or -1.
// Paths are compared after conversion to clean absolute form.
func (s *Set) Find(path string) int {
	want := absPath(path)
	for i, b := range s.buffers {
		if b.FilePath() != "" && absPath(b.FilePath()) == want {
			return i
		}
	}
	return -1
}

// Open makes the buffer for path current, opening it first when it is not
// in the set yet. A path that does not exist yet gets an empty buffer that
// creates the file on its first write. Any other failure leaves the set
// unchanged.
func (s *Set) Open(path string, readOnly bool) (*buffer.Buffer, error) {
	if i := s.Find(path); i >= 0 {
		s.switchTo(i)
		return s.buffers[i], nil
	}

	b := s.newBuffer()
	if err := b.Open(path, readOnly); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		b.SetFilePath(path)
		b.SetReadOnly(readOnly)
	}
	s.Add(b)
	return b, nil
}

// Remove drops buffer i from the set. The buffer after it becomes current
// if i was current.
func (s *Set) Remove(i int) error {
	if i < 0 || i >= len(s.buffers) {
		return fmt.Errorf("remove %d of %d: %w", i, len(s.buffers), ErrIndexOutOfRange)
	}
	s.buffers = append(s.buffers[:i], s.buffers[i+1:]...)

	fix := func(idx int) int {
		if idx > i {
			idx--
		}
		return max(0, min(idx, len(s.buffers)-1))
	}
	s.current = fix(s.current)
	s.previous = fix(s.previous)
	return nil
}

// HasUnsavedChanges reports whether any buffer has unsaved changes.
func (s *Set) HasUnsavedChanges() bool {
	return len(s.Dirty()) > 0
}

// Dirty returns the indices of buffers with unsaved changes.
func (s *Set) Dirty() []int {
	var out []int
	for i, b := range s.buffers {
		if b.HasUnsavedChanges() {
			out = append(out, i)
		}
	}
	return out
}

// Resize sets the page size of every buffer, and of buffers created later.
func (s *Set) Resize(pageWidth, pageHeight int) {
	s.pageWidth = max(pageWidth, 1)
	s.pageHeight = max(pageHeight, 1)
	for _, b := range s.buffers {
		b.SetPageSize(s.pageWidth, s.pageHeight)
	}
}

// Name returns the display name of buffer i fitted to width columns: the
// index, a read-only or modified marker, then the path. Long paths keep
// their tail behind "...".
func (s *Set) Name(i, width int) string {
	b := s.buffers[i]
	name := strconv.Itoa(i) + " "
	switch {
	case b.IsReadOnly():
		name += "[ro] "
	case b.HasUnsavedChanges():
		name += "[+] "
	}

	path := []rune(b.FilePath())
	if len(path) == 0 {
		return name + "[untitled]"
	}
	if len([]rune(name))+len(path) <= width {
		return name + string(path)
	}
	keep := max(width-len([]rune(name))-len("..."), 0)
	return name + "..." + string(path[len(path)-min(keep, len(path)):])
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
