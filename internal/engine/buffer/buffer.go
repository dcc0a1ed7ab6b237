package buffer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default viewport size used until the owner sets one.
const (
	DefaultPageWidth  = 80
	DefaultPageHeight = 24
)

// Buffer is an ordered list of lines with a cursor and a viewport.
type Buffer struct {
	id uuid.UUID

	// arena of line records; free holds released indices
	lines []line
	free  []lineID

	firstLine   lineID
	lastLine    lineID
	topLine     lineID
	currentLine lineID

	numberOfLines int

	cursorX    int
	cursorY    int
	maxCursorX int

	// Selection marker. No operation reads it yet.
	markerX int
	markerY int

	scrollX int
	scrollY int

	pageWidth  int
	pageHeight int

	filePath          string
	isReadOnly        bool
	hasUnsavedChanges bool
	isNewFile         bool
	modTime           time.Time
}

// New creates a buffer holding a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:         uuid.New(),
		pageWidth:  DefaultPageWidth,
		pageHeight: DefaultPageHeight,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.Close()
	return b
}

// Close wipes the buffer back to a single empty line with no file.
// The viewport size is kept.
func (b *Buffer) Close() {
	b.lines = b.lines[:0]
	b.free = b.free[:0]

	id := b.newLine(nil)
	b.firstLine, b.lastLine, b.topLine, b.currentLine = id, id, id, id
	b.numberOfLines = 1

	b.cursorX, b.cursorY, b.maxCursorX = 0, 0, 0
	b.markerX, b.markerY = 0, 0
	b.scrollX, b.scrollY = 0, 0

	b.filePath = ""
	b.isReadOnly = false
	b.hasUnsavedChanges = false
	b.isNewFile = false
	b.modTime = time.Time{}
}

// ID returns the buffer's identity, stable for its lifetime.
func (b *Buffer) ID() uuid.UUID { return b.id }

// NumberOfLines returns the number of lines, always at least one.
func (b *Buffer) NumberOfLines() int { return b.numberOfLines }

// CursorX returns the cursor column as a rune offset into the current line.
func (b *Buffer) CursorX() int { return b.cursorX }

// CursorY returns the cursor row counted from the first line.
func (b *Buffer) CursorY() int { return b.cursorY }

// MaxCursorX returns the column vertical motion tries to return to.
func (b *Buffer) MaxCursorX() int { return b.maxCursorX }

// Marker returns the selection marker position.
func (b *Buffer) Marker() (x, y int) { return b.markerX, b.markerY }

// ScrollX returns the first visible column.
func (b *Buffer) ScrollX() int { return b.scrollX }

// ScrollY returns the index of the top visible line.
func (b *Buffer) ScrollY() int { return b.scrollY }

// PageWidth returns the number of visible columns.
func (b *Buffer) PageWidth() int { return b.pageWidth }

// PageHeight returns the number of visible rows.
func (b *Buffer) PageHeight() int { return b.pageHeight }

// FilePath returns the associated file, or "" for a scratch buffer.
func (b *Buffer) FilePath() string { return b.filePath }

// IsReadOnly reports whether writes to the file are refused.
func (b *Buffer) IsReadOnly() bool { return b.isReadOnly }

// HasUnsavedChanges reports whether the text changed since the last
// open or write.
func (b *Buffer) HasUnsavedChanges() bool { return b.hasUnsavedChanges }

// IsNewFile reports whether the associated file has not been written yet.
func (b *Buffer) IsNewFile() bool { return b.isNewFile }

// ModTime returns the file modification time recorded at the last open
// or write. The zero time means unknown.
func (b *Buffer) ModTime() time.Time { return b.modTime }

// SetFilePath associates the buffer with a file that does not exist yet.
// The next write creates it.
func (b *Buffer) SetFilePath(path string) {
	b.filePath = path
	b.isNewFile = true
	b.modTime = time.Time{}
}

// SetReadOnly sets the read-only flag.
func (b *Buffer) SetReadOnly(readOnly bool) { b.isReadOnly = readOnly }

// SetPageSize sets the viewport size and scrolls so the cursor stays
// visible. Sizes below one are raised to one.
func (b *Buffer) SetPageSize(width, height int) {
	b.pageWidth = max(width, 1)
	b.pageHeight = max(height, 1)
	b.keepCursorVisible()
}

// CurrentLineText returns the text of the cursor's line.
func (b *Buffer) CurrentLineText() string {
	return string(b.lines[b.currentLine].text)
}

// Lines returns the text of every line in order.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, b.numberOfLines)
	for id := b.firstLine; id != noLine; id = b.lines[id].next {
		out = append(out, string(b.lines[id].text))
	}
	return out
}

// Text returns the whole document with lines joined by "\n".
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// VisibleLines returns the lines from the top of the viewport, at most
// PageHeight of them.
func (b *Buffer) VisibleLines() []string {
	out := make([]string, 0, min(b.pageHeight, b.numberOfLines-b.scrollY))
	for id := b.topLine; id != noLine && len(out) < b.pageHeight; id = b.lines[id].next {
		out = append(out, string(b.lines[id].text))
	}
	return out
}

// markChanged records an edit.
func (b *Buffer) markChanged() {
	b.hasUnsavedChanges = true
}
