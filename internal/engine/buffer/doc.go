// Package buffer provides the line-buffer engine of the editor: an ordered,
// mutable list of text lines with a cursor and a scrollable viewport.
//
// Lines are stored in an arena and linked to their neighbours by index, so
// inserting or deleting next to the cursor is O(1) and moving the cursor or
// the viewport costs one step per line crossed.
//
// Basic usage:
//
//	buf := buffer.New(buffer.WithPageSize(80, 23))
//	if err := buf.Open("notes.txt", false); err != nil {
//	    // buf is now a single empty line
//	}
//
//	buf.CursorLineDown(2)
//	buf.Insert("hello")
//	buf.DeleteCharacterRight()
//
//	if err := buf.Write(false); err != nil {
//	    // no path, read-only, or an I/O failure
//	}
//
// Invariants:
//
// After every exported operation the buffer satisfies:
//
//   - the current line is CursorY links from the first line
//   - the top line is ScrollY links from the first line
//   - ScrollY <= CursorY < ScrollY + PageHeight
//   - 0 <= CursorX <= length of the current line
//   - NumberOfLines >= 1
//
// Columns are rune offsets. Calling an operation outside its documented
// range is a programming error and panics.
//
// A Buffer is not safe for concurrent use; the editor owns its buffers
// from a single goroutine.
package buffer
