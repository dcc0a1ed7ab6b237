package buffer

import "fmt"

// lineID addresses a line record in a buffer's arena.
type lineID int32

// noLine marks the absence of a neighbour at a document boundary.
const noLine lineID = -1

// line is a single line of text linked to its neighbours.
type line struct {
	text []rune
	prev lineID
	next lineID
}

// newLine allocates a detached line holding text, reusing a released
// record when one is available.
func (b *Buffer) newLine(text []rune) lineID {
	if n := len(b.free); n > 0 {
		id := b.free[n-1]
		b.free = b.free[:n-1]
		b.lines[id] = line{text: text, prev: noLine, next: noLine}
		return id
	}
	b.lines = append(b.lines, line{text: text, prev: noLine, next: noLine})
	return lineID(len(b.lines) - 1)
}

// releaseLine returns a detached line record to the free list.
func (b *Buffer) releaseLine(id lineID) {
	b.lines[id] = line{prev: noLine, next: noLine}
	b.free = append(b.free, id)
}

// link makes next follow prev. Either side may be noLine.
func (b *Buffer) link(prev, next lineID) {
	if prev != noLine {
		b.lines[prev].next = next
	}
	if next != noLine {
		b.lines[next].prev = prev
	}
}

// unlink removes id from between its neighbours and detaches it.
func (b *Buffer) unlink(id lineID) {
	l := &b.lines[id]
	b.link(l.prev, l.next)
	l.prev, l.next = noLine, noLine
}

func (b *Buffer) lineLen(id lineID) int {
	return len(b.lines[id].text)
}

// insertText splices s into line id at pos.
func (b *Buffer) insertText(id lineID, pos int, s []rune) {
	l := &b.lines[id]
	if pos < 0 || pos > len(l.text) {
		panic(fmt.Sprintf("buffer: insert at column %d outside line of length %d", pos, len(l.text)))
	}
	text := make([]rune, 0, len(l.text)+len(s))
	text = append(text, l.text[:pos]...)
	text = append(text, s...)
	text = append(text, l.text[pos:]...)
	l.text = text
}

// deleteText removes count runes from line id starting at start.
func (b *Buffer) deleteText(id lineID, start, count int) {
	l := &b.lines[id]
	if start < 0 || count < 0 || start+count > len(l.text) {
		panic(fmt.Sprintf("buffer: delete of %d runes at column %d outside line of length %d", count, start, len(l.text)))
	}
	l.text = append(l.text[:start:start], l.text[start+count:]...)
}
