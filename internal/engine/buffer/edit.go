package buffer

// Insert splices text into the current line at the cursor and moves the
// cursor past it. Newlines in text are not interpreted.
func (b *Buffer) Insert(text string) {
	if text == "" {
		return
	}
	r := []rune(text)
	b.insertText(b.currentLine, b.cursorX, r)
	b.cursorX += len(r)
	b.maxCursorX = b.cursorX
	b.markChanged()
	b.keepCursorVisible()
}

// InsertLineAbove inserts n blank lines above the current line. The cursor
// ends at the start of the topmost new line.
func (b *Buffer) InsertLineAbove(n int) {
	if n <= 0 {
		return
	}
	for range n {
		cur := b.currentLine
		id := b.newLine(nil)
		b.link(b.lines[cur].prev, id)
		b.link(id, cur)
		if cur == b.firstLine {
			b.firstLine = id
		}
		if cur == b.topLine {
			b.topLine = id
		}
		b.currentLine = id
		b.numberOfLines++
	}
	b.cursorX, b.maxCursorX = 0, 0
	b.markChanged()
	b.keepCursorVisible()
}

// InsertLineBelow inserts n blank lines below the current line. The cursor
// ends at the start of the bottom new line.
func (b *Buffer) InsertLineBelow(n int) {
	if n <= 0 {
		return
	}
	for range n {
		b.insertAfter(b.currentLine, nil)
		b.stepDown()
	}
	b.cursorX, b.maxCursorX = 0, 0
	b.markChanged()
	b.keepCursorVisible()
}

// insertAfter links a new line holding text after cur.
func (b *Buffer) insertAfter(cur lineID, text []rune) lineID {
	id := b.newLine(text)
	b.link(id, b.lines[cur].next)
	b.link(cur, id)
	if cur == b.lastLine {
		b.lastLine = id
	}
	b.numberOfLines++
	return id
}

// SplitLine breaks the current line at the cursor. The text after the
// cursor moves to a new line below and the cursor follows it to column 0.
func (b *Buffer) SplitLine() {
	cur := b.currentLine
	rest := append([]rune(nil), b.lines[cur].text[b.cursorX:]...)
	b.deleteText(cur, b.cursorX, len(rest))
	b.insertAfter(cur, rest)
	b.stepDown()
	b.cursorX, b.maxCursorX = 0, 0
	b.markChanged()
	b.keepCursorVisible()
}

// DeleteCharacterRight deletes the character under the cursor. At the end
// of a line the next line is joined onto the current one instead; at the
// end of the document nothing happens.
func (b *Buffer) DeleteCharacterRight() {
	cur := b.currentLine
	if b.cursorX < b.lineLen(cur) {
		b.deleteText(cur, b.cursorX, 1)
		b.maxCursorX = b.cursorX
		b.markChanged()
		b.keepCursorVisible()
		return
	}

	next := b.lines[cur].next
	if next == noLine {
		return
	}
	// The next line takes the joined text and the current line is dropped,
	// leaving the cursor on the same row and column.
	joined := make([]rune, 0, b.lineLen(cur)+b.lineLen(next))
	joined = append(joined, b.lines[cur].text...)
	joined = append(joined, b.lines[next].text...)
	b.lines[next].text = joined
	b.DeleteLine()
}

// DeleteCharacterLeft deletes the character before the cursor. At the start
// of a line the current line is joined onto the previous one.
func (b *Buffer) DeleteCharacterLeft() {
	if b.cursorX > 0 {
		b.cursorX--
		b.deleteText(b.currentLine, b.cursorX, 1)
		b.maxCursorX = b.cursorX
		b.markChanged()
		b.keepCursorVisible()
		return
	}
	if !b.stepUp() {
		return
	}
	b.keepCursorVisible()
	b.cursorX = b.lineLen(b.currentLine)
	b.DeleteCharacterRight()
}

// DeleteLine removes the current line. The cursor moves to the next line,
// or to the previous one at the end of the document. The sole remaining
// line is cleared instead.
func (b *Buffer) DeleteLine() {
	cur := b.currentLine
	if b.numberOfLines == 1 {
		b.lines[cur].text = nil
		b.cursorX, b.maxCursorX = 0, 0
		b.scrollX = 0
		b.markChanged()
		return
	}

	// A line above the viewport shifts the top line up by one.
	if b.cursorY < b.scrollY {
		b.scrollY--
	}
	prev, next := b.lines[cur].prev, b.lines[cur].next
	if next != noLine {
		b.currentLine = next
		if b.topLine == cur {
			b.topLine = next
		}
	} else {
		b.currentLine = prev
		b.cursorY--
		if b.topLine == cur {
			b.topLine = prev
			b.scrollY--
		}
	}

	if cur == b.firstLine {
		b.firstLine = next
	}
	if cur == b.lastLine {
		b.lastLine = prev
	}
	b.unlink(cur)
	b.releaseLine(cur)
	b.numberOfLines--

	b.markChanged()
	b.keepCursorVisible()
	b.maxCursorX = b.cursorX
}
