package buffer

// stepUp moves the cursor to the previous line without touching the column
// or the viewport. It reports false at the first line.
func (b *Buffer) stepUp() bool {
	prev := b.lines[b.currentLine].prev
	if prev == noLine {
		return false
	}
	b.currentLine = prev
	b.cursorY--
	return true
}

// stepDown moves the cursor to the next line without touching the column
// or the viewport. It reports false at the last line.
func (b *Buffer) stepDown() bool {
	next := b.lines[b.currentLine].next
	if next == noLine {
		return false
	}
	b.currentLine = next
	b.cursorY++
	return true
}

// scrollUp moves the viewport one line towards the first line.
func (b *Buffer) scrollUp() bool {
	prev := b.lines[b.topLine].prev
	if prev == noLine {
		return false
	}
	b.topLine = prev
	b.scrollY--
	return true
}

// scrollDown moves the viewport one line towards the last line.
func (b *Buffer) scrollDown() bool {
	next := b.lines[b.topLine].next
	if next == noLine {
		return false
	}
	b.topLine = next
	b.scrollY++
	return true
}

// keepCursorVisible scrolls the viewport the minimum amount needed to
// bring the cursor back into it. It also clamps the column, which callers
// that replace the current line rely on.
func (b *Buffer) keepCursorVisible() {
	b.cursorX = min(b.cursorX, b.lineLen(b.currentLine))

	for b.cursorY < b.scrollY && b.scrollUp() {
	}
	for b.cursorY > b.scrollY+b.pageHeight-1 && b.scrollDown() {
	}

	if b.cursorX < b.scrollX {
		b.scrollX = b.cursorX
	} else if b.cursorX >= b.scrollX+b.pageWidth {
		b.scrollX = b.cursorX - b.pageWidth + 1
	}
}

// CursorCharacterLeft moves the cursor n characters to the left. At the
// start of a line it wraps to the end of the previous one, which counts as
// one step. It stops at the first character of the document.
func (b *Buffer) CursorCharacterLeft(n int) {
	for range n {
		if b.cursorX > 0 {
			b.cursorX--
		} else if b.stepUp() {
			b.cursorX = b.lineLen(b.currentLine)
		} else {
			break
		}
	}
	b.maxCursorX = b.cursorX
	b.keepCursorVisible()
}

// CursorCharacterRight moves the cursor n characters to the right. Past the
// end of a line it wraps to the start of the next one, which counts as one
// step. On the last line it stops on the final character.
func (b *Buffer) CursorCharacterRight(n int) {
	for range n {
		length := b.lineLen(b.currentLine)
		if b.currentLine == b.lastLine {
			if b.cursorX >= length-1 {
				break
			}
			b.cursorX++
		} else if b.cursorX < length {
			b.cursorX++
		} else {
			b.stepDown()
			b.cursorX = 0
		}
	}
	b.maxCursorX = b.cursorX
	b.keepCursorVisible()
}

// CursorLineUp moves the cursor n lines up, returning to the remembered
// column where the new line is long enough.
func (b *Buffer) CursorLineUp(n int) {
	for range n {
		if !b.stepUp() {
			break
		}
	}
	b.cursorX = min(b.maxCursorX, b.lineLen(b.currentLine))
	b.keepCursorVisible()
}

// CursorLineDown moves the cursor n lines down, returning to the remembered
// column where the new line is long enough.
func (b *Buffer) CursorLineDown(n int) {
	for range n {
		if !b.stepDown() {
			break
		}
	}
	b.cursorX = min(b.maxCursorX, b.lineLen(b.currentLine))
	b.keepCursorVisible()
}

// CursorLineStart moves the cursor to column 0.
func (b *Buffer) CursorLineStart() {
	b.MoveToColumn(0)
}

// CursorLineEnd moves the cursor past the last character of the line.
func (b *Buffer) CursorLineEnd() {
	b.MoveToColumn(b.lineLen(b.currentLine))
}

// MoveToColumn places the cursor at column x of the current line, clamped
// to the line.
func (b *Buffer) MoveToColumn(x int) {
	b.cursorX = max(0, min(x, b.lineLen(b.currentLine)))
	b.maxCursorX = b.cursorX
	b.keepCursorVisible()
}

// CursorPageUp moves the cursor and the viewport up by one page.
func (b *Buffer) CursorPageUp() {
	for range b.pageHeight {
		if !b.scrollUp() {
			break
		}
	}
	b.CursorLineUp(b.pageHeight)
}

// CursorPageDown moves the cursor and the viewport down by one page. The
// viewport never starts past the cursor.
func (b *Buffer) CursorPageDown() {
	b.CursorLineDown(b.pageHeight)
	for range b.pageHeight {
		if b.scrollY >= b.cursorY || !b.scrollDown() {
			break
		}
	}
}

// ScrollLineUp scrolls the viewport n lines up, dragging the cursor along
// when it would fall off the bottom.
func (b *Buffer) ScrollLineUp(n int) {
	for range n {
		if !b.scrollUp() {
			break
		}
	}
	moved := false
	for b.cursorY > b.scrollY+b.pageHeight-1 {
		b.stepUp()
		moved = true
	}
	if moved {
		b.cursorX = min(b.maxCursorX, b.lineLen(b.currentLine))
	}
	b.keepCursorVisible()
}

// ScrollLineDown scrolls the viewport n lines down, dragging the cursor
// along when it would fall off the top. The last line stays visible.
func (b *Buffer) ScrollLineDown(n int) {
	for range n {
		if !b.scrollDown() {
			break
		}
	}
	moved := false
	for b.cursorY < b.scrollY {
		b.stepDown()
		moved = true
	}
	if moved {
		b.cursorX = min(b.maxCursorX, b.lineLen(b.currentLine))
	}
	b.keepCursorVisible()
}
