// Package gutter computes the line-number column drawn left of the text.
package gutter

import (
	"strconv"
	"strings"
)

// Width returns the gutter width for a document of lines lines: the
// widest number, at least minimum digits, plus one separating blank.
func Width(lines, minimum int) int {
	return max(len(strconv.Itoa(lines)), minimum) + 1
}

// Number returns the number shown for line (0-based) when the cursor is on
// cursorLine. With relative numbering the cursor line shows its absolute
// number and every other line its distance from the cursor.
func Number(line, cursorLine int, relative bool) int {
	if !relative || line == cursorLine {
		return line + 1
	}
	if line > cursorLine {
		return line - cursorLine
	}
	return cursorLine - line
}

// Label formats n right-aligned in a gutter of the given width, including
// the trailing blank.
func Label(n, width int) string {
	s := strconv.Itoa(n)
	pad := width - 1 - len(s)
	if pad < 0 {
		return s + " "
	}
	return strings.Repeat(" ", pad) + s + " "
}
