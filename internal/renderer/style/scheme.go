// Package style provides the colour schemes the renderer draws with.
package style

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

// Built-in scheme names.
const (
	Monochrome = "monochrome"
	Dark       = "dark"
)

// Scheme maps each screen role to a style.
type Scheme struct {
	Name string

	Text       tcell.Style // document text
	Gutter     tcell.Style // line numbers
	CursorLine tcell.Style // the cursor line's number
	EmptyFill  tcell.Style // the glyph on rows past the end of the document
	Status     tcell.Style // buffer name row
	Prompt     tcell.Style // prompt text
	Pending    tcell.Style // key sequence in progress
	Divider    tcell.Style // rule above the buffer list
	Selected   tcell.Style // current buffer in the buffer list
}

var schemes = map[string]Scheme{
	Monochrome: {
		Name:       Monochrome,
		Text:       tcell.StyleDefault,
		Gutter:     tcell.StyleDefault.Dim(true),
		CursorLine: tcell.StyleDefault.Bold(true),
		EmptyFill:  tcell.StyleDefault.Dim(true),
		Status:     tcell.StyleDefault,
		Prompt:     tcell.StyleDefault,
		Pending:    tcell.StyleDefault.Bold(true),
		Divider:    tcell.StyleDefault,
		Selected:   tcell.StyleDefault.Reverse(true),
	},
	Dark: {
		Name:       Dark,
		Text:       tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
		Gutter:     tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
		CursorLine: tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
		EmptyFill:  tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray).Background(tcell.ColorBlack),
		Status:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
		Prompt:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		Pending:    tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorNavy),
		Divider:    tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
		Selected:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal),
	},
}

// Lookup returns the scheme called name.
func Lookup(name string) (Scheme, bool) {
	s, ok := schemes[name]
	return s, ok
}

// Names returns the built-in scheme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
