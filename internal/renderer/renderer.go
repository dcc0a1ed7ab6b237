// Package renderer draws the editor state onto a terminal backend.
//
// The screen is split into the document area, every row but the last, and
// the status row. The document area starts with an optional line-number
// gutter. The status row shows the prompt when it holds text and the
// current buffer's name otherwise, with any partly typed key sequence at
// its right edge. In the buffer switching mode the bottom rows are given
// over to the list of open buffers.
//
// The renderer keeps no state between frames: Draw repaints everything
// from the View it is given.
package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modedit/internal/config"
	"github.com/dshills/modedit/internal/engine/buffer"
	"github.com/dshills/modedit/internal/engine/bufferset"
	"github.com/dshills/modedit/internal/input/mode"
	"github.com/dshills/modedit/internal/renderer/backend"
	"github.com/dshills/modedit/internal/renderer/gutter"
	"github.com/dshills/modedit/internal/renderer/style"
)

// View is the state a frame is drawn from.
type View struct {
	Buffers  *bufferset.Set
	Prompt   *buffer.Buffer
	Mode     string
	Pending  string // key sequence typed so far
	Settings *config.Settings
}

// Renderer draws Views.
type Renderer struct {
	backend backend.Backend
	scheme  style.Scheme
}

// New creates a renderer drawing on b with scheme.
func New(b backend.Backend, scheme style.Scheme) *Renderer {
	return &Renderer{backend: b, scheme: scheme}
}

// Scheme returns the colour scheme in use.
func (r *Renderer) Scheme() style.Scheme { return r.scheme }

func settingsOf(v View) *config.Settings {
	if v.Settings == nil {
		return config.Defaults()
	}
	return v.Settings
}

// GutterWidth returns the gutter width for the current buffer, zero when
// line numbers are off.
func GutterWidth(v View) int {
	s := settingsOf(v)
	if !s.ShowLineNumbers || v.Buffers == nil || v.Buffers.Current() == nil {
		return 0
	}
	return gutter.Width(v.Buffers.Current().NumberOfLines(), s.MinimumGutterWidth)
}

// Layout sizes the buffers' viewports to the screen and returns the gutter
// width.
func (r *Renderer) Layout(v View) int {
	w, h := r.backend.Size()
	gw := GutterWidth(v)
	if v.Buffers != nil {
		v.Buffers.Resize(w-gw, h-1)
	}
	if v.Prompt != nil {
		v.Prompt.SetPageSize(w, 1)
	}
	return gw
}

// Draw repaints the screen from v.
func (r *Renderer) Draw(v View) {
	w, h := r.backend.Size()
	if w <= 0 || h <= 0 {
		return
	}
	gw := r.Layout(v)

	r.backend.Clear()
	r.drawDocument(v, gw, w, h-1)
	r.drawStatus(v, w, h-1)

	switch {
	case v.Mode == mode.SwitchBuffer && v.Buffers != nil && v.Buffers.Len() > 0:
		r.drawBufferList(v, w, h)
		r.backend.HideCursor()
	case mode.IsPrompt(v.Mode) && v.Prompt != nil:
		r.backend.ShowCursor(v.Prompt.CursorX()-v.Prompt.ScrollX(), h-1)
	default:
		r.placeDocumentCursor(v, gw)
	}
	r.backend.Show()
}

func (r *Renderer) clearRow(y, w int) {
	for x := range w {
		r.backend.SetContent(x, y, ' ', r.scheme.Text)
	}
}

func (r *Renderer) drawDocument(v View, gw, w, rows int) {
	s := settingsOf(v)
	var b *buffer.Buffer
	if v.Buffers != nil {
		b = v.Buffers.Current()
	}

	var lines []string
	if b != nil {
		lines = b.VisibleLines()
	}
	fill := []rune(s.EmptyLineFill)

	for row := range rows {
		r.clearRow(row, w)
		if row >= len(lines) {
			if len(fill) > 0 {
				r.backend.SetContent(0, row, fill[0], r.scheme.EmptyFill)
			}
			continue
		}

		line := b.ScrollY() + row
		if gw > 0 {
			st := r.scheme.Gutter
			if line == b.CursorY() {
				st = r.scheme.CursorLine
			}
			n := gutter.Number(line, b.CursorY(), s.RelativeLineNumbers)
			r.putString(0, row, gw, gutter.Label(n, gw), st)
		}

		x := gw
		text := []rune(lines[row])
		for i := b.ScrollX(); i < len(text) && x < w; i++ {
			if text[i] == '\t' {
				for range s.VisualTabWidth {
					r.backend.SetContent(x, row, ' ', r.scheme.Text)
					x++
				}
				continue
			}
			r.backend.SetContent(x, row, text[i], r.scheme.Text)
			x++
		}
	}
}

func (r *Renderer) drawStatus(v View, w, row int) {
	status := r.scheme.Status
	for x := range w {
		r.backend.SetContent(x, row, ' ', status)
	}

	pending := []rune(v.Pending)
	room := w
	if len(pending) > 0 {
		room = w - len(pending) - 1
		r.putString(max(w-len(pending), 0), row, w, v.Pending, r.scheme.Pending)
	}

	if v.Prompt != nil && v.Prompt.CurrentLineText() != "" {
		text := []rune(v.Prompt.CurrentLineText())
		start := min(v.Prompt.ScrollX(), len(text))
		r.putString(0, row, room, string(text[start:]), r.scheme.Prompt)
		return
	}
	if v.Buffers != nil && v.Buffers.Len() > 0 {
		r.putString(0, row, room, v.Buffers.Name(v.Buffers.CurrentIndex(), room), status)
	}
}

func (r *Renderer) drawBufferList(v View, w, h int) {
	n := v.Buffers.Len()
	rows := min(n, h-1)
	if rows <= 0 {
		return
	}
	cur := v.Buffers.CurrentIndex()
	first := 0
	if cur >= rows {
		first = cur - rows + 1
	}

	if divider := h - rows - 1; divider >= 0 {
		for x := range w {
			r.backend.SetContent(x, divider, '-', r.scheme.Divider)
		}
	}
	for i := range rows {
		idx := first + i
		row := h - rows + i
		st := r.scheme.Status
		if idx == cur {
			st = r.scheme.Selected
		}
		for x := range w {
			r.backend.SetContent(x, row, ' ', st)
		}
		r.putString(0, row, w, v.Buffers.Name(idx, w), st)
	}
}

func (r *Renderer) placeDocumentCursor(v View, gw int) {
	if v.Buffers == nil || v.Buffers.Current() == nil {
		r.backend.HideCursor()
		return
	}
	b := v.Buffers.Current()
	tab := settingsOf(v).VisualTabWidth
	line := []rune(b.CurrentLineText())
	x := gw + visualColumn(line, b.CursorX(), tab) - visualColumn(line, b.ScrollX(), tab)
	r.backend.ShowCursor(x, b.CursorY()-b.ScrollY())
}

// putString draws s from x, clipped at limit. It returns the next column.
func (r *Renderer) putString(x, y, limit int, s string, st tcell.Style) int {
	for _, c := range s {
		if x >= limit {
			break
		}
		r.backend.SetContent(x, y, c, st)
		x++
	}
	return x
}

// visualColumn returns the screen width of the first col characters of
// line.
func visualColumn(line []rune, col, tab int) int {
	w := 0
	for i := 0; i < col && i < len(line); i++ {
		if line[i] == '\t' {
			w += tab
			continue
		}
		w++
	}
	if col > len(line) {
		w += col - len(line)
	}
	return w
}
