// Package view provides actions that move the viewport.
package view

import (
	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
)

// Action names for view operations.
const (
	ActionScrollDown = "view.scrollDown" // scroll down [count] lines
	ActionScrollUp   = "view.scrollUp"   // scroll up [count] lines
	ActionPageDown   = "view.pageDown"   // cursor and viewport down one page
	ActionPageUp     = "view.pageUp"     // cursor and viewport up one page
)

// Scroll kinds.
const (
	ScrollDown Kind = iota
	ScrollUp
	PageDown
	PageUp
)

// Kind selects what a Scroll does.
type Kind uint8

var kindNames = [...]string{
	ScrollDown: ActionScrollDown,
	ScrollUp:   ActionScrollUp,
	PageDown:   ActionPageDown,
	PageUp:     ActionPageUp,
}

// KindFor returns the kind registered under an action name.
func KindFor(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Scroll moves the viewport of the current buffer. Line scrolls drag the
// cursor along when it would leave the screen. Count applies to line
// scrolls only; values below one mean one.
type Scroll struct {
	Kind  Kind
	Count int
}

// Name implements handler.Action.
func (s Scroll) Name() string {
	if int(s.Kind) < len(kindNames) {
		return kindNames[s.Kind]
	}
	return "view.unknown"
}

// Invoke implements handler.Action.
func (s Scroll) Invoke(ctx *execctx.Context, _ string) handler.Result {
	b := ctx.Buffer()
	if b == nil {
		return handler.Error(execctx.ErrNoBuffer)
	}
	count := max(s.Count, 1)

	switch s.Kind {
	case ScrollDown:
		b.ScrollLineDown(count)
	case ScrollUp:
		b.ScrollLineUp(count)
	case PageDown:
		b.CursorPageDown()
	case PageUp:
		b.CursorPageUp()
	default:
		return handler.Errorf("unknown scroll kind: %d", s.Kind)
	}
	return handler.Success()
}
