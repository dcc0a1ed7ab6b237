// Package cursor provides actions that move the document cursor.
//
//   - cursor.moveLeft, cursor.moveRight: by [count] characters, wrapping
//     across line ends
//   - cursor.moveUp, cursor.moveDown: by [count] lines, keeping the
//     remembered column
//   - cursor.moveLineStart, cursor.moveLineEnd
//
// Motions work on read-only buffers.
package cursor

import (
	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
)

// Action names for cursor movements.
const (
	ActionMoveLeft      = "cursor.moveLeft"
	ActionMoveRight     = "cursor.moveRight"
	ActionMoveUp        = "cursor.moveUp"
	ActionMoveDown      = "cursor.moveDown"
	ActionMoveLineStart = "cursor.moveLineStart"
	ActionMoveLineEnd   = "cursor.moveLineEnd"
)

// Motion selects the direction of a Move.
type Motion uint8

const (
	Left Motion = iota
	Right
	Up
	Down
	LineStart
	LineEnd
)

var motionNames = map[Motion]string{
	Left:      ActionMoveLeft,
	Right:     ActionMoveRight,
	Up:        ActionMoveUp,
	Down:      ActionMoveDown,
	LineStart: ActionMoveLineStart,
	LineEnd:   ActionMoveLineEnd,
}

// MotionFor returns the motion registered under an action name.
func MotionFor(name string) (Motion, bool) {
	for m, n := range motionNames {
		if n == name {
			return m, true
		}
	}
	return 0, false
}

// Move moves the cursor of the current buffer. Count values below one mean
// one.
type Move struct {
	Motion Motion
	Count  int
}

// Name implements handler.Action.
func (m Move) Name() string {
	if name, ok := motionNames[m.Motion]; ok {
		return name
	}
	return "cursor.unknown"
}

// Invoke implements handler.Action.
func (m Move) Invoke(ctx *execctx.Context, _ string) handler.Result {
	b := ctx.Buffer()
	if b == nil {
		return handler.Error(execctx.ErrNoBuffer)
	}
	count := max(m.Count, 1)

	switch m.Motion {
	case Left:
		b.CursorCharacterLeft(count)
	case Right:
		b.CursorCharacterRight(count)
	case Up:
		b.CursorLineUp(count)
	case Down:
		b.CursorLineDown(count)
	case LineStart:
		b.CursorLineStart()
	case LineEnd:
		b.CursorLineEnd()
	default:
		return handler.Errorf("unknown cursor motion: %d", m.Motion)
	}
	return handler.Success()
}
