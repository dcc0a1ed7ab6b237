package dispatcher

import (
	"github.com/dshills/modedit/internal/dispatcher/handler"
	"github.com/dshills/modedit/internal/dispatcher/handlers/buffers"
	"github.com/dshills/modedit/internal/dispatcher/handlers/cursor"
	"github.com/dshills/modedit/internal/dispatcher/handlers/editor"
	"github.com/dshills/modedit/internal/dispatcher/handlers/file"
	"github.com/dshills/modedit/internal/dispatcher/handlers/mode"
	"github.com/dshills/modedit/internal/dispatcher/handlers/prompt"
	"github.com/dshills/modedit/internal/dispatcher/handlers/session"
	"github.com/dshills/modedit/internal/dispatcher/handlers/view"
)

// DefaultRegistry returns a registry holding every built-in action.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	registerCursor(r)
	registerView(r)
	registerEditor(r)
	registerFile(r)
	registerPrompt(r)

	r.Register(mode.ActionSet, func(args Args) (handler.Action, error) {
		m, err := args.String("mode", "")
		return mode.Set{Mode: m}, err
	})

	r.Simple(buffers.Forward{})
	r.Simple(buffers.Backward{})
	r.Simple(buffers.Previous{})
	r.Simple(buffers.New{})
	r.Simple(session.Quit{})
	r.Simple(session.Exit{})
	return r
}

func registerCursor(r *Registry) {
	for _, name := range []string{
		cursor.ActionMoveLeft, cursor.ActionMoveRight,
		cursor.ActionMoveUp, cursor.ActionMoveDown,
		cursor.ActionMoveLineStart, cursor.ActionMoveLineEnd,
	} {
		motion, _ := cursor.MotionFor(name)
		r.Register(name, func(args Args) (handler.Action, error) {
			n, err := args.Int("count", 1)
			return cursor.Move{Motion: motion, Count: n}, err
		})
	}
}

func registerView(r *Registry) {
	for _, name := range []string{
		view.ActionScrollDown, view.ActionScrollUp,
		view.ActionPageDown, view.ActionPageUp,
	} {
		kind, _ := view.KindFor(name)
		r.Register(name, func(args Args) (handler.Action, error) {
			n, err := args.Int("count", 1)
			return view.Scroll{Kind: kind, Count: n}, err
		})
	}
}

func registerEditor(r *Registry) {
	r.Simple(editor.InsertCharacter{})
	r.Simple(editor.Indent{})
	r.Simple(editor.SplitLine{})
	r.Simple(editor.DeleteRight{})
	r.Simple(editor.DeleteLeft{})
	r.Simple(editor.DeleteLine{})

	r.Register(editor.ActionInsertText, func(args Args) (handler.Action, error) {
		text, err := args.RequiredString("text")
		return editor.InsertText{Text: text}, err
	})
	r.Register(editor.ActionInsertLineAbove, func(args Args) (handler.Action, error) {
		n, err := args.Int("count", 1)
		return editor.InsertLineAbove{Count: n}, err
	})
	r.Register(editor.ActionInsertLineBelow, func(args Args) (handler.Action, error) {
		n, err := args.Int("count", 1)
		return editor.InsertLineBelow{Count: n}, err
	})
}

func registerFile(r *Registry) {
	r.Simple(file.Write{})
	r.Register(file.ActionOpen, func(args Args) (handler.Action, error) {
		start, err := args.Int("start", prompt.Limit(prompt.OpenLabel))
		return file.Open{Start: start}, err
	})
	r.Register(file.ActionSaveAs, func(args Args) (handler.Action, error) {
		start, err := args.Int("start", prompt.Limit(prompt.SaveLabel))
		return file.SaveAs{Start: start}, err
	})
}

func registerPrompt(r *Registry) {
	r.Simple(prompt.Insert{})
	r.Simple(prompt.CursorRight{})

	r.Register(prompt.ActionBegin, func(args Args) (handler.Action, error) {
		label, err := args.String("label", "")
		if err != nil {
			return nil, err
		}
		m, err := args.RequiredString("mode")
		return prompt.Begin{Label: label, Mode: m}, err
	})
	r.Register(prompt.ActionDeleteLeft, func(args Args) (handler.Action, error) {
		n, err := args.Int("limit", 0)
		return prompt.DeleteLeft{Limit: n}, err
	})
	r.Register(prompt.ActionCursorLeft, func(args Args) (handler.Action, error) {
		n, err := args.Int("limit", 0)
		return prompt.CursorLeft{Limit: n}, err
	})
}
