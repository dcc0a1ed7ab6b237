package app

import (
	"fmt"

	"github.com/dshills/modedit/internal/dispatcher"
	"github.com/dshills/modedit/internal/dispatcher/handlers/buffers"
	"github.com/dshills/modedit/internal/dispatcher/handlers/cursor"
	"github.com/dshills/modedit/internal/dispatcher/handlers/editor"
	"github.com/dshills/modedit/internal/dispatcher/handlers/file"
	modeaction "github.com/dshills/modedit/internal/dispatcher/handlers/mode"
	"github.com/dshills/modedit/internal/dispatcher/handlers/prompt"
	"github.com/dshills/modedit/internal/dispatcher/handlers/session"
	"github.com/dshills/modedit/internal/dispatcher/handlers/view"
	"github.com/dshills/modedit/internal/input/keymap"
	"github.com/dshills/modedit/internal/input/mode"
)

// binding is a keymap entry that names its action.
type binding struct {
	modes  []string
	keys   []string
	action string
	args   dispatcher.Args
}

func in(modes ...string) []string  { return modes }
func keys(seqs ...string) []string { return seqs }

// defaultBindings is the built-in keymap. Later entries override earlier
// ones, so the catch-all bindings for every mode but insert come first.
func defaultBindings() []binding {
	toInsert := dispatcher.Args{"mode": mode.Insert}
	openStart := prompt.Limit(prompt.OpenLabel)
	saveStart := prompt.Limit(prompt.SaveLabel)

	b := []binding{
		{in("!" + mode.Insert), keys("Ctrl q", "Enter", "Backspace"), modeaction.ActionSet, toInsert},
		{in("!" + mode.SwitchBuffer, "!" + mode.Number), keys("Ctrl b"), modeaction.ActionSet,
			dispatcher.Args{"mode": mode.SwitchBuffer}},
		{in("!" + mode.OpenFile, "!" + mode.Number), keys("Ctrl o"), prompt.ActionBegin,
			dispatcher.Args{"label": prompt.OpenLabel, "mode": mode.OpenFile}},

		{in(mode.Insert), keys("Ctrl q"), session.ActionQuit, nil},
		{in(mode.Insert), keys("Ctrl e"), session.ActionExit, nil},
		{in(mode.Insert), keys("Ctrl s"), file.ActionWrite, nil},
		{in(mode.Insert), keys("Left", "Alt j", "Ctrl a b c"), cursor.ActionMoveLeft, nil},
		{in(mode.Insert), keys("Right", "Alt l"), cursor.ActionMoveRight, nil},
		{in(mode.Insert), keys("Up", "Alt i"), cursor.ActionMoveUp, nil},
		{in(mode.Insert), keys("Down", "Alt k"), cursor.ActionMoveDown, nil},
		{in(mode.Insert), keys("Home"), cursor.ActionMoveLineStart, nil},
		{in(mode.Insert), keys("End"), cursor.ActionMoveLineEnd, nil},
		{in(mode.Insert), keys("PageUp"), view.ActionPageUp, nil},
		{in(mode.Insert), keys("PageDown"), view.ActionPageDown, nil},
		{in(mode.Insert), keys("Printable", "Space"), editor.ActionInsertCharacter, nil},
		{in(mode.Insert), keys("Tab"), editor.ActionIndent, nil},
		{in(mode.Insert), keys("Alt N"), editor.ActionInsertLineAbove, nil},
		{in(mode.Insert), keys("Enter"), editor.ActionSplitLine, nil},
		{in(mode.Insert), keys("Delete", "Alt d"), editor.ActionDeleteRight, nil},
		{in(mode.Insert), keys("Alt D"), editor.ActionDeleteLine, nil},
		{in(mode.Insert), keys("Backspace"), editor.ActionDeleteLeft, nil},

		{in(mode.SwitchBuffer), keys("Up", "Alt i", "i"), buffers.ActionBackward, nil},
		{in(mode.SwitchBuffer), keys("Down", "Alt k", "k"), buffers.ActionForward, nil},
		{in(mode.SwitchBuffer), keys("p"), buffers.ActionPrevious, nil},

		{in(mode.OpenFile), keys("Enter"), file.ActionOpen, dispatcher.Args{"start": openStart}},
		{in(mode.SaveFile), keys("Enter"), file.ActionSaveAs, dispatcher.Args{"start": saveStart}},
	}

	for _, p := range []struct {
		mode  string
		limit int
	}{
		{mode.OpenFile, openStart},
		{mode.SaveFile, saveStart},
	} {
		limit := dispatcher.Args{"limit": p.limit}
		b = append(b,
			binding{in(p.mode), keys("Printable", "Space"), prompt.ActionInsert, nil},
			binding{in(p.mode), keys("Backspace"), prompt.ActionDeleteLeft, limit},
			binding{in(p.mode), keys("Left", "Alt j"), prompt.ActionCursorLeft, limit},
			binding{in(p.mode), keys("Right", "Alt l"), prompt.ActionCursorRight, nil},
		)
	}
	return b
}

// bind resolves action through the registry and registers it.
func bind(table *keymap.Table, reg *dispatcher.Registry, modes, seqs []string, action string, args dispatcher.Args) error {
	a, err := reg.Build(action, args)
	if err != nil {
		return err
	}
	if err := table.Register(modes, seqs, a); err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	return nil
}

// registerDefaults installs the built-in keymap.
func registerDefaults(table *keymap.Table, reg *dispatcher.Registry) error {
	for _, b := range defaultBindings() {
		if err := bind(table, reg, b.modes, b.keys, b.action, b.args); err != nil {
			return NewOperationError("bind", b.action, err).WithContext("default keymap")
		}
	}
	return nil
}
