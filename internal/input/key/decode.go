package key

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var specialKeys = map[tcell.Key]string{
	tcell.KeyUp:         Up,
	tcell.KeyDown:       Down,
	tcell.KeyLeft:       Left,
	tcell.KeyRight:      Right,
	tcell.KeyHome:       Home,
	tcell.KeyEnd:        End,
	tcell.KeyPgUp:       PageUp,
	tcell.KeyPgDn:       PageDown,
	tcell.KeyDelete:     Delete,
	tcell.KeyInsert:     Insert,
	tcell.KeyBackspace2: Backspace,
}

// FromEvent converts a terminal key event into dispatcher tokens. Keys
// without a token, such as function keys, yield nil.
func FromEvent(ev *tcell.EventKey) []string {
	var tokens []string

	k := ev.Key()
	switch {
	case k == tcell.KeyEscape:
		return []string{Alt}
	case k == tcell.KeyTab:
		tokens = []string{Tab}
	case k == tcell.KeyEnter:
		tokens = []string{Enter}
	case k == tcell.KeyBackspace:
		tokens = []string{Backspace}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return []string{Ctrl, string(rune('a' + (k - tcell.KeyCtrlA)))}
	case k == tcell.KeyRune:
		tokens = runeTokens(ev.Rune(), ev.Modifiers())
	default:
		name, ok := specialKeys[k]
		if !ok {
			return nil
		}
		tokens = []string{name}
	}

	if tokens != nil && ev.Modifiers()&tcell.ModAlt != 0 && tokens[0] != Ctrl {
		tokens = append([]string{Alt}, tokens...)
	}
	return tokens
}

func runeTokens(r rune, mods tcell.ModMask) []string {
	if mods&tcell.ModCtrl != 0 && unicode.IsLetter(r) && r < unicode.MaxASCII {
		return []string{Ctrl, string(unicode.ToLower(r))}
	}
	if r == ' ' {
		return []string{Space}
	}
	if !unicode.IsPrint(r) {
		return nil
	}
	return []string{string(r)}
}
