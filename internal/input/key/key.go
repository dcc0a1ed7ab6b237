// Package key defines the token vocabulary the dispatcher consumes and
// turns terminal key events into tokens.
//
// A token is either a single printable character ("a", "?", "é") or the
// name of a key. Control combinations arrive as two tokens, Ctrl followed
// by the lowercase letter; Escape and Alt-modified keys arrive as Alt
// followed by the key. Printable and Unbound never come from the terminal;
// they are only used when registering bindings.
package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Named tokens.
const (
	Ctrl      = "Ctrl"
	Alt       = "Alt"
	Space     = "Space"
	Tab       = "Tab"
	Enter     = "Enter"
	Backspace = "Backspace"
	Delete    = "Delete"
	Insert    = "Insert"
	Up        = "Up"
	Down      = "Down"
	Left      = "Left"
	Right     = "Right"
	Home      = "Home"
	End       = "End"
	PageUp    = "PageUp"
	PageDown  = "PageDown"
)

// Reserved fallback tokens, usable in bindings only.
const (
	// Printable matches any single printable character without an explicit
	// binding at the same position.
	Printable = "Printable"

	// Unbound matches any token without an explicit binding.
	Unbound = "Unbound"
)

var (
	// ErrEmptySequence is returned when a key sequence has no tokens.
	ErrEmptySequence = errors.New("empty key sequence")

	// ErrUnknownToken is returned for a token that is neither a single
	// printable character nor a key name.
	ErrUnknownToken = errors.New("unknown key token")
)

var named = map[string]bool{
	Ctrl: true, Alt: true, Space: true, Tab: true, Enter: true,
	Backspace: true, Delete: true, Insert: true, Up: true, Down: true,
	Left: true, Right: true, Home: true, End: true, PageUp: true,
	PageDown: true,
}

// IsPrintable reports whether token is a single printable character.
func IsPrintable(token string) bool {
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError || size != len(token) {
		return false
	}
	return unicode.IsPrint(r) && r != ' '
}

// Text returns the text a token types: the character itself for a
// printable token and a blank for Space.
func Text(token string) (string, bool) {
	switch {
	case token == Space:
		return " ", true
	case IsPrintable(token):
		return token, true
	}
	return "", false
}

// IsReserved reports whether token is one of the fallback tokens.
func IsReserved(token string) bool {
	return token == Printable || token == Unbound
}

// IsNamed reports whether token is a named key.
func IsNamed(token string) bool {
	return named[token]
}

// ParseSequence splits a space-separated sequence such as "Ctrl a b c"
// into its tokens. Every token must be printable, named or reserved.
func ParseSequence(seq string) ([]string, error) {
	tokens := strings.Fields(seq)
	if len(tokens) == 0 {
		return nil, ErrEmptySequence
	}
	for _, tok := range tokens {
		if !IsPrintable(tok) && !IsNamed(tok) && !IsReserved(tok) {
			return nil, fmt.Errorf("%w %q", ErrUnknownToken, tok)
		}
	}
	return tokens, nil
}

// FormatSequence joins tokens back into the form ParseSequence reads.
func FormatSequence(tokens []string) string {
	return strings.Join(tokens, " ")
}
