// Package mode provides the controller that feeds key tokens through the
// active mode's keymap trie.
//
// The controller sits at a node of the current mode's trie. Each token
// either advances it (a continuation), fires the bound action and returns
// it to the root (a terminal), or returns it to the root without firing (a
// miss). Changing mode always restarts at the new mode's root, so a partial
// sequence never carries over between modes.
package mode

// Built-in mode names.
const (
	Insert       = "insert"
	Command      = "command"
	Number       = "number"
	SwitchBuffer = "switchBuffer"
	OpenFile     = "openFile"
	SaveFile     = "saveFile"
)

// Builtin returns the built-in modes in registration order.
func Builtin() []string {
	return []string{Insert, Command, Number, SwitchBuffer, OpenFile, SaveFile}
}

// IsPrompt reports whether mode edits the prompt line rather than the
// document.
func IsPrompt(mode string) bool {
	switch mode {
	case Command, Number, OpenFile, SaveFile:
		return true
	}
	return false
}

// Outcome is the result of dispatching one token.
type Outcome uint8

const (
	// NoAction means the token matched nothing and the sequence was
	// discarded.
	NoAction Outcome = iota
	// Pending means the token extended a sequence that needs more tokens.
	Pending
	// Fired means the token completed a sequence and its action ran.
	Fired
)

// String returns a string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case NoAction:
		return "no-action"
	case Pending:
		return "pending"
	case Fired:
		return "fired"
	default:
		return "unknown"
	}
}
