package mode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/modedit/internal/dispatcher/execctx"
	"github.com/dshills/modedit/internal/dispatcher/handler"
	"github.com/dshills/modedit/internal/input/keymap"
)

// ErrUnknownMode is returned when switching to a mode the table lacks.
var ErrUnknownMode = errors.New("unknown mode")

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to string)

// Controller tracks the current mode and the partial match into its trie.
type Controller struct {
	table   *keymap.Table
	mode    string
	node    *keymap.Node
	pending []string

	callbacks []ChangeCallback
}

// NewController creates a controller in the initial mode.
func NewController(table *keymap.Table, initial string) (*Controller, error) {
	if !table.HasMode(initial) {
		return nil, fmt.Errorf("initial mode %q: %w", initial, ErrUnknownMode)
	}
	c := &Controller{table: table, mode: initial}
	c.Reset()
	return c, nil
}

// Mode returns the current mode.
func (c *Controller) Mode() string {
	return c.mode
}

// SetMode switches to mode and discards any partial sequence. Switching to
// the current mode also discards it.
func (c *Controller) SetMode(mode string) error {
	if !c.table.HasMode(mode) {
		return fmt.Errorf("set mode %q: %w", mode, ErrUnknownMode)
	}
	from := c.mode
	c.mode = mode
	c.Reset()
	if from != mode {
		for _, cb := range c.callbacks {
			cb(from, mode)
		}
	}
	return nil
}

// OnChange registers a callback for mode changes.
func (c *Controller) OnChange(cb ChangeCallback) {
	c.callbacks = append(c.callbacks, cb)
}

// Reset returns to the current mode's root and clears the pending display.
func (c *Controller) Reset() {
	c.node = c.table.Root(c.mode)
	c.pending = c.pending[:0]
}

// Pending returns the tokens of the sequence in progress.
func (c *Controller) Pending() []string {
	return append([]string(nil), c.pending...)
}

// PendingDisplay returns the sequence in progress as shown to the user.
func (c *Controller) PendingDisplay() string {
	return strings.Join(c.pending, " ")
}

// AtRoot reports whether no sequence is in progress.
func (c *Controller) AtRoot() bool {
	return len(c.pending) == 0
}

// Dispatch consumes one token. A completed sequence invokes its action with
// ctx and the token; the returned Result is only meaningful when the
// outcome is Fired.
func (c *Controller) Dispatch(token string, ctx *execctx.Context) (Outcome, handler.Result) {
	next, ok := keymap.Lookup(c.node, token)
	if !ok {
		c.Reset()
		return NoAction, handler.NoOp()
	}

	if !next.IsTerminal() {
		c.node = next
		c.pending = append(c.pending, token)
		return Pending, handler.NoOp()
	}

	action := next.Action()
	c.Reset()
	result := action.Invoke(ctx, token)

	// The action may have changed mode; restart at whichever root is
	// current now.
	c.Reset()
	return Fired, result
}
