// Package execctx provides the explicit context every action receives.
package execctx

import (
	"github.com/dshills/modedit/internal/config"
	"github.com/dshills/modedit/internal/engine/buffer"
	"github.com/dshills/modedit/internal/engine/bufferset"
)

// ModeSwitcher is the part of the mode controller actions may use.
type ModeSwitcher interface {
	Mode() string
	SetMode(name string) error
}

// Logger is the logging surface actions use.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Context carries the editor state an action may read or change.
type Context struct {
	// Buffers holds the open documents.
	Buffers *bufferset.Set

	// Prompt is the single-line command buffer shown on the status row.
	Prompt *buffer.Buffer

	// Modes switches the active mode.
	Modes ModeSwitcher

	// Settings are read-only.
	Settings *config.Settings

	// Logger receives action diagnostics. May be nil.
	Logger Logger

	transient bool
}

// Buffer returns the current document, or nil when none is open.
func (c *Context) Buffer() *buffer.Buffer {
	if c.Buffers == nil {
		return nil
	}
	return c.Buffers.Current()
}

// EditableBuffer returns the current document when it may be edited.
func (c *Context) EditableBuffer() (*buffer.Buffer, error) {
	b := c.Buffer()
	switch {
	case b == nil:
		return nil, ErrNoBuffer
	case b.IsReadOnly():
		return nil, ErrReadOnly
	}
	return b, nil
}

// SetPrompt replaces the prompt text and puts the prompt cursor after it.
func (c *Context) SetPrompt(text string) {
	c.Prompt.Close()
	c.Prompt.Insert(text)
	c.transient = false
}

// PromptText returns the prompt text.
func (c *Context) PromptText() string {
	return c.Prompt.CurrentLineText()
}

// Notify shows msg on the prompt until the next key token.
func (c *Context) Notify(msg string) {
	c.SetPrompt(msg)
	c.transient = true
}

// ClearTransient clears the prompt if it holds a notice and reports
// whether it did.
func (c *Context) ClearTransient() bool {
	if !c.transient {
		return false
	}
	c.Prompt.Close()
	c.transient = false
	return true
}

// Debugf logs through Logger when one is set.
func (c *Context) Debugf(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Debug(msg, args...)
	}
}
