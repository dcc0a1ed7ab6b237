// Package backend puts cells on the terminal.
package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Backend is the drawing surface the renderer writes to.
type Backend interface {
	Size() (width, height int)
	SetContent(x, y int, r rune, style tcell.Style)
	Clear()
	Show()
	ShowCursor(x, y int)
	HideCursor()
}

// Terminal implements Backend on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a backend for the controlling terminal. Call Init
// before drawing.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewSimulation creates an initialised in-memory backend of the given size.
func NewSimulation(width, height int) (*Terminal, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, err
	}
	sim.SetSize(width, height)
	return &Terminal{screen: sim}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetContent(x, y int, r rune, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, r, nil, style)
}

// Cell returns the rune and style at x, y.
func (t *Terminal) Cell(x, y int) (rune, tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return mainc, style
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent returns the next pending event, or nil when none is waiting.
func (t *Terminal) PollEvent() tcell.Event {
	if !t.screen.HasPendingEvent() {
		return nil
	}
	return t.screen.PollEvent()
}

// PostEvent queues ev as if it came from the terminal.
func (t *Terminal) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}
