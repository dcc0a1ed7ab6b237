// Package dispatcher builds bound actions from their configured names.
//
// Keymap files and init scripts name actions as strings with optional
// arguments. The Registry maps each name to a Factory that validates the
// arguments and returns the action value to bind:
//
//	registry := dispatcher.DefaultRegistry()
//	action, err := registry.Build("cursor.moveDown", dispatcher.Args{"count": 5})
//	err = table.Register([]string{"insert"}, []string{"Ctrl n"}, action)
package dispatcher

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/modedit/internal/dispatcher/handler"
)

// Registry errors.
var (
	// ErrUnknownAction indicates no factory is registered for a name.
	ErrUnknownAction = errors.New("dispatcher: unknown action")

	// ErrInvalidArgs indicates an action's arguments failed validation.
	ErrInvalidArgs = errors.New("dispatcher: invalid action arguments")
)

// Factory builds an action from its arguments.
type Factory func(args Args) (handler.Action, error)

// Registry maps action names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for name, replacing any earlier one.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Simple registers an action that takes no arguments.
func (r *Registry) Simple(a handler.Action) {
	r.Register(a.Name(), func(Args) (handler.Action, error) { return a, nil })
}

// Build returns the action registered under name configured with args.
func (r *Registry) Build(name string, args Args) (handler.Action, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	a, err := f(args)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", name, err)
	}
	return a, nil
}

// Has returns true if a factory is registered for name.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// List returns all registered action names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered actions.
func (r *Registry) Count() int {
	return len(r.factories)
}
