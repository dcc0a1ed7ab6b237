// Package keymap provides the per-mode binding trie the dispatcher walks.
//
// Each mode owns a root node. A node is either a continuation, holding
// children keyed by token, or a terminal bound to an action. Registering a
// sequence that runs through a terminal, or ends on a continuation,
// replaces that node's role; the later registration wins.
//
// # Mode forms
//
// Register accepts mode lists in three forms, which may be mixed:
//
//	[]string{"insert", "command"}  - the named modes
//	[]string{"!insert"}            - every known mode except insert
//	[]string{"all"}                - every known mode
//
// Named modes that do not exist yet are created. Exclusions are applied
// last, so {"all", "!number", "!openFile"} means every mode other than the
// two named.
//
// # Usage
//
//	table := keymap.NewTable("insert", "command")
//	err := table.Register([]string{"insert"}, []string{"Ctrl a b c"}, action)
//
//	node := table.Root("insert")
//	next, ok := keymap.Lookup(node, "Ctrl")
package keymap

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/modedit/internal/dispatcher/handler"
	"github.com/dshills/modedit/internal/input/key"
)

// AllModes is the mode form naming every known mode.
const AllModes = "all"

// Registration errors.
var (
	ErrNoModes     = errors.New("binding resolves to no modes")
	ErrNilAction   = errors.New("binding has no action")
	ErrNoSequences = errors.New("binding has no key sequences")
)

// Node is one position in a mode's trie.
type Node struct {
	action   handler.Action
	children map[string]*Node
}

// Action returns the bound action of a terminal node, or nil.
func (n *Node) Action() handler.Action { return n.action }

// IsTerminal reports whether the node is bound to an action.
func (n *Node) IsTerminal() bool { return n.action != nil }

// Child returns the child for token, or nil.
func (n *Node) Child(token string) *Node { return n.children[token] }

// Tokens returns the node's child tokens in sorted order.
func (n *Node) Tokens() []string {
	tokens := make([]string, 0, len(n.children))
	for t := range n.children {
		tokens = append(tokens, t)
	}
	slices.Sort(tokens)
	return tokens
}

// Lookup resolves token at n: an exact child first, then Printable for a
// single printable character, then Unbound.
func Lookup(n *Node, token string) (*Node, bool) {
	if child, ok := n.children[token]; ok {
		return child, true
	}
	if key.IsPrintable(token) {
		if child, ok := n.children[key.Printable]; ok {
			return child, true
		}
	}
	if child, ok := n.children[key.Unbound]; ok {
		return child, true
	}
	return nil, false
}

// Overwrite describes a registration that replaced an existing binding or
// continuation.
type Overwrite struct {
	Mode     string
	Sequence []string
	Replaced string
}

// Table maps mode names to their trie roots.
type Table struct {
	roots       map[string]*Node
	order       []string
	onOverwrite func(Overwrite)
}

// NewTable creates a table with the given modes.
func NewTable(modes ...string) *Table {
	t := &Table{roots: make(map[string]*Node)}
	for _, m := range modes {
		t.AddMode(m)
	}
	return t
}

// AddMode creates an empty mode. Adding an existing mode does nothing.
func (t *Table) AddMode(mode string) {
	if _, ok := t.roots[mode]; ok {
		return
	}
	t.roots[mode] = &Node{}
	t.order = append(t.order, mode)
}

// Modes returns the known modes in the order they were added.
func (t *Table) Modes() []string {
	return slices.Clone(t.order)
}

// HasMode reports whether mode exists.
func (t *Table) HasMode(mode string) bool {
	_, ok := t.roots[mode]
	return ok
}

// Root returns the root of mode's trie, or nil for an unknown mode.
func (t *Table) Root(mode string) *Node {
	return t.roots[mode]
}

// OnOverwrite sets a function called whenever a registration replaces an
// existing binding.
func (t *Table) OnOverwrite(fn func(Overwrite)) {
	t.onOverwrite = fn
}

// ResolveModes expands a mode list into concrete mode names. Named modes
// that do not exist yet are created.
func (t *Table) ResolveModes(modes []string) []string {
	var include, exclude []string
	all := false
	for _, m := range modes {
		switch {
		case m == AllModes:
			all = true
		case strings.HasPrefix(m, "!"):
			exclude = append(exclude, m[1:])
		case m != "":
			include = append(include, m)
		}
	}

	for _, m := range include {
		t.AddMode(m)
	}

	var candidates []string
	if all || len(include) == 0 {
		candidates = t.order
	} else {
		candidates = include
	}

	var out []string
	for _, m := range candidates {
		if slices.Contains(exclude, m) || slices.Contains(out, m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Register binds action to every sequence in every resolved mode. Each
// sequence is a space-separated token string registered independently.
func (t *Table) Register(modes []string, sequences []string, action handler.Action) error {
	if action == nil {
		return ErrNilAction
	}
	if len(sequences) == 0 {
		return ErrNoSequences
	}

	parsed := make([][]string, 0, len(sequences))
	for _, seq := range sequences {
		tokens, err := key.ParseSequence(seq)
		if err != nil {
			return fmt.Errorf("register %q: %w", seq, err)
		}
		parsed = append(parsed, tokens)
	}

	resolved := t.ResolveModes(modes)
	if len(resolved) == 0 {
		return fmt.Errorf("register %v: %w", modes, ErrNoModes)
	}

	for _, mode := range resolved {
		for _, tokens := range parsed {
			t.insert(mode, tokens, action)
		}
	}
	return nil
}

func (t *Table) insert(mode string, tokens []string, action handler.Action) {
	node := t.roots[mode]
	for i, tok := range tokens {
		if node.action != nil {
			t.overwritten(mode, tokens[:i], node.action.Name())
			node.action = nil
		}
		child, ok := node.children[tok]
		if !ok {
			if node.children == nil {
				node.children = make(map[string]*Node)
			}
			child = &Node{}
			node.children[tok] = child
		}
		node = child
	}

	switch {
	case node.action != nil:
		t.overwritten(mode, tokens, node.action.Name())
	case len(node.children) > 0:
		t.overwritten(mode, tokens, "continuation")
	}
	node.children = nil
	node.action = action
}

func (t *Table) overwritten(mode string, seq []string, replaced string) {
	if t.onOverwrite != nil {
		t.onOverwrite(Overwrite{Mode: mode, Sequence: slices.Clone(seq), Replaced: replaced})
	}
}

// Binding is the value form of one Register call.
type Binding struct {
	Modes     []string
	Sequences []string
	Action    handler.Action
}

// RegisterAll registers each binding in order, stopping at the first
// failure.
func (t *Table) RegisterAll(bindings []Binding) error {
	for _, b := range bindings {
		if err := t.Register(b.Modes, b.Sequences, b.Action); err != nil {
			return err
		}
	}
	return nil
}
