package lua

import (
	"context"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Host receives the configuration an init script produces.
type Host interface {
	// Set changes an editor option.
	Set(name string, value any) error

	// Bind registers a key binding by action name.
	Bind(modes, keys []string, action string, args map[string]any) error

	// Print receives the script's print output.
	Print(msg string)
}

// RunInit runs the init script at path against host.
func RunInit(ctx context.Context, path string, host Host, opts ...StateOption) error {
	s := NewState(opts...)
	defer s.Close()

	Install(s, host)
	if err := s.DoFile(ctx, path); err != nil {
		return fmt.Errorf("init script %s: %w", path, err)
	}
	return nil
}

// Install registers the set, bind and print globals on s.
func Install(s *State, host Host) {
	s.RegisterFunc("set", func(L *lua.LState) int {
		name := L.CheckString(1)
		value := ToGoValue(L.CheckAny(2))
		if err := host.Set(name, value); err != nil {
			L.RaiseError("set(%q): %v", name, err)
		}
		return 0
	})

	s.RegisterFunc("bind", func(L *lua.LState) int {
		modes, err := stringList(L.CheckAny(1))
		if err != nil {
			L.ArgError(1, err.Error())
		}
		keys, err := stringList(L.CheckAny(2))
		if err != nil {
			L.ArgError(2, err.Error())
		}
		action := L.CheckString(3)

		var args map[string]any
		if t := L.OptTable(4, nil); t != nil {
			m, ok := ToGoValue(t).(map[string]any)
			if !ok {
				L.ArgError(4, "arguments must be a table with named fields")
			}
			args = m
		}

		if err := host.Bind(modes, keys, action, args); err != nil {
			L.RaiseError("bind(%s): %v", action, err)
		}
		return 0
	})

	s.RegisterFunc("print", func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		host.Print(strings.Join(parts, "\t"))
		return 0
	})
}
