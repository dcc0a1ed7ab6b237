package lua

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	glua "github.com/yuin/gopher-lua"
)

type binding struct {
	Modes  []string
	Keys   []string
	Action string
	Args   map[string]any
}

type fakeHost struct {
	settings map[string]any
	bindings []binding
	printed  []string
	failSet  error
}

func (h *fakeHost) Set(name string, value any) error {
	if h.failSet != nil {
		return h.failSet
	}
	if h.settings == nil {
		h.settings = make(map[string]any)
	}
	h.settings[name] = value
	return nil
}

func (h *fakeHost) Bind(modes, keys []string, action string, args map[string]any) error {
	h.bindings = append(h.bindings, binding{modes, keys, action, args})
	return nil
}

func (h *fakeHost) Print(msg string) {
	h.printed = append(h.printed, msg)
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "init.lua")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunInit(t *testing.T) {
	path := writeScript(t, `
set("softTabs", true)
set("softTabWidth", 2)
set("colorscheme", "dark")
bind("insert", "Ctrl n", "cursor.moveDown", { count = 5 })
bind({ "!insert", "!number" }, { "Ctrl q", "Enter" }, "mode.set", { mode = "insert" })
bind("all", "Ctrl e", "session.exit")
print("loaded", 3)
`)
	host := &fakeHost{}
	if err := RunInit(context.Background(), path, host); err != nil {
		t.Fatal(err)
	}

	wantSettings := map[string]any{"softTabs": true, "softTabWidth": int64(2), "colorscheme": "dark"}
	if diff := cmp.Diff(wantSettings, host.settings); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}

	wantBindings := []binding{
		{[]string{"insert"}, []string{"Ctrl n"}, "cursor.moveDown", map[string]any{"count": int64(5)}},
		{[]string{"!insert", "!number"}, []string{"Ctrl q", "Enter"}, "mode.set", map[string]any{"mode": "insert"}},
		{[]string{"all"}, []string{"Ctrl e"}, "session.exit", nil},
	}
	if diff := cmp.Diff(wantBindings, host.bindings); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"loaded\t3"}, host.printed); diff != "" {
		t.Errorf("print mismatch (-want +got):\n%s", diff)
	}
}

func TestRunInitErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `set(`, "init.lua"},
		{"bad modes", `bind(3, "a", "x")`, "bad argument #1"},
		{"bad keys", `bind("insert", { "a", 2 }, "x")`, "element 2"},
		{"missing action", `bind("insert", "a")`, "bad argument #3"},
		{"runtime", `error("boom")`, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RunInit(context.Background(), writeScript(t, tt.src), &fakeHost{})
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestRunInitHostError(t *testing.T) {
	host := &fakeHost{failSet: errors.New("unknown setting")}
	err := RunInit(context.Background(), writeScript(t, `set("nope", 1)`), host)
	if err == nil || !strings.Contains(err.Error(), "unknown setting") {
		t.Errorf("error = %v", err)
	}
}

func TestSandbox(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"io", "os", "debug", "package", "dofile", "loadfile", "load", "require"} {
		if s.GetGlobal(name) != glua.LNil {
			t.Errorf("%s is available", name)
		}
	}
	for _, name := range []string{"string", "table", "math", "pairs"} {
		if s.GetGlobal(name) == glua.LNil {
			t.Errorf("%s is missing", name)
		}
	}
	if err := s.DoString(context.Background(), `x = string.upper("a") .. math.floor(2.5)`); err != nil {
		t.Fatal(err)
	}
	if got := s.GetGlobal("x").String(); got != "A2" {
		t.Errorf("x = %q", got)
	}
}

func TestExecutionTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(20 * time.Millisecond))
	defer s.Close()

	err := s.DoString(context.Background(), `while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("error = %v, want ErrExecutionTimeout", err)
	}
}

func TestClosedState(t *testing.T) {
	s := NewState()
	s.Close()
	s.Close()
	if err := s.DoString(context.Background(), `x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("error = %v, want ErrStateClosed", err)
	}
}

func TestToGoValue(t *testing.T) {
	s := NewState()
	defer s.Close()
	if err := s.DoString(context.Background(), `v = { 1, "two", 3.5, { a = true } }`); err != nil {
		t.Fatal(err)
	}
	want := []any{int64(1), "two", 3.5, map[string]any{"a": true}}
	if diff := cmp.Diff(want, ToGoValue(s.GetGlobal("v"))); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}
