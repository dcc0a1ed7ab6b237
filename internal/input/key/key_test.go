package key

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func TestIsPrintable(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"a", true},
		{"Z", true},
		{"?", true},
		{"é", true},
		{"世", true},
		{" ", false},
		{"", false},
		{"ab", false},
		{"Enter", false},
		{"\t", false},
		{"\x01", false},
	}

	for _, tt := range tests {
		if got := IsPrintable(tt.token); got != tt.want {
			t.Errorf("IsPrintable(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	tests := map[string]string{"a": "a", "Space": " ", "é": "é"}
	for token, want := range tests {
		if got, ok := Text(token); !ok || got != want {
			t.Errorf("Text(%q) = %q, %v", token, got, ok)
		}
	}
	for _, token := range []string{"Enter", "Tab", "Ctrl", ""} {
		if _, ok := Text(token); ok {
			t.Errorf("Text(%q) typed something", token)
		}
	}
}

func TestIsReserved(t *testing.T) {
	if !IsReserved(Printable) || !IsReserved(Unbound) {
		t.Error("fallback tokens not reserved")
	}
	if IsReserved("Ctrl") || IsReserved("p") {
		t.Error("ordinary tokens reported as reserved")
	}
}

func TestParseSequence(t *testing.T) {
	got, err := ParseSequence("  Ctrl a   b c ")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Ctrl", "a", "b", "c"}, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if FormatSequence(got) != "Ctrl a b c" {
		t.Errorf("FormatSequence = %q", FormatSequence(got))
	}

	if _, err := ParseSequence("   "); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence, got %v", err)
	}
}

func TestParseSequenceRejectsUnknownTokens(t *testing.T) {
	for _, seq := range []string{"Ctrl-q", "Alt ju", "Esc", "ctrl a"} {
		if _, err := ParseSequence(seq); !errors.Is(err, ErrUnknownToken) {
			t.Errorf("ParseSequence(%q) = %v, want ErrUnknownToken", seq, err)
		}
	}
	for _, seq := range []string{"Printable", "Unbound", "Alt PageDown", "é", "Ctrl Space"} {
		if _, err := ParseSequence(seq); err != nil {
			t.Errorf("ParseSequence(%q) = %v", seq, err)
		}
	}
}

func TestIsNamed(t *testing.T) {
	for _, tok := range []string{Ctrl, Alt, Enter, PageUp} {
		if !IsNamed(tok) {
			t.Errorf("IsNamed(%q) = false", tok)
		}
	}
	for _, tok := range []string{"a", Printable, "enter", ""} {
		if IsNamed(tok) {
			t.Errorf("IsNamed(%q) = true", tok)
		}
	}
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), []string{"x"}},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'N', tcell.ModShift), []string{"N"}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []string{Space}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []string{Enter}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), []string{Tab}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), []string{Backspace}},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), []string{Backspace}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []string{Alt}},
		{"ctrl q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), []string{Ctrl, "q"}},
		{"ctrl a", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), []string{Ctrl, "a"}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModAlt), []string{Alt, "j"}},
		{"alt delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModAlt), []string{Alt, Delete}},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), []string{Up}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), []string{PageDown}},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, FromEvent(tt.ev)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
