package app

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "test"})
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l, &buf
}

func TestLoggerLevels(t *testing.T) {
	l, buf := newTestLogger(LogLevelWarn)
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "2026-01-02T03:04:05.000 [WARN] test: shown" {
		t.Errorf("line = %q", lines[0])
	}
}

func TestLoggerFields(t *testing.T) {
	l, buf := newTestLogger(LogLevelDebug)
	l.WithComponent("keymap").WithField("mode", "insert").Info("bound", "keys", "Ctrl q")

	want := "2026-01-02T03:04:05.000 [INFO] test: bound {component=keymap, keys=Ctrl q, mode=insert}\n"
	if buf.String() != want {
		t.Errorf("line = %q, want %q", buf.String(), want)
	}
}

func TestLoggerFormat(t *testing.T) {
	l, buf := newTestLogger(LogLevelDebug)
	l.Info("%d buffers", 3)
	if !strings.HasSuffix(buf.String(), "test: 3 buffers\n") {
		t.Errorf("line = %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	if NullLogger.Enabled(LogLevelError) {
		t.Error("null logger enabled")
	}
	NullLogger.WithComponent("x").Error("nothing")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		ok   bool
	}{
		{"debug", LogLevelDebug, true},
		{"INFO", LogLevelInfo, true},
		{"warning", LogLevelWarn, true},
		{"error", LogLevelError, true},
		{"loud", LogLevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLogLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLogLevel(%q) = %v, %v", tt.in, got, ok)
		}
	}
}
