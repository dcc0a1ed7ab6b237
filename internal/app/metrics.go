package app

import (
	"time"

	"github.com/dshills/modedit/internal/input/mode"
)

// Metrics counts what the event loop did. It is only touched from the
// loop's goroutine.
type Metrics struct {
	tokens   map[mode.Outcome]uint64
	errors   uint64
	frames   uint64
	frameNs  int64
	frameMax int64
	started  time.Time
}

// NewMetrics creates an empty metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		tokens:  make(map[mode.Outcome]uint64),
		started: time.Now(),
	}
}

// RecordToken records the outcome of dispatching one token.
func (m *Metrics) RecordToken(o mode.Outcome) {
	m.tokens[o]++
}

// RecordActionError records an action that returned an error.
func (m *Metrics) RecordActionError() {
	m.errors++
}

// RecordFrame records the time taken to draw one frame.
func (m *Metrics) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()
	m.frames++
	m.frameNs += ns
	m.frameMax = max(m.frameMax, ns)
}

// MetricsSnapshot is a copy of the counters.
type MetricsSnapshot struct {
	NoAction     uint64
	Pending      uint64
	Fired        uint64
	ActionErrors uint64

	Frames       uint64
	AvgFrameTime time.Duration
	MaxFrameTime time.Duration

	Uptime time.Duration
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		NoAction:     m.tokens[mode.NoAction],
		Pending:      m.tokens[mode.Pending],
		Fired:        m.tokens[mode.Fired],
		ActionErrors: m.errors,
		Frames:       m.frames,
		MaxFrameTime: time.Duration(m.frameMax),
		Uptime:       time.Since(m.started),
	}
	if m.frames > 0 {
		s.AvgFrameTime = time.Duration(m.frameNs / int64(m.frames))
	}
	return s
}
