package emitter

import (
	"sync"
	"time"
)

// Tally is an Observer that accumulates run totals for the shutdown summary.
type Tally struct {
	mu        sync.Mutex
	terms     uint64
	cycles    uint64
	lastValue uint64
	lastCycle time.Duration
}

// TallySnapshot is a point-in-time copy of the accumulated totals.
type TallySnapshot struct {
	Terms         uint64
	Cycles        uint64
	LastValue     uint64
	LastCycleTime time.Duration
}

// TermEmitted records one emitted term.
func (t *Tally) TermEmitted(value uint64, _ int, _ uint64) {
	t.mu.Lock()
	t.terms++
	t.lastValue = value
	t.mu.Unlock()
}

// CycleCompleted records one completed cycle.
func (t *Tally) CycleCompleted(_ uint64, _ int, duration time.Duration) {
	t.mu.Lock()
	t.cycles++
	t.lastCycle = duration
	t.mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func (t *Tally) Snapshot() TallySnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TallySnapshot{
		Terms:         t.terms,
		Cycles:        t.cycles,
		LastValue:     t.lastValue,
		LastCycleTime: t.lastCycle,
	}
}

// Verify interface compliance.
var _ Observer = (*Tally)(nil)
