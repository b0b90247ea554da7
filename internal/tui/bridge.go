package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fibloop/internal/emitter"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TermMsg reports a single emitted term.
type TermMsg struct {
	Value uint64
	Index int
	Cycle uint64
}

// CycleMsg reports a completed cycle.
type CycleMsg struct {
	Cycle    uint64
	Terms    int
	Duration time.Duration
}

// RunDoneMsg reports that the emission run stopped, with its final error.
type RunDoneMsg struct {
	Err error
}

// TickMsg drives the periodic dashboard refresh.
type TickMsg time.Time

// SysStatsMsg carries a system-wide CPU and memory usage sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// MemStatsMsg carries a runtime heap reading.
type MemStatsMsg struct {
	HeapAlloc uint64
	NumGC     uint32
}

// ContextCanceledMsg reports that the parent context was canceled.
type ContextCanceledMsg struct {
	Err error
}

// Bridge forwards emitter events to the dashboard as bubbletea messages.
type Bridge struct {
	ref *programRef
}

// Verify interface compliance.
var _ emitter.Observer = (*Bridge)(nil)

// TermEmitted forwards a term event to the TUI.
func (b *Bridge) TermEmitted(value uint64, index int, cycle uint64) {
	b.ref.Send(TermMsg{Value: value, Index: index, Cycle: cycle})
}

// CycleCompleted forwards a cycle-completion event to the TUI.
func (b *Bridge) CycleCompleted(cycle uint64, terms int, duration time.Duration) {
	b.ref.Send(CycleMsg{Cycle: cycle, Terms: terms, Duration: duration})
}
