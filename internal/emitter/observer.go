//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

package emitter

import (
	"sync"
	"time"
)

// Observer receives emission lifecycle events. Implementations must be safe
// for concurrent use; the emitter invokes them from its run goroutine while
// other goroutines (metrics scrapes, TUI rendering) read their state.
type Observer interface {
	// TermEmitted is called after a term has been written to the sink.
	// index is the position of the term within its cycle (0-based) and
	// cycle is the 0-based cycle number.
	TermEmitted(value uint64, index int, cycle uint64)

	// CycleCompleted is called after the final term of a cycle has been
	// written. terms is the number of terms the cycle produced.
	CycleCompleted(cycle uint64, terms int, duration time.Duration)
}

// Subject fans emission events out to a set of registered observers.
// Registration is expected to happen before the run starts, but the subject
// tolerates concurrent registration.
type Subject struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewSubject creates an empty Subject.
func NewSubject() *Subject {
	return &Subject{}
}

// Register adds an observer. Nil observers are ignored.
func (s *Subject) Register(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// NotifyTerm forwards a term event to all registered observers.
func (s *Subject) NotifyTerm(value uint64, index int, cycle uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.TermEmitted(value, index, cycle)
	}
}

// NotifyCycle forwards a cycle-completion event to all registered observers.
func (s *Subject) NotifyCycle(cycle uint64, terms int, duration time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.CycleCompleted(cycle, terms, duration)
	}
}

// NullObserver is a no-op Observer.
type NullObserver struct{}

// TermEmitted does nothing.
func (NullObserver) TermEmitted(uint64, int, uint64) {}

// CycleCompleted does nothing.
func (NullObserver) CycleCompleted(uint64, int, time.Duration) {}
