// Package sequence implements the bounded-cycle Fibonacci generator at the
// heart of fibloop. A cycle starts from the fixed seeds (0, 1), yields
// successive Fibonacci terms, and ends when the running term reaches the
// threshold, at which point the state resets and the cycle repeats.
package sequence

const (
	// DefaultThreshold is the bound at which a generation cycle restarts.
	// With this value each cycle emits exactly 14 terms, ending at 233.
	DefaultThreshold = 255

	// MaxThreshold is the largest bound for which the advance step cannot
	// overflow 64 bits. Terms within a cycle stay below the first Fibonacci
	// number >= threshold, so the advance is bounded by F(k+2) where
	// F(k) is that number; F(91) is the largest seed for which F(93) still
	// fits in a uint64.
	MaxThreshold = 4660046610375530309 // F(91)
)

// Generator produces the terms of one generation cycle after another.
// The zero value is not usable; construct with New.
//
// Generator is not safe for concurrent use.
type Generator struct {
	threshold uint64
	current   uint64
	next      uint64
}

// New creates a Generator for the given threshold. The first call to Next
// yields 0, the seed of the first cycle.
func New(threshold uint64) *Generator {
	return &Generator{threshold: threshold, current: 0, next: 1}
}

// Threshold returns the bound at which cycles restart.
func (g *Generator) Threshold() uint64 { return g.threshold }

// Next yields the next term of the sequence and advances the state.
//
// The bound check runs after the advance, mirroring the do-while shape of
// the emission contract: the returned term is always yielded, and the check
// on the advanced state decides whether the cycle continues. cycleEnd is
// true when this term closes its cycle; the state has then already been
// reset to the seeds (0, 1).
func (g *Generator) Next() (value uint64, cycleEnd bool) {
	value = g.current
	advance := g.current + g.next
	g.current = g.next
	g.next = advance
	if g.current >= g.threshold {
		g.Reset()
		return value, true
	}
	return value, false
}

// Reset restores the seed state (0, 1), discarding any in-progress cycle.
func (g *Generator) Reset() {
	g.current = 0
	g.next = 1
}

// Cycle returns the terms of one full generation cycle for the given
// threshold. The do-while semantics guarantee at least one term (the
// leading 0) for every threshold.
func Cycle(threshold uint64) []uint64 {
	g := New(threshold)
	var terms []uint64
	for {
		value, end := g.Next()
		terms = append(terms, value)
		if end {
			return terms
		}
	}
}

// CycleLength returns the number of terms emitted per cycle for the given
// threshold. For the default threshold of 255 this is 14.
func CycleLength(threshold uint64) int {
	return len(Cycle(threshold))
}
