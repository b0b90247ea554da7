package sequence

import (
	"testing"
)

// defaultCycleTerms is the full term list of one cycle at the default
// threshold of 255. The last term is 233; 377 is never produced because the
// post-advance bound check ends the cycle first.
var defaultCycleTerms = []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233}

func TestCycle_DefaultThreshold(t *testing.T) {
	terms := Cycle(DefaultThreshold)

	if len(terms) != len(defaultCycleTerms) {
		t.Fatalf("cycle length = %d, want %d (terms: %v)", len(terms), len(defaultCycleTerms), terms)
	}
	for i, want := range defaultCycleTerms {
		if terms[i] != want {
			t.Errorf("terms[%d] = %d, want %d", i, terms[i], want)
		}
	}
}

func TestGenerator_Next_RestartsAfterCycle(t *testing.T) {
	g := New(DefaultThreshold)

	// Drain one full cycle.
	var last uint64
	for {
		value, end := g.Next()
		last = value
		if end {
			break
		}
	}
	if last != 233 {
		t.Errorf("last term of cycle = %d, want 233", last)
	}

	// The next term after a restart is the seed 0.
	value, end := g.Next()
	if value != 0 {
		t.Errorf("first term after restart = %d, want 0", value)
	}
	if end {
		t.Error("restart term should not close a cycle at the default threshold")
	}
}

func TestGenerator_Next_CyclesAreIdentical(t *testing.T) {
	g := New(DefaultThreshold)

	readCycle := func() []uint64 {
		var terms []uint64
		for {
			value, end := g.Next()
			terms = append(terms, value)
			if end {
				return terms
			}
		}
	}

	first := readCycle()
	for cycle := 1; cycle < 5; cycle++ {
		got := readCycle()
		if len(got) != len(first) {
			t.Fatalf("cycle %d length = %d, want %d", cycle, len(got), len(first))
		}
		for i := range got {
			if got[i] != first[i] {
				t.Errorf("cycle %d terms[%d] = %d, want %d", cycle, i, got[i], first[i])
			}
		}
	}
}

func TestCycle_Thresholds(t *testing.T) {
	tests := []struct {
		name      string
		threshold uint64
		want      []uint64
	}{
		{
			// The do-while guarantees the seed is yielded even when the
			// advanced state immediately meets the bound.
			name:      "threshold 1 yields only the seed",
			threshold: 1,
			want:      []uint64{0},
		},
		{
			name:      "threshold 2 stops once the running term reaches 2",
			threshold: 2,
			want:      []uint64{0, 1, 1},
		},
		{
			name:      "threshold 3",
			threshold: 3,
			want:      []uint64{0, 1, 1, 2},
		},
		{
			// 13 meets the bound exactly; the check is >= so the term
			// after 8 is never produced.
			name:      "threshold equal to a Fibonacci term",
			threshold: 13,
			want:      []uint64{0, 1, 1, 2, 3, 5, 8},
		},
		{
			name:      "threshold between terms",
			threshold: 100,
			want:      []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55},
		},
		{
			name:      "default threshold",
			threshold: 255,
			want:      defaultCycleTerms,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cycle(tt.threshold)
			if len(got) != len(tt.want) {
				t.Fatalf("Cycle(%d) = %v, want %v", tt.threshold, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Cycle(%d)[%d] = %d, want %d", tt.threshold, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCycleLength(t *testing.T) {
	tests := []struct {
		threshold uint64
		want      int
	}{
		{1, 1},
		{2, 3},
		{255, 14},
		{256, 14},
		{MaxThreshold, 91},
	}

	for _, tt := range tests {
		if got := CycleLength(tt.threshold); got != tt.want {
			t.Errorf("CycleLength(%d) = %d, want %d", tt.threshold, got, tt.want)
		}
	}
}

func TestGenerator_Reset(t *testing.T) {
	g := New(DefaultThreshold)

	// Advance partway into a cycle, then reset.
	for i := 0; i < 5; i++ {
		g.Next()
	}
	g.Reset()

	value, end := g.Next()
	if value != 0 || end {
		t.Errorf("Next() after Reset = (%d, %v), want (0, false)", value, end)
	}
}

func TestCycle_MaxThresholdDoesNotOverflow(t *testing.T) {
	terms := Cycle(MaxThreshold)

	// Every term must respect the recurrence; an overflow would break it.
	for i := 2; i < len(terms); i++ {
		if terms[i] != terms[i-1]+terms[i-2] {
			t.Fatalf("terms[%d] = %d, want %d (overflow?)", i, terms[i], terms[i-1]+terms[i-2])
		}
	}
	last := terms[len(terms)-1]
	if last >= MaxThreshold {
		t.Errorf("last term %d should stay below the threshold", last)
	}
}
