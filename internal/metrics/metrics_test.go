package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_TermEmitted(t *testing.T) {
	c := NewCollector()

	c.TermEmitted(0, 0, 0)
	c.TermEmitted(1, 1, 0)
	c.TermEmitted(233, 13, 0)

	if got := testutil.ToFloat64(c.termsTotal); got != 3 {
		t.Errorf("terms counter = %v, want 3", got)
	}
	if got := testutil.ToFloat64(c.lastValue); got != 233 {
		t.Errorf("last value gauge = %v, want 233", got)
	}
}

func TestCollector_CycleCompleted(t *testing.T) {
	c := NewCollector()

	c.CycleCompleted(0, 14, 5*time.Microsecond)
	c.CycleCompleted(1, 14, 7*time.Microsecond)

	if got := testutil.ToFloat64(c.cyclesTotal); got != 2 {
		t.Errorf("cycles counter = %v, want 2", got)
	}
}

func TestCollector_RegistryGathersAll(t *testing.T) {
	c := NewCollector()
	c.TermEmitted(55, 10, 0)

	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}

	for _, want := range []string{
		"fibloop_terms_emitted_total",
		"fibloop_cycles_completed_total",
		"fibloop_last_value",
		"fibloop_cycle_duration_seconds",
	} {
		if !names[want] {
			t.Errorf("registry should expose %s", want)
		}
	}

	// Runtime collectors are registered too.
	goMetrics := false
	for name := range names {
		if strings.HasPrefix(name, "go_") {
			goMetrics = true
			break
		}
	}
	if !goMetrics {
		t.Error("registry should expose Go runtime metrics")
	}
}

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemoryCollector_SysMonotonic(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()

	_ = make([]byte, 1024*1024)

	after := mc.Snapshot()
	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between snapshots")
	}
}
