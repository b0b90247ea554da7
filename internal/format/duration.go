// Package format provides human-readable formatting helpers for durations
// and rates.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatRate formats a count over an elapsed duration as a per-second rate.
// Returns "n/a" when the duration is too short to yield a meaningful rate.
func FormatRate(count uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "n/a"
	}
	rate := float64(count) / elapsed.Seconds()
	switch {
	case rate >= 1_000_000:
		return fmt.Sprintf("%.1fM/s", rate/1_000_000)
	case rate >= 1_000:
		return fmt.Sprintf("%.1fK/s", rate/1_000)
	default:
		return fmt.Sprintf("%.1f/s", rate)
	}
}
