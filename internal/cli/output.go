// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//
// All output in this package is diagnostic and goes to stderr; stdout is
// reserved for the emitted sequence.

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibloop/internal/config"
	"github.com/agbru/fibloop/internal/emitter"
	"github.com/agbru/fibloop/internal/format"
	"github.com/agbru/fibloop/internal/ui"
)

// DisplayRunConfig prints the run banner describing the effective
// configuration.
func DisplayRunConfig(out io.Writer, cfg config.AppConfig, version string) {
	primary, secondary, reset := ui.ColorPrimary(), ui.ColorSecondary(), ui.ColorReset()

	fmt.Fprintf(out, "%sfibloop %s%s\n", ui.ColorBold(), version, reset)
	fmt.Fprintf(out, "%sthreshold:%s %d\n", primary, reset, cfg.Threshold)
	fmt.Fprintf(out, "%scycles:%s %s\n", primary, reset, FormatCycleLimit(cfg.Cycles))
	if cfg.Interval > 0 {
		fmt.Fprintf(out, "%sinterval:%s %s\n", primary, reset, cfg.Interval)
	}
	if cfg.OutputFile != "" {
		fmt.Fprintf(out, "%soutput:%s %s\n", primary, reset, cfg.OutputFile)
	}
	if cfg.MetricsAddr != "" {
		fmt.Fprintf(out, "%smetrics:%s http://%s/metrics\n", primary, reset, cfg.MetricsAddr)
	}
	fmt.Fprintf(out, "%sstop with Ctrl-C%s\n\n", secondary, reset)
}

// FormatCycleLimit renders the cycle limit, using the infinity sign for an
// unbounded run.
func FormatCycleLimit(cycles uint64) string {
	if cycles == 0 {
		return "∞"
	}
	return fmt.Sprintf("%d", cycles)
}

// FormatSummary renders the shutdown summary as a single line block.
func FormatSummary(snap emitter.TallySnapshot, elapsed time.Duration) string {
	return fmt.Sprintf("cycles: %d  terms: %d  last value: %d  elapsed: %s  rate: %s",
		snap.Cycles,
		snap.Terms,
		snap.LastValue,
		format.FormatExecutionDuration(elapsed),
		format.FormatRate(snap.Terms, elapsed))
}

// DisplaySummary prints the shutdown summary with a success marker.
func DisplaySummary(out io.Writer, snap emitter.TallySnapshot, elapsed time.Duration) {
	fmt.Fprintf(out, "\n%s✓%s %s\n", ui.ColorSuccess(), ui.ColorReset(), FormatSummary(snap, elapsed))
}

// DisplayInterrupted prints the cancellation notice shown when a signal
// stops the run.
func DisplayInterrupted(out io.Writer) {
	fmt.Fprintf(out, "\n%sinterrupted%s\n", ui.ColorWarning(), ui.ColorReset())
}
