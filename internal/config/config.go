// Package config defines the application configuration and its resolution
// chain: CLI flags > FIBLOOP_* environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"time"

	apperrors "github.com/agbru/fibloop/internal/errors"
	"github.com/agbru/fibloop/internal/sequence"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "FIBLOOP_"

// Defaults for the configurable knobs.
const (
	// DefaultThreshold is the cycle bound; 255 yields the canonical
	// 14-term cycle ending at 233.
	DefaultThreshold = sequence.DefaultThreshold
	// DefaultLogLevel is the zerolog level for diagnostics.
	DefaultLogLevel = "info"
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Threshold is the bound at which a generation cycle restarts.
	Threshold uint64
	// Cycles stops the run after that many complete cycles; 0 runs forever.
	Cycles uint64
	// Interval is an optional pacing delay between terms.
	Interval time.Duration
	// OutputFile redirects the emitted sequence to a file (empty: stdout).
	OutputFile string
	// MetricsAddr serves Prometheus metrics on this address when non-empty.
	MetricsAddr string
	// LogLevel selects the diagnostic log level.
	LogLevel string
	// Quiet suppresses the banner and the shutdown summary.
	Quiet bool
	// Verbose enables debug logging and periodic system usage sampling.
	Verbose bool
	// NoColor disables ANSI colors in diagnostic output.
	NoColor bool
	// TUI launches the interactive watch dashboard instead of the raw stream.
	TUI bool
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides for flags not explicitly set, then validates the
// result.
//
// A --help request surfaces as flag.ErrHelp so callers can exit cleanly.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Threshold: DefaultThreshold,
		LogLevel:  DefaultLogLevel,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Emit the Fibonacci sequence below a threshold to stdout, restarting forever.\n\n")
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nEnvironment variables (%s*) override defaults for flags not set explicitly.\n", EnvPrefix)
	}

	fs.Uint64Var(&cfg.Threshold, "threshold", cfg.Threshold, "cycle bound: restart once the running term reaches this value")
	fs.Uint64Var(&cfg.Cycles, "cycles", 0, "stop after this many complete cycles (0 = run forever)")
	fs.DurationVar(&cfg.Interval, "interval", 0, "pacing delay between terms (e.g. 100ms; 0 = none)")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the sequence to this file instead of stdout")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for -output")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090; empty = disabled)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress banner and summary; emit terms only")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "debug logging plus periodic system usage sampling")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors in diagnostic output")
	fs.BoolVar(&cfg.TUI, "tui", false, "interactive watch dashboard")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument: %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for internally consistent values.
func (c AppConfig) Validate() error {
	if c.Threshold < 1 {
		return apperrors.ValidationError{Field: "threshold", Message: "must be at least 1"}
	}
	if c.Threshold > sequence.MaxThreshold {
		return apperrors.ValidationError{
			Field:   "threshold",
			Message: fmt.Sprintf("must not exceed %d (64-bit overflow bound)", uint64(sequence.MaxThreshold)),
		}
	}
	if c.Interval < 0 {
		return apperrors.ValidationError{Field: "interval", Message: "must not be negative"}
	}
	if c.MetricsAddr != "" {
		if _, _, err := net.SplitHostPort(c.MetricsAddr); err != nil {
			return apperrors.ValidationError{Field: "metrics-addr", Message: fmt.Sprintf("invalid address: %v", err)}
		}
	}
	if c.TUI && c.OutputFile != "" {
		return apperrors.ValidationError{Field: "tui", Message: "cannot be combined with -output"}
	}
	return nil
}
