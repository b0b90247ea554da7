// Package tui implements the interactive watch dashboard. It runs the
// emission loop against a discarded sink and renders live counters, a
// sparkline of recent terms, and system usage instead of the raw stream.
package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibloop/internal/config"
	"github.com/agbru/fibloop/internal/emitter"
	apperrors "github.com/agbru/fibloop/internal/errors"
	"github.com/agbru/fibloop/internal/logging"
	"github.com/agbru/fibloop/internal/metrics"
	"github.com/agbru/fibloop/internal/server"
)

// defaultWatchInterval paces the emitter when no interval is configured.
// An unpaced run restarts thousands of cycles per second, which renders as
// noise on the dashboard.
const defaultWatchInterval = 100 * time.Millisecond

// Run is the public entry point for the watch mode. It drives the emitter
// and the optional metrics server alongside the bubbletea program and
// returns the process exit code.
func Run(ctx context.Context, cfg config.AppConfig, logger logging.Logger, version string) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, cancel, cfg, version)

	subject := emitter.NewSubject()
	subject.Register(&Bridge{ref: model.ref})

	var collector *metrics.Collector
	if cfg.MetricsAddr != "" {
		collector = metrics.NewCollector()
		subject.Register(collector)
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	em := emitter.New(io.Discard, subject, logger, emitter.Options{
		Threshold: cfg.Threshold,
		MaxCycles: cfg.Cycles,
		Interval:  interval,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := em.Run(gctx)
		model.ref.Send(RunDoneMsg{Err: err})
		return nil
	})
	if collector != nil {
		srv := server.New(cfg.MetricsAddr, collector.Registry(), logger)
		g.Go(func() error { return srv.Start(gctx) })
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	cancel()
	if gerr := g.Wait(); gerr != nil {
		logger.Error("background task failed", gerr)
	}

	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
