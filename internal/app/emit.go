package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibloop/internal/cli"
	"github.com/agbru/fibloop/internal/emitter"
	apperrors "github.com/agbru/fibloop/internal/errors"
	"github.com/agbru/fibloop/internal/logging"
	"github.com/agbru/fibloop/internal/metrics"
	"github.com/agbru/fibloop/internal/server"
	"github.com/agbru/fibloop/internal/sysmon"
)

// sysmonInterval paces the verbose-mode system usage sampler.
const sysmonInterval = 10 * time.Second

// runEmit orchestrates the stream mode: the emitter writes terms to the
// sink while the optional metrics server and system sampler run alongside
// it until the emitter stops.
func (a *Application) runEmit(ctx context.Context, out io.Writer) int {
	sink, closeSink, code := a.resolveSink(out)
	if code != apperrors.ExitSuccess {
		return code
	}
	defer closeSink()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	subject := emitter.NewSubject()
	tally := &emitter.Tally{}
	subject.Register(tally)

	var collector *metrics.Collector
	if a.Config.MetricsAddr != "" {
		collector = metrics.NewCollector()
		subject.Register(collector)
	}

	em := emitter.New(sink, subject, a.Logger, emitter.Options{
		Threshold: a.Config.Threshold,
		MaxCycles: a.Config.Cycles,
		Interval:  a.Config.Interval,
	})

	if !a.Config.Quiet {
		cli.DisplayRunConfig(a.ErrWriter, a.Config, Version)
	}

	start := time.Now()

	// The emitter owns the run lifetime: when it stops, for any reason, the
	// inner cancel winds down the metrics server and the sampler.
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	var runErr error
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		runErr = em.Run(gctx)
		cancelRun()
		return nil
	})
	if collector != nil {
		srv := server.New(a.Config.MetricsAddr, collector.Registry(), a.Logger)
		g.Go(func() error { return srv.Start(gctx) })
	}
	if a.Config.Verbose {
		sampler := sysmon.NewSampler(sysmonInterval, a.Logger)
		g.Go(func() error { return sampler.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		a.Logger.Error("background task failed", err)
	}

	return a.finishRun(runErr, tally.Snapshot(), time.Since(start))
}

// resolveSink returns the writer carrying the emitted sequence and a close
// function. The default sink is out (stdout in production).
func (a *Application) resolveSink(out io.Writer) (io.Writer, func(), int) {
	if a.Config.OutputFile == "" {
		return out, func() {}, apperrors.ExitSuccess
	}

	f, err := os.Create(a.Config.OutputFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error opening output file: %v\n", err)
		return nil, nil, apperrors.ExitErrorConfig
	}
	closeSink := func() {
		if err := f.Close(); err != nil {
			a.Logger.Error("closing output file", err, logging.String("path", a.Config.OutputFile))
		}
	}
	return f, closeSink, apperrors.ExitSuccess
}

// finishRun reports the outcome and maps it to the process exit code.
func (a *Application) finishRun(runErr error, snap emitter.TallySnapshot, elapsed time.Duration) int {
	interrupted := apperrors.IsContextError(runErr)

	if runErr != nil && !interrupted {
		a.Logger.Error("emission stopped", runErr,
			logging.Uint64("terms", snap.Terms),
			logging.Uint64("cycles", snap.Cycles))
	}

	if !a.Config.Quiet {
		if interrupted {
			cli.DisplayInterrupted(a.ErrWriter)
		}
		cli.DisplaySummary(a.ErrWriter, snap, elapsed)
	}

	return apperrors.ExitCodeForError(runErr)
}
