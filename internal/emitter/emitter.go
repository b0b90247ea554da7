// Package emitter implements the run-forever emission loop: it drives the
// sequence generator, writes each term to the output sink as a decimal
// integer followed by a newline, and notifies observers of terms and cycle
// completions.
package emitter

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/agbru/fibloop/internal/errors"
	"github.com/agbru/fibloop/internal/logging"
	"github.com/agbru/fibloop/internal/sequence"
)

// tracerName identifies this package to the OpenTelemetry tracer provider.
const tracerName = "github.com/agbru/fibloop/internal/emitter"

// Options configures an emission run.
type Options struct {
	// Threshold is the cycle bound. Zero selects sequence.DefaultThreshold.
	Threshold uint64
	// MaxCycles stops the run after this many complete cycles.
	// Zero means run forever.
	MaxCycles uint64
	// Interval is an optional pacing delay between terms. When positive,
	// the sink is flushed before each delay so output is observable live.
	Interval time.Duration
}

// Emitter writes the bounded-cycle Fibonacci sequence to a sink.
//
// A sink write failure is fatal for the run: output order must be preserved
// and skipping a term would break the emission contract, so there is no
// retry.
type Emitter struct {
	out     *bufio.Writer
	subject *Subject
	logger  logging.Logger
	opts    Options
}

// New creates an Emitter writing to out. A nil subject gets an empty one; a
// nil logger gets the default stderr logger.
func New(out io.Writer, subject *Subject, logger logging.Logger, opts Options) *Emitter {
	if subject == nil {
		subject = NewSubject()
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if opts.Threshold == 0 {
		opts.Threshold = sequence.DefaultThreshold
	}
	return &Emitter{
		out:     bufio.NewWriter(out),
		subject: subject,
		logger:  logger,
		opts:    opts,
	}
}

// Run emits cycles until the context is canceled, the sink fails, or the
// configured cycle limit is reached. It returns nil only when the cycle
// limit stops the run; cancellation surfaces as the context error, and sink
// failures as an *apperrors.EmitError.
func (e *Emitter) Run(ctx context.Context) error {
	tracer := otel.Tracer(tracerName)
	gen := sequence.New(e.opts.Threshold)
	buf := make([]byte, 0, 32)

	e.logger.Debug("emitter starting",
		logging.Uint64("threshold", e.opts.Threshold),
		logging.Uint64("max_cycles", e.opts.MaxCycles))

	var cycle uint64
	for {
		cycleStart := time.Now()
		_, span := tracer.Start(ctx, "emitter.cycle")
		span.SetAttributes(attribute.Int64("cycle", int64(cycle)))

		terms := 0
		for {
			if err := ctx.Err(); err != nil {
				span.End()
				e.flush()
				return err
			}

			value, end := gen.Next()
			buf = strconv.AppendUint(buf[:0], value, 10)
			buf = append(buf, '\n')
			if _, err := e.out.Write(buf); err != nil {
				span.RecordError(err)
				span.End()
				return apperrors.NewEmitError(err)
			}
			e.subject.NotifyTerm(value, terms, cycle)
			terms++

			if e.opts.Interval > 0 {
				if err := e.flush(); err != nil {
					span.End()
					return err
				}
				if err := sleepContext(ctx, e.opts.Interval); err != nil {
					span.End()
					return err
				}
			}
			if end {
				break
			}
		}

		span.SetAttributes(attribute.Int("terms", terms))
		span.End()

		e.subject.NotifyCycle(cycle, terms, time.Since(cycleStart))
		cycle++

		if err := e.flush(); err != nil {
			return err
		}
		if e.opts.MaxCycles > 0 && cycle >= e.opts.MaxCycles {
			e.logger.Debug("cycle limit reached", logging.Uint64("cycles", cycle))
			return nil
		}
	}
}

// flush drains the write buffer, converting failures to emit errors.
func (e *Emitter) flush() error {
	if err := e.out.Flush(); err != nil {
		return apperrors.NewEmitError(err)
	}
	return nil
}

// sleepContext waits for d or until the context is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
