// Package metrics exposes Prometheus instrumentation for the emission loop.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/fibloop/internal/emitter"
)

// Collector holds the Prometheus metrics of a run. It implements
// emitter.Observer so it can be registered directly on the emission subject.
type Collector struct {
	registry *prometheus.Registry

	termsTotal    prometheus.Counter
	cyclesTotal   prometheus.Counter
	lastValue     prometheus.Gauge
	cycleDuration prometheus.Histogram
}

// Verify interface compliance.
var _ emitter.Observer = (*Collector)(nil)

// NewCollector creates a Collector with its own registry, pre-populated with
// the Go runtime and process collectors.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		termsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibloop_terms_emitted_total",
			Help: "Total number of sequence terms written to the sink.",
		}),
		cyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibloop_cycles_completed_total",
			Help: "Total number of completed generation cycles.",
		}),
		lastValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibloop_last_value",
			Help: "Value of the most recently emitted term.",
		}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fibloop_cycle_duration_seconds",
			Help:    "Wall-clock duration of completed cycles.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.termsTotal,
		c.cyclesTotal,
		c.lastValue,
		c.cycleDuration,
	)
	return c
}

// Registry returns the underlying registry for exposition.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// TermEmitted records one emitted term.
func (c *Collector) TermEmitted(value uint64, _ int, _ uint64) {
	c.termsTotal.Inc()
	c.lastValue.Set(float64(value))
}

// CycleCompleted records one completed cycle.
func (c *Collector) CycleCompleted(_ uint64, _ int, duration time.Duration) {
	c.cyclesTotal.Inc()
	c.cycleDuration.Observe(duration.Seconds())
}
