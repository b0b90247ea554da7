// Package sysmon provides system-wide CPU and memory usage sampling.
package sysmon

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/agbru/fibloop/internal/logging"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Sampler logs system usage at a fixed interval. It is only started in
// verbose mode; the emitted sequence is unaffected.
type Sampler struct {
	interval time.Duration
	logger   logging.Logger
}

// NewSampler creates a Sampler logging at the given interval.
func NewSampler(interval time.Duration, logger logging.Logger) *Sampler {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Sampler{interval: interval, logger: logger}
}

// Run samples until the context is canceled. Cancellation is the expected
// way to stop the sampler, so it returns nil.
func (s *Sampler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := Sample()
			s.logger.Debug("system usage",
				logging.Float64("cpu_percent", stats.CPUPercent),
				logging.Float64("mem_percent", stats.MemPercent))
		}
	}
}
