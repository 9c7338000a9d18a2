package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
)

// Sampler reports host CPU utilization as a percentage in [0,100].
type Sampler interface {
	Sample(ctx context.Context) (float64, error)
}

// DefaultSampleInterval matches the one-second sampling window the
// driver has always used.
const DefaultSampleInterval = time.Second

// HostSampler measures whole-machine CPU utilization over Interval.
// It reflects load on the host around the call, not the worker's own
// consumption.
type HostSampler struct {
	Interval time.Duration
}

// Sample implements Sampler. It blocks for the sampling interval.
func (s HostSampler) Sample(ctx context.Context) (float64, error) {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultSampleInterval
	}

	percents, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, fmt.Errorf("sample cpu: %w", err)
	}

	if len(percents) == 0 {
		return 0, fmt.Errorf("sample cpu: no data")
	}

	return percents[0], nil
}
