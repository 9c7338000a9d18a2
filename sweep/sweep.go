package sweep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/balajisukumaran/probabilistic-data-structures/config"
	"github.com/balajisukumaran/probabilistic-data-structures/metrics"
	"github.com/balajisukumaran/probabilistic-data-structures/worker"
)

// Invoker runs the worker process once and returns its captured
// output.
type Invoker interface {
	Run(ctx context.Context) worker.Output
}

// Driver executes the full sweep: one worker invocation per Point,
// strictly sequential.
type Driver struct {
	ConfigPath string
	Worker     Invoker
	Parser     metrics.Parser
	Sampler    metrics.Sampler
	Logger     *slog.Logger
}

// Run processes every sweep point in enumeration order and returns
// one Record per point. Per point it rewrites the properties file,
// brackets the worker run with two CPU samples, and scrapes the
// worker's stdout. A failed worker or unmatched output yields null
// measurement fields and the sweep continues; only a properties-file
// read/write failure aborts.
func (d *Driver) Run(ctx context.Context) ([]Record, error) {
	points := Points()
	records := make([]Record, 0, len(points))

	for i, p := range points {
		d.Logger.InfoContext(ctx, "running sweep point",
			slog.Int("index", i+1),
			slog.Int("total", len(points)),
			slog.Int("query_size", p.QuerySize),
			slog.String("structure", string(p.Structure)),
			slog.String("operation", string(p.Operation)),
		)

		err := config.Apply(d.ConfigPath, config.Assignment{
			Operation: string(p.Operation),
			QuerySize: p.QuerySize,
			Structure: string(p.Structure),
		})
		if err != nil {
			return nil, fmt.Errorf("configure %s/%s/%d: %w",
				p.Structure, p.Operation, p.QuerySize, err)
		}

		cpuBefore := d.sample(ctx)
		out := d.Worker.Run(ctx)
		cpuAfter := d.sample(ctx)

		m := d.Parser.Parse(out.Stdout)

		if m.ExecutionTimeMs == nil || m.MemoryUsedMb == nil {
			d.Logger.WarnContext(ctx, "incomplete worker measurements",
				slog.Bool("execution_time", m.ExecutionTimeMs != nil),
				slog.Bool("memory_used", m.MemoryUsedMb != nil),
			)
		}

		records = append(records, Record{
			QuerySize:       p.QuerySize,
			Operation:       p.Operation,
			Structure:       p.Structure,
			ExecutionTimeMs: m.ExecutionTimeMs,
			MemoryUsedMb:    m.MemoryUsedMb,
			CPUUsagePercent: (cpuBefore + cpuAfter) / 2,
		})
	}

	return records, nil
}

func (d *Driver) sample(ctx context.Context) float64 {
	v, err := d.Sampler.Sample(ctx)
	if err != nil {
		d.Logger.WarnContext(ctx, "cpu sample failed",
			slog.String("error", err.Error()),
		)

		return 0
	}

	return v
}
