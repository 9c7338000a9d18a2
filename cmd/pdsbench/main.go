// Package main provides the CLI entry point for pdsbench, a sweep
// driver that benchmarks probabilistic data structure workers.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/balajisukumaran/probabilistic-data-structures/metrics"
	"github.com/balajisukumaran/probabilistic-data-structures/report"
	"github.com/balajisukumaran/probabilistic-data-structures/sweep"
	"github.com/balajisukumaran/probabilistic-data-structures/worker"
	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "pdsbench",
		Short: "Benchmark sweep driver for probabilistic data structures",
		Long: `Pdsbench sweeps query sizes and operations across a concurrent skip
list, a Bloom filter, and a cuckoo filter by rewriting the worker's
properties file, running the worker once per combination, and
aggregating timing, memory, and CPU figures into a JSON report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		configPath   string
		outputPath   string
		jarPath      string
		javaBinary   string
		workerBinary string
		cpuInterval  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full benchmark sweep",
		Long: `Enumerate every (querySize, structure, operation) combination, run
the worker once per combination, and write the aggregated report.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd.Context(), logger, runConfig{
				configPath:   configPath,
				outputPath:   outputPath,
				jarPath:      jarPath,
				javaBinary:   javaBinary,
				workerBinary: workerBinary,
				cpuInterval:  cpuInterval,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "config.properties",
		"Path to the worker properties file")
	flags.StringVar(&outputPath, "output", "output.json",
		"Path to the JSON report artifact")
	flags.StringVar(&jarPath, "jar",
		"ProbalisticDataStructures-1.0-SNAPSHOT.jar",
		"Path to the worker jar")
	flags.StringVar(&javaBinary, "java", "java",
		"Java binary used to run the worker jar")
	flags.StringVar(&workerBinary, "worker", "",
		"Native worker binary (overrides the jar invocation)")
	flags.DurationVar(&cpuInterval, "cpu-interval",
		metrics.DefaultSampleInterval,
		"Window for each CPU utilization sample")

	return cmd
}

type runConfig struct {
	configPath   string
	outputPath   string
	jarPath      string
	javaBinary   string
	workerBinary string
	cpuInterval  time.Duration
}

func runSweep(
	ctx context.Context,
	logger *slog.Logger,
	cfg runConfig,
) error {
	logger.InfoContext(ctx, "starting sweep",
		slog.String("config", cfg.configPath),
		slog.String("output", cfg.outputPath),
	)

	workerCmd := worker.JavaCommand(cfg.javaBinary, cfg.jarPath, cfg.configPath)
	if cfg.workerBinary != "" {
		workerCmd = worker.ExecCommand(cfg.workerBinary, cfg.configPath)
	}

	driver := &sweep.Driver{
		ConfigPath: cfg.configPath,
		Worker:     worker.NewRunner(workerCmd, logger),
		Parser:     metrics.TextParser{},
		Sampler:    metrics.HostSampler{Interval: cfg.cpuInterval},
		Logger:     logger,
	}

	records, err := driver.Run(ctx)
	if err != nil {
		return fmt.Errorf("run sweep: %w", err)
	}

	if err := report.WriteFile(cfg.outputPath, records); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if err := report.Generate(os.Stdout, records); err != nil {
		return fmt.Errorf("generate summary: %w", err)
	}

	logger.InfoContext(ctx, "sweep complete",
		slog.Int("records", len(records)),
		slog.String("report", cfg.outputPath),
	)

	return nil
}
