// Package worker launches the external benchmark worker and captures
// its output.
package worker

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// Command describes how to invoke the worker for one run. Env is
// appended to the inherited environment.
type Command struct {
	Binary string
	Args   []string
	Env    []string
}

// JavaCommand builds the invocation for the jar worker:
// java -jar -Dproperties.path=<configPath> <jarPath>.
func JavaCommand(java, jarPath, configPath string) Command {
	return Command{
		Binary: java,
		Args:   []string{"-jar", "-Dproperties.path=" + configPath, jarPath},
	}
}

// ExecCommand builds the invocation for a native worker binary that
// takes the properties file via --config.
func ExecCommand(binary, configPath string) Command {
	return Command{
		Binary: binary,
		Args:   []string{"--config", configPath},
	}
}

// Output holds everything a worker run wrote.
type Output struct {
	Stdout string
	Stderr string
}

// Runner launches the worker process once per Run call.
type Runner struct {
	Command Command
	Logger  *slog.Logger
}

// NewRunner creates a Runner for the given command.
func NewRunner(cmd Command, logger *slog.Logger) *Runner {
	return &Runner{
		Command: cmd,
		Logger:  logger.With(slog.String("worker", cmd.Binary)),
	}
}

// Run spawns the worker with no stdin, blocks until it exits, and
// returns whatever it wrote on both streams. The exit code is
// deliberately not inspected: a crashed or failing worker just yields
// output the parser may not match.
func (r *Runner) Run(ctx context.Context) Output {
	cmd := exec.CommandContext(ctx, r.Command.Binary, r.Command.Args...)

	if len(r.Command.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Command.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	wallStart := time.Now()
	err := cmd.Run()
	wallElapsed := time.Since(wallStart)

	if err != nil {
		r.Logger.Warn("worker exited with error",
			slog.String("error", err.Error()),
			slog.String("stderr", stderr.String()),
		)
	}

	r.Logger.Info("worker finished",
		slog.Duration("wall_time", wallElapsed),
	)

	return Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
}
