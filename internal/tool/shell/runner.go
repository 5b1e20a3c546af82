// Package shell executes commands for the agent. Every command passes a
// denylist safety gate before any process is spawned; execution goes through
// "sh -c" with capped output capture and an interrupt-then-kill timeout.
package shell

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jmallia/scribe/internal/config"
)

// Runner is the command tool: gate, then execute.
type Runner struct {
	gate     *SafetyGate
	executor processExecutor
	config   *config.Config
}

// NewRunner creates a Runner with injected dependencies.
func NewRunner(gate *SafetyGate, executor processExecutor, cfg *config.Config) *Runner {
	if gate == nil {
		panic("safety gate is required")
	}
	if executor == nil {
		panic("executor is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &Runner{gate: gate, executor: executor, config: cfg}
}

// Run executes one command. The working directory must already exist and the
// command must clear the safety gate; a blocked command never reaches the
// executor. A timeout surfaces as TimeoutError with the bound that was
// exceeded, never as a partial-output response.
func (r *Runner) Run(ctx context.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dir := req.WorkingDir
	if dir == "" {
		dir = "."
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, &DirNotFoundError{Dir: dir}
	}

	if !r.gate.IsSafe(req.Command) {
		return nil, &BlockedError{Command: req.Command}
	}

	seconds := req.TimeoutSeconds
	if seconds <= 0 {
		seconds = r.config.Tools.DefaultCommandTimeout
	}

	resp, err := r.executor.RunWithTimeout(ctx, req.Command, dir, time.Duration(seconds)*time.Second)
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			return nil, &TimeoutError{Command: req.Command, Seconds: seconds}
		}
		return nil, err
	}
	return resp, nil
}
