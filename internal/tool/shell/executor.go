package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/jmallia/scribe/internal/config"
)

// processExecutor spawns a command line through a shell and collects its
// output. It exists as an interface so the runner can be tested without
// creating processes.
type processExecutor interface {
	RunWithTimeout(ctx context.Context, command, dir string, timeout time.Duration) (*Response, error)
}

// OSExecutor runs commands via "sh -c" with bounded, binary-screened output
// capture and a graceful interrupt-then-kill timeout.
type OSExecutor struct {
	config *config.Config
}

// NewOSExecutor creates an OSExecutor with injected config.
func NewOSExecutor(cfg *config.Config) *OSExecutor {
	if cfg == nil {
		panic("config is required")
	}
	return &OSExecutor{config: cfg}
}

// RunWithTimeout executes command and waits up to timeout. On expiry the
// process gets an interrupt, then a kill after the configured grace period.
// The returned error is ErrTimeout on expiry and nil otherwise; a non-zero
// exit is not an error, it is reported through the response.
func (e *OSExecutor) RunWithTimeout(ctx context.Context, command, dir string, timeout time.Duration) (*Response, error) {
	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir
	cmd.Stdin = nil
	// Own process group so a timeout reaps the whole shell pipeline, not
	// just the sh parent.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &StartError{Command: command, Cause: err}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, &StartError{Command: command, Cause: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &StartError{Command: command, Cause: err}
	}

	// Drain both pipes to EOF before calling Wait: Wait closes the pipes,
	// so calling it while the collector is still reading loses output. The
	// whole sequence runs in one goroutine so the timeout select below stays
	// responsive; on expiry the process-group kill forces EOF and unblocks
	// the drain.
	var stdout, stderr string
	var truncated bool
	done := make(chan error, 1)
	go func() {
		stdout, stderr, truncated = e.collect(stdoutPipe, stderrPipe)
		done <- cmd.Wait()
	}()

	var execErr error
	select {
	case err := <-done:
		execErr = err
	case <-ctx.Done():
		killGroup(cmd, syscall.SIGKILL)
		<-done
		execErr = ctx.Err()
	case <-time.After(timeout):
		killGroup(cmd, syscall.SIGINT)
		select {
		case <-done:
		case <-time.After(time.Duration(e.config.Tools.GracefulShutdownMs) * time.Millisecond):
			killGroup(cmd, syscall.SIGKILL)
			<-done
		}
		execErr = ErrTimeout
	}

	if execErr != nil {
		if errors.Is(execErr, ErrTimeout) || ctx.Err() != nil {
			return nil, execErr
		}
	}

	resp := &Response{
		Stdout:    stdout,
		Stderr:    stderr,
		ExitCode:  exitCode(execErr),
		Truncated: truncated,
	}
	return resp, nil
}

func (e *OSExecutor) collect(stdoutPipe, stderrPipe io.Reader) (string, string, bool) {
	maxBytes := e.config.Tools.MaxCommandOutputSize
	sample := e.config.Tools.BinaryDetectionSampleSize

	stdout := newCollector(maxBytes, sample)
	stderr := newCollector(maxBytes, sample)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = io.Copy(stdout, stdoutPipe)
	}()
	go func() {
		defer wg.Done()
		_, _ = io.Copy(stderr, stderrPipe)
	}()
	wg.Wait()

	return stdout.String(), stderr.String(), stdout.Truncated() || stderr.Truncated()
}

// killGroup signals the command's process group, falling back to the single
// process when the group id is unavailable.
func killGroup(cmd *exec.Cmd, sig syscall.Signal) {
	if pgid, err := syscall.Getpgid(cmd.Process.Pid); err == nil {
		_ = syscall.Kill(-pgid, sig)
		return
	}
	_ = cmd.Process.Kill()
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
