package shell

import (
	"errors"
	"fmt"
)

// ErrCommandRequired is returned when the command string is empty.
var ErrCommandRequired = errors.New("command is required")

// ErrTimeout marks an execution that exceeded its time bound. Callers see it
// wrapped in a TimeoutError carrying the command and the bound.
var ErrTimeout = errors.New("command timeout")

// BlockedError is the safety veto: the command matched a denylist pattern
// and no process was started.
type BlockedError struct {
	Command string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("Command blocked for safety reasons: %s", e.Command)
}

// DirNotFoundError indicates the requested working directory is absent.
type DirNotFoundError struct {
	Dir string
}

func (e *DirNotFoundError) Error() string {
	return fmt.Sprintf("Working directory not found: %s", e.Dir)
}

// TimeoutError reports the time bound the command exceeded. Partial output
// is discarded; the bound is the only signal.
type TimeoutError struct {
	Command string
	Seconds int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Command timed out after %d seconds: %s", e.Seconds, e.Command)
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}

// StartError wraps a failure to spawn the process at all.
type StartError struct {
	Command string
	Cause   error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start command %q: %v", e.Command, e.Cause)
}

func (e *StartError) Unwrap() error {
	return e.Cause
}
