package batch

import (
	"errors"
	"fmt"
)

// ErrOldTextRequired is returned when the text to replace is empty.
var ErrOldTextRequired = errors.New("old_text is required")

// NotFoundError indicates the requested root path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// WriteError wraps a failure to persist a replacement to one file. Files
// already modified by the same batch stay modified and stay undoable.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
