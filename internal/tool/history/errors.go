package history

import (
	"errors"
	"fmt"
)

// ErrEmptyHistory is returned when there is nothing left to undo.
var ErrEmptyHistory = errors.New("no edits to undo")

// BackupMissingError is returned when an edited entry's backup file is gone.
type BackupMissingError struct {
	Path       string
	BackupPath string
}

func (e *BackupMissingError) Error() string {
	return fmt.Sprintf("backup not found for %s", e.Path)
}
