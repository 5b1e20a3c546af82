package history

import (
	"fmt"
	"os"

	"github.com/jmallia/scribe/internal/tool/fsutil"
)

// Undoer reverses the most recent mutating operation recorded in a Ledger.
type Undoer struct {
	ledger *Ledger
}

func NewUndoer(ledger *Ledger) *Undoer {
	return &Undoer{ledger: ledger}
}

// UndoLast pops the top entry and reverses it:
//
//   - Created entries delete the target file. A target already removed
//     externally still counts as success, so undo stays idempotent toward
//     outside deletion.
//   - Edited entries restore the target from its backup. The backup file is
//     kept on disk afterwards.
//
// Returns ErrEmptyHistory when nothing is recorded, and ErrBackupMissing
// when an edited entry's backup no longer exists.
func (u *Undoer) UndoLast() (string, error) {
	entry, ok := u.ledger.Pop()
	if !ok {
		return "", ErrEmptyHistory
	}

	switch entry.Action {
	case ActionCreated:
		if _, err := os.Stat(entry.Path); err == nil {
			if err := os.Remove(entry.Path); err != nil {
				return "", fmt.Errorf("failed to remove %s: %w", entry.Path, err)
			}
		}
		return fmt.Sprintf("Undone: Removed newly created file %s", entry.Path), nil

	case ActionEdited:
		if entry.BackupPath == "" {
			return "", &BackupMissingError{Path: entry.Path}
		}
		if _, err := os.Stat(entry.BackupPath); err != nil {
			return "", &BackupMissingError{Path: entry.Path, BackupPath: entry.BackupPath}
		}
		if err := fsutil.CopyFile(entry.BackupPath, entry.Path); err != nil {
			return "", fmt.Errorf("failed to restore %s: %w", entry.Path, err)
		}
		return fmt.Sprintf("Undone: Restored %s from backup", entry.Path), nil

	default:
		return "", fmt.Errorf("unknown history action %q for %s", entry.Action, entry.Path)
	}
}
