// Package file implements single-file inspection and mutation: read, list,
// and the two-branch edit (replace existing text, or create the file).
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jmallia/scribe/internal/config"
	"github.com/jmallia/scribe/internal/tool/backup"
	"github.com/jmallia/scribe/internal/tool/fsutil"
	"github.com/jmallia/scribe/internal/tool/history"
)

// Editor handles single-file operations, snapshotting targets through the
// backup store and recording mutations on the shared ledger.
type Editor struct {
	backups *backup.Store
	ledger  *history.Ledger
	config  *config.Config
}

// NewEditor creates an Editor with injected dependencies.
func NewEditor(backups *backup.Store, ledger *history.Ledger, cfg *config.Config) *Editor {
	if backups == nil {
		panic("backups is required")
	}
	if ledger == nil {
		panic("ledger is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &Editor{backups: backups, ledger: ledger, config: cfg}
}

// Read returns the file's contents verbatim. Binary or non-UTF-8 content is
// a DecodeError rather than garbage handed to the model.
func (e *Editor) Read(req *ReadRequest) (*ReadResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: req.Path}
		}
		return nil, err
	}
	if info.Size() > e.config.Tools.MaxFileSize {
		return nil, fmt.Errorf("%w: %s (size %d, limit %d)", ErrFileTooLarge, req.Path, info.Size(), e.config.Tools.MaxFileSize)
	}

	data, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, err
	}
	if fsutil.IsBinaryContent(data, e.config.Tools.BinaryDetectionSampleSize) || !utf8.Valid(data) {
		return nil, &DecodeError{Path: req.Path}
	}

	return &ReadResponse{Path: req.Path, Content: string(data)}, nil
}

// List returns every immediate child of the directory, sorted
// lexicographically.
func (e *Editor) List(req *ListRequest) (*ListResponse, error) {
	path := req.Path
	if path == "" {
		path = "."
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}

	out := make([]DirEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, DirEntry{Name: entry.Name(), IsDir: entry.IsDir()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return &ListResponse{Path: path, Entries: out}, nil
}

// Edit mutates a file in one of two mutually exclusive ways:
//
//   - Replace branch (file exists AND old_text non-empty): snapshot, verify
//     old_text is a literal substring, replace every occurrence, overwrite
//     the file, record an Edited entry.
//   - Create branch (otherwise): create missing parent directories and write
//     new_text as the whole file, recording a Created entry. A file that
//     existed but was matched with empty old_text is overwritten here too;
//     its backup is still taken first, but the entry stays Created, so undo
//     deletes the file instead of restoring the prior bytes.
func (e *Editor) Edit(req *EditRequest) (*EditResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Snapshot before any byte of the target is overwritten. Returns an
	// empty path when the file does not exist yet.
	backupPath, err := e.backups.Create(req.Path)
	if err != nil {
		return nil, err
	}

	_, statErr := os.Stat(req.Path)
	fileExists := statErr == nil

	if fileExists && req.OldText != "" {
		return e.replace(req, backupPath)
	}
	return e.create(req, backupPath)
}

func (e *Editor) replace(req *EditRequest, backupPath string) (*EditResponse, error) {
	data, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, err
	}
	content := string(data)

	if !strings.Contains(content, req.OldText) {
		// The backup taken above stays on disk; an aborted edit never
		// mutates the file, so there is nothing to revert.
		return nil, &TextNotFoundError{Text: req.OldText}
	}

	content = strings.ReplaceAll(content, req.OldText, req.NewText)

	perm := os.FileMode(0o644)
	if info, err := os.Stat(req.Path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := fsutil.WriteFileAtomic(req.Path, []byte(content), perm); err != nil {
		return nil, err
	}

	e.ledger.Push(history.Entry{
		Path:       req.Path,
		BackupPath: backupPath,
		Action:     history.ActionEdited,
	})

	return &EditResponse{Path: req.Path, BackupPath: backupPath}, nil
}

func (e *Editor) create(req *EditRequest, backupPath string) (*EditResponse, error) {
	if dir := filepath.Dir(req.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create parent directories for %s: %w", req.Path, err)
		}
	}

	if err := os.WriteFile(req.Path, []byte(req.NewText), 0o644); err != nil {
		return nil, err
	}

	e.ledger.Push(history.Entry{
		Path:       req.Path,
		BackupPath: backupPath,
		Action:     history.ActionCreated,
	})

	return &EditResponse{Path: req.Path, Created: true, BackupPath: backupPath}, nil
}
