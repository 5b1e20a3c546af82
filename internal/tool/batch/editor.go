// Package batch applies one text replacement across every matching file
// under a directory tree. It shares the search package's traversal rules and
// snapshots each file before touching it, so a batch of N files leaves N
// ledger entries that undo one at a time, newest first.
package batch

import (
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jmallia/scribe/internal/config"
	"github.com/jmallia/scribe/internal/tool/backup"
	"github.com/jmallia/scribe/internal/tool/fsutil"
	"github.com/jmallia/scribe/internal/tool/history"
	"github.com/jmallia/scribe/internal/tool/search"
)

// Editor performs multi-file replacements.
type Editor struct {
	walker  *search.Walker
	backups *backup.Store
	ledger  *history.Ledger
	config  *config.Config
}

// NewEditor creates an Editor with injected dependencies.
func NewEditor(walker *search.Walker, backups *backup.Store, ledger *history.Ledger, cfg *config.Config) *Editor {
	if walker == nil {
		panic("walker is required")
	}
	if backups == nil {
		panic("backup store is required")
	}
	if ledger == nil {
		panic("history ledger is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &Editor{walker: walker, backups: backups, ledger: ledger, config: cfg}
}

// Edit replaces every occurrence of OldText with NewText in each candidate
// file. Matching defaults to case sensitive; a case-insensitive run still
// replaces every variant spelling. With DryRun set, no file is read back,
// backed up, or written, and the response reports what would change.
//
// Each modified file is snapshotted before its write and pushed as its own
// ledger entry, so failing partway leaves earlier files modified and
// individually undoable.
func (e *Editor) Edit(req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	root := req.Path
	if root == "" {
		root = "."
	}

	count := func(content string) int {
		return strings.Count(content, req.OldText)
	}
	replace := func(content string) string {
		return strings.ReplaceAll(content, req.OldText, req.NewText)
	}
	if !req.CaseSensitive {
		lowered := strings.ToLower(req.OldText)
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(req.OldText))
		count = func(content string) int {
			return strings.Count(strings.ToLower(content), lowered)
		}
		replace = func(content string) string {
			return re.ReplaceAllLiteralString(content, req.NewText)
		}
	}

	resp := &Response{OldText: req.OldText, DryRun: req.DryRun}

	err := e.walker.Walk(root, req.FilePattern, func(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil // permission denied etc: skip silently
		}
		if fsutil.IsBinaryContent(data, e.config.Tools.BinaryDetectionSampleSize) || !utf8.Valid(data) {
			return nil
		}

		content := string(data)
		n := count(content)
		if n == 0 {
			return nil
		}

		if !req.DryRun {
			backupPath, err := e.backups.Create(path)
			if err != nil {
				return &WriteError{Path: path, Cause: err}
			}
			perm := os.FileMode(0o644)
			if info, err := os.Stat(path); err == nil {
				perm = info.Mode().Perm()
			}
			if err := fsutil.WriteFileAtomic(path, []byte(replace(content)), perm); err != nil {
				return &WriteError{Path: path, Cause: err}
			}
			e.ledger.Push(history.Entry{
				Path:       path,
				BackupPath: backupPath,
				Action:     history.ActionEdited,
				Batch:      true,
			})
		}

		resp.Files = append(resp.Files, FileChange{Path: path, Count: n})
		resp.TotalReplacements += n
		return nil
	})
	if err != nil {
		if _, ok := err.(*search.NotFoundError); ok {
			return nil, &NotFoundError{Path: root}
		}
		return nil, err
	}

	return resp, nil
}
