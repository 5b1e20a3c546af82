// Package backup stores timestamped snapshots of files about to be mutated.
// Snapshots are the raw material for undo: an editor takes one before the
// first byte of a target file is overwritten.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jmallia/scribe/internal/tool/fsutil"
)

// Store copies pre-mutation file contents into a dedicated backup directory.
// Backups are named <basename>_<YYYYMMDD_HHMMSS>.backup and never pruned.
type Store struct {
	dir string

	mu   sync.Mutex
	last string // previous backup name, for collision suffixing
	seq  int
}

// NewStore creates a Store rooted at dir. The directory itself is created
// lazily on the first snapshot.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the backup directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Create snapshots the current bytes of path (preserving permission bits and
// modification time) and returns the backup's path. If path does not exist,
// no I/O happens and the returned path is empty.
//
// Two snapshots of the same file within one second get distinct names via a
// numeric suffix, so a rapid batch edit never silently overwrites an earlier
// backup.
func (s *Store) Create(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory %s: %w", s.dir, err)
	}

	name := fmt.Sprintf("%s_%s.backup", filepath.Base(path), time.Now().Format("20060102_150405"))
	backupPath := filepath.Join(s.dir, s.dedupe(name))

	if err := fsutil.CopyFile(path, backupPath); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", path, err)
	}
	return backupPath, nil
}

// dedupe appends a counter suffix when name collides with the previous
// backup name (same file, same second).
func (s *Store) dedupe(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name != s.last {
		s.last = name
		s.seq = 0
		return name
	}
	s.seq++
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s.%d%s", name[:len(name)-len(ext)], s.seq, ext)
}
