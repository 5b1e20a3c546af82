package search

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// IgnoreMatcher reports whether a root-relative path is excluded from
// traversal (gitignore semantics).
type IgnoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// Walker performs the directory traversal shared by search and batch edit:
// recursive descent pruning the backup directory, hidden names, and
// gitignored paths, with an optional shell-style glob on file basenames.
type Walker struct {
	backupDirName string
	ignore        IgnoreMatcher
}

// NewWalker creates a Walker. backupDirName is the bare name of the backup
// directory to prune wherever it appears.
func NewWalker(backupDirName string, ignore IgnoreMatcher) *Walker {
	return &Walker{backupDirName: backupDirName, ignore: ignore}
}

// Walk calls fn for every candidate regular file under root. It fails with
// NotFoundError when root is absent. A malformed fileGlob simply matches
// nothing, mirroring shell behavior.
func (w *Walker) Walk(root, fileGlob string, fn func(path string) error) error {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: root}
		}
		return err
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		name := d.Name()
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if name == w.backupDirName || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if w.ignore != nil && w.ignore.ShouldIgnore(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if w.ignore != nil && w.ignore.ShouldIgnore(rel, false) {
			return nil
		}
		if fileGlob != "" {
			matched, matchErr := filepath.Match(fileGlob, name)
			if matchErr != nil || !matched {
				return nil
			}
		}

		return fn(path)
	})
}
