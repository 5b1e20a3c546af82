package gitutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewIgnoreMatcher_NoGitignore(t *testing.T) {
	m, err := NewIgnoreMatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewIgnoreMatcher: %v", err)
	}
	if m.ShouldIgnore("anything.txt", false) {
		t.Error("matcher without .gitignore ignored a path")
	}
}

func TestShouldIgnore(t *testing.T) {
	dir := t.TempDir()
	gitignore := "# dependencies\nnode_modules/\n*.log\n  # build output\nbuild\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := NewIgnoreMatcher(dir)
	if err != nil {
		t.Fatalf("NewIgnoreMatcher: %v", err)
	}

	cases := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"node_modules", true, true},
		{"node_modules/pkg/index.js", false, true},
		{"debug.log", false, true},
		{"src/deep/trace.log", false, true},
		{"build", true, true},
		{"src/main.go", false, false},
		{"logfile.txt", false, false},
		// comment lines must not turn into literal patterns
		{"# dependencies", false, false},
		{"dependencies", true, false},
	}
	for _, tc := range cases {
		if got := m.ShouldIgnore(tc.path, tc.isDir); got != tc.want {
			t.Errorf("ShouldIgnore(%q, %v) = %v, want %v", tc.path, tc.isDir, got, tc.want)
		}
	}
}
