package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nSCRIBE_TEST_A=hello\nexport SCRIBE_TEST_B=\"quoted\"\nBADLINE\nSCRIBE_TEST_C='single'\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCRIBE_TEST_A", "preset")

	res := LoadPath(path)
	if res.Err != nil {
		t.Fatalf("LoadPath error: %v", res.Err)
	}
	if !res.Loaded {
		t.Fatal("expected Loaded")
	}
	// Existing env vars win.
	if got := os.Getenv("SCRIBE_TEST_A"); got != "preset" {
		t.Errorf("SCRIBE_TEST_A = %q, want preset", got)
	}
	if got := os.Getenv("SCRIBE_TEST_B"); got != "quoted" {
		t.Errorf("SCRIBE_TEST_B = %q, want quoted", got)
	}
	if got := os.Getenv("SCRIBE_TEST_C"); got != "single" {
		t.Errorf("SCRIBE_TEST_C = %q, want single", got)
	}
	if res.Keys != 2 {
		t.Errorf("Keys = %d, want 2", res.Keys)
	}
	t.Cleanup(func() {
		os.Unsetenv("SCRIBE_TEST_B")
		os.Unsetenv("SCRIBE_TEST_C")
	})
}

func TestLoadPath_Missing(t *testing.T) {
	res := LoadPath(filepath.Join(t.TempDir(), "absent.env"))
	if res.Loaded {
		t.Fatal("expected not loaded")
	}
	if res.Err == nil {
		t.Fatal("expected error for missing file")
	}
}
