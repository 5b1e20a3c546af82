package batch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmallia/scribe/internal/config"
	"github.com/jmallia/scribe/internal/tool/backup"
	"github.com/jmallia/scribe/internal/tool/history"
	"github.com/jmallia/scribe/internal/tool/search"
)

type fixture struct {
	editor *Editor
	ledger *history.Ledger
	dir    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	ledger := history.NewLedger()
	editor := NewEditor(
		search.NewWalker(".scribe_backups", nil),
		backup.NewStore(filepath.Join(dir, ".scribe_backups")),
		ledger,
		config.DefaultConfig(),
	)
	return &fixture{editor: editor, ledger: ledger, dir: dir}
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestEdit_EmptyOldText(t *testing.T) {
	f := newFixture(t)
	_, err := f.editor.Edit(&Request{NewText: "x", Path: f.dir})
	if !errors.Is(err, ErrOldTextRequired) {
		t.Fatalf("err = %v, want ErrOldTextRequired", err)
	}
}

func TestEdit_MissingRoot(t *testing.T) {
	f := newFixture(t)
	_, err := f.editor.Edit(&Request{OldText: "x", NewText: "y", Path: filepath.Join(f.dir, "absent")})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestEdit_DryRunMutatesNothing(t *testing.T) {
	f := newFixture(t)
	a := f.write(t, "a.txt", "old old\n")
	b := f.write(t, "b.txt", "old\n")
	f.write(t, "c.txt", "other\n")

	resp, err := f.editor.Edit(&Request{
		OldText: "old", NewText: "new", Path: f.dir,
		CaseSensitive: true, DryRun: true,
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	if resp.TotalReplacements != 3 {
		t.Errorf("TotalReplacements = %d, want 3", resp.TotalReplacements)
	}
	if len(resp.Files) != 2 {
		t.Errorf("Files = %d, want 2", len(resp.Files))
	}
	if f.read(t, a) != "old old\n" || f.read(t, b) != "old\n" {
		t.Error("dry run modified file contents")
	}
	if f.ledger.Len() != 0 {
		t.Errorf("ledger has %d entries after dry run, want 0", f.ledger.Len())
	}
	if _, err := os.Stat(filepath.Join(f.dir, ".scribe_backups")); !os.IsNotExist(err) {
		t.Error("dry run created backups")
	}

	out := resp.Format()
	if !strings.Contains(out, "DRY RUN - Would modify 2 files with 3 total replacements:") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "replacement(s)") {
		t.Errorf("per-file counts missing:\n%s", out)
	}
	if !strings.Contains(out, "Run without dry_run=true to apply these changes.") {
		t.Errorf("apply hint missing:\n%s", out)
	}
}

func TestEdit_AppliesAndRecordsHistory(t *testing.T) {
	f := newFixture(t)
	a := f.write(t, "a.go", "count := old + old\n")
	b := f.write(t, "sub/b.go", "old\n")

	resp, err := f.editor.Edit(&Request{
		OldText: "old", NewText: "new", Path: f.dir, CaseSensitive: true,
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	if f.read(t, a) != "count := new + new\n" {
		t.Errorf("a.go = %q", f.read(t, a))
	}
	if f.read(t, b) != "new\n" {
		t.Errorf("b.go = %q", f.read(t, b))
	}
	if resp.TotalReplacements != 3 {
		t.Errorf("TotalReplacements = %d, want 3", resp.TotalReplacements)
	}

	if f.ledger.Len() != 2 {
		t.Fatalf("ledger has %d entries, want 2", f.ledger.Len())
	}
	entry, _ := f.ledger.Pop()
	if !entry.Batch || entry.Action != history.ActionEdited {
		t.Errorf("entry = %+v, want batch edit", entry)
	}
	if entry.BackupPath == "" {
		t.Error("entry has no backup path")
	}
	if _, err := os.Stat(entry.BackupPath); err != nil {
		t.Errorf("backup missing: %v", err)
	}

	out := resp.Format()
	if !strings.Contains(out, "Successfully modified 2 files with 3 total replacements:") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "undo") {
		t.Errorf("undo note missing:\n%s", out)
	}
}

func TestEdit_CaseInsensitiveReplacesAllVariants(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "v.txt", "Color color COLOR\n")

	resp, err := f.editor.Edit(&Request{
		OldText: "color", NewText: "colour", Path: f.dir,
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if resp.TotalReplacements != 3 {
		t.Errorf("TotalReplacements = %d, want 3", resp.TotalReplacements)
	}
	if got := f.read(t, path); got != "colour colour colour\n" {
		t.Errorf("content = %q", got)
	}
}

func TestEdit_CaseSensitiveSkipsOtherCasings(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "v.txt", "Color color\n")

	resp, err := f.editor.Edit(&Request{
		OldText: "color", NewText: "colour", Path: f.dir, CaseSensitive: true,
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if resp.TotalReplacements != 1 {
		t.Errorf("TotalReplacements = %d, want 1", resp.TotalReplacements)
	}
	if got := f.read(t, path); got != "Color colour\n" {
		t.Errorf("content = %q", got)
	}
}

func TestEdit_FilePatternFilter(t *testing.T) {
	f := newFixture(t)
	goFile := f.write(t, "m.go", "old\n")
	txtFile := f.write(t, "m.txt", "old\n")

	_, err := f.editor.Edit(&Request{
		OldText: "old", NewText: "new", Path: f.dir,
		FilePattern: "*.go", CaseSensitive: true,
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if f.read(t, goFile) != "new\n" {
		t.Error("*.go file not modified")
	}
	if f.read(t, txtFile) != "old\n" {
		t.Error("filtered-out file was modified")
	}
}

func TestEdit_NoCandidates(t *testing.T) {
	f := newFixture(t)
	f.write(t, "a.txt", "nothing here\n")

	resp, err := f.editor.Edit(&Request{OldText: "absent", NewText: "x", Path: f.dir})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if got := resp.Format(); got != "No files found containing 'absent'" {
		t.Errorf("format = %q", got)
	}
}

func TestEdit_SkipsBinaryAndHidden(t *testing.T) {
	f := newFixture(t)
	if err := os.WriteFile(filepath.Join(f.dir, "blob.bin"), []byte{0x00, 'o', 'l', 'd'}, 0o644); err != nil {
		t.Fatal(err)
	}
	f.write(t, ".hidden", "old\n")
	visible := f.write(t, "v.txt", "old\n")

	resp, err := f.editor.Edit(&Request{OldText: "old", NewText: "new", Path: f.dir, CaseSensitive: true})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if len(resp.Files) != 1 {
		t.Fatalf("Files = %d, want 1", len(resp.Files))
	}
	if resp.Files[0].Path != visible {
		t.Errorf("modified %s, want %s", resp.Files[0].Path, visible)
	}
}

func TestEdit_UndoRevertsOneFileAtATime(t *testing.T) {
	f := newFixture(t)
	f.write(t, "a.txt", "old a\n")
	f.write(t, "b.txt", "old b\n")

	if _, err := f.editor.Edit(&Request{OldText: "old", NewText: "new", Path: f.dir, CaseSensitive: true}); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	undoer := history.NewUndoer(f.ledger)
	if _, err := undoer.UndoLast(); err != nil {
		t.Fatalf("first undo: %v", err)
	}
	if _, err := undoer.UndoLast(); err != nil {
		t.Fatalf("second undo: %v", err)
	}

	if got := f.read(t, filepath.Join(f.dir, "a.txt")); got != "old a\n" {
		t.Errorf("a.txt = %q after undos", got)
	}
	if got := f.read(t, filepath.Join(f.dir, "b.txt")); got != "old b\n" {
		t.Errorf("b.txt = %q after undos", got)
	}
	if _, err := undoer.UndoLast(); !errors.Is(err, history.ErrEmptyHistory) {
		t.Errorf("third undo err = %v, want ErrEmptyHistory", err)
	}
}
