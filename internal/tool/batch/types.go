package batch

import (
	"fmt"
	"strings"
)

// Request holds the parameters for one batch edit. The zero value of DryRun
// applies changes; callers opt in to the preview. Replacement defaults to
// case-sensitive matching, unlike search: a destructive operation gets the
// narrower default.
type Request struct {
	OldText       string `json:"old_text"`
	NewText       string `json:"new_text"`
	Path          string `json:"path"`
	FilePattern   string `json:"file_pattern"`
	CaseSensitive bool   `json:"case_sensitive"`
	DryRun        bool   `json:"dry_run"`
}

// SetDefaults applies the defaults that differ from the zero value.
func (r *Request) SetDefaults() {
	r.CaseSensitive = true
}

func (r *Request) Validate() error {
	if r.OldText == "" {
		return ErrOldTextRequired
	}
	return nil
}

// FileChange is one candidate file and how many occurrences it holds.
type FileChange struct {
	Path  string
	Count int
}

// Response summarizes a batch edit. For a dry run, Files holds what would
// change; otherwise it holds what did change.
type Response struct {
	OldText           string
	DryRun            bool
	Files             []FileChange
	TotalReplacements int
}

// Format renders the per-mode report. A dry run itemizes occurrence counts
// so the caller can judge blast radius before applying.
func (r *Response) Format() string {
	if len(r.Files) == 0 {
		return fmt.Sprintf("No files found containing '%s'", r.OldText)
	}

	var sb strings.Builder
	if r.DryRun {
		fmt.Fprintf(&sb, "DRY RUN - Would modify %d files with %d total replacements:\n",
			len(r.Files), r.TotalReplacements)
		for _, f := range r.Files {
			fmt.Fprintf(&sb, "\n  %s: %d replacement(s)", f.Path, f.Count)
		}
		sb.WriteString("\n\nRun without dry_run=true to apply these changes.")
	} else {
		fmt.Fprintf(&sb, "Successfully modified %d files with %d total replacements:\n",
			len(r.Files), r.TotalReplacements)
		for _, f := range r.Files {
			fmt.Fprintf(&sb, "\n  %s", f.Path)
		}
		sb.WriteString("\n\nNote: You can undo these changes using the undo command (reverts one file at a time).")
	}
	return sb.String()
}
