package search

import (
	"fmt"
	"strings"
)

// Request holds the parameters for one search operation.
type Request struct {
	Pattern       string `json:"pattern"`
	Path          string `json:"path"`
	FilePattern   string `json:"file_pattern"`
	CaseSensitive bool   `json:"case_sensitive"`
	UseRegex      bool   `json:"use_regex"`
}

func (r *Request) Validate() error {
	if r.Pattern == "" {
		return ErrPatternRequired
	}
	return nil
}

// LineMatch is one matching line within a file.
type LineMatch struct {
	Number int
	Text   string
}

// FileMatches groups the matching lines of a single file.
type FileMatches struct {
	Path  string
	Lines []LineMatch
}

// Response carries exact aggregate totals even when the per-file display is
// truncated to DisplayLimit lines.
type Response struct {
	Pattern       string
	Files         []FileMatches
	TotalMatches  int
	FilesSearched int
	DisplayLimit  int
}

// FilesMatched returns how many files contained at least one match.
func (r *Response) FilesMatched() int {
	return len(r.Files)
}

// Format renders the report: per-file matches capped at DisplayLimit lines
// with a "more" notice, totals always exact.
func (r *Response) Format() string {
	if len(r.Files) == 0 {
		return fmt.Sprintf("No matches found for '%s' in %d files", r.Pattern, r.FilesSearched)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d matches in %d files (searched %d files):\n",
		r.TotalMatches, len(r.Files), r.FilesSearched)

	for _, file := range r.Files {
		fmt.Fprintf(&sb, "\n%s:\n", file.Path)
		shown := file.Lines
		if len(shown) > r.DisplayLimit {
			shown = shown[:r.DisplayLimit]
		}
		for _, line := range shown {
			fmt.Fprintf(&sb, "  Line %d: %s\n", line.Number, line.Text)
		}
		if extra := len(file.Lines) - r.DisplayLimit; extra > 0 {
			fmt.Fprintf(&sb, "  ... and %d more matches\n", extra)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
