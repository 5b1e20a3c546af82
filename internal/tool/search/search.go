// Package search implements line-oriented text and regex search across a
// directory tree. Its traversal rules (backup-directory, hidden-name, and
// gitignore pruning plus basename globbing) are shared with the batch
// editor.
package search

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jmallia/scribe/internal/config"
	"github.com/jmallia/scribe/internal/tool/fsutil"
)

// Searcher scans files under a root for a pattern.
type Searcher struct {
	walker *Walker
	config *config.Config
}

// NewSearcher creates a Searcher with injected dependencies.
func NewSearcher(walker *Walker, cfg *config.Config) *Searcher {
	if walker == nil {
		panic("walker is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &Searcher{walker: walker, config: cfg}
}

// Search matches line by line: a file matches when at least one of its lines
// matches. Binary and unreadable files are skipped silently and do not count
// toward FilesSearched. Totals are exact regardless of display truncation.
func (s *Searcher) Search(req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	root := req.Path
	if root == "" {
		root = "."
	}

	var matchLine func(line string) bool
	if req.UseRegex {
		pattern := req.Pattern
		if !req.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: req.Pattern, Cause: err}
		}
		matchLine = re.MatchString
	} else {
		needle := req.Pattern
		if !req.CaseSensitive {
			needle = strings.ToLower(needle)
			matchLine = func(line string) bool {
				return strings.Contains(strings.ToLower(line), needle)
			}
		} else {
			matchLine = func(line string) bool {
				return strings.Contains(line, needle)
			}
		}
	}

	resp := &Response{
		Pattern:      req.Pattern,
		DisplayLimit: s.config.Tools.MatchDisplayLimit,
	}

	err := s.walker.Walk(root, req.FilePattern, func(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil // permission denied etc: skip silently
		}
		if fsutil.IsBinaryContent(data, s.config.Tools.BinaryDetectionSampleSize) || !utf8.Valid(data) {
			return nil
		}
		resp.FilesSearched++

		var fileMatches []LineMatch
		scanner := bufio.NewScanner(bytes.NewReader(data))
		scanner.Buffer(make([]byte, 0, 64*1024), s.config.Tools.MaxScanTokenSize)
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := scanner.Text()
			if matchLine(line) {
				fileMatches = append(fileMatches, LineMatch{
					Number: lineNum,
					Text:   strings.TrimRight(line, " \t\r"),
				})
				resp.TotalMatches++
			}
		}
		// A pathological line longer than the scan buffer aborts this
		// file's scan; matches found so far still count.

		if len(fileMatches) > 0 {
			resp.Files = append(resp.Files, FileMatches{Path: path, Lines: fileMatches})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
