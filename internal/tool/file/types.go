package file

import (
	"fmt"
	"strings"
)

// -- Read File --

type ReadRequest struct {
	Path string `json:"path"`
}

func (r *ReadRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

type ReadResponse struct {
	Path    string
	Content string
}

func (r *ReadResponse) Format() string {
	return fmt.Sprintf("File contents of %s:\n%s", r.Path, r.Content)
}

// -- List Files --

type ListRequest struct {
	Path string `json:"path"`
}

type DirEntry struct {
	Name  string
	IsDir bool
}

type ListResponse struct {
	Path    string
	Entries []DirEntry
}

// Format reports each immediate child tagged as directory or file. An empty
// directory is reported explicitly so a model consumer never sees a blank
// result.
func (r *ListResponse) Format() string {
	if len(r.Entries) == 0 {
		return fmt.Sprintf("Empty directory: %s", r.Path)
	}
	lines := make([]string, 0, len(r.Entries)+1)
	lines = append(lines, fmt.Sprintf("Contents of %s:", r.Path))
	for _, e := range r.Entries {
		if e.IsDir {
			lines = append(lines, fmt.Sprintf("[DIR]  %s/", e.Name))
		} else {
			lines = append(lines, fmt.Sprintf("[FILE] %s", e.Name))
		}
	}
	return strings.Join(lines, "\n")
}

// -- Edit File --

type EditRequest struct {
	Path    string `json:"path"`
	OldText string `json:"old_text"`
	NewText string `json:"new_text"`
}

func (r *EditRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

type EditResponse struct {
	Path       string
	Created    bool
	BackupPath string
}

func (r *EditResponse) Format() string {
	if r.Created {
		return fmt.Sprintf("Successfully created %s", r.Path)
	}
	return fmt.Sprintf("Successfully edited %s", r.Path)
}
