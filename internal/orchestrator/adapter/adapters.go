// Package adapter bridges the agent's tools to the provider's tool-calling
// surface. Each adapter owns a tool definition and decodes model-emitted
// arguments into the tool package's typed request.
package adapter

import (
	"context"
	"errors"

	provider "github.com/jmallia/scribe/internal/provider/model"
	"github.com/jmallia/scribe/internal/tool/batch"
	"github.com/jmallia/scribe/internal/tool/file"
	"github.com/jmallia/scribe/internal/tool/history"
	"github.com/jmallia/scribe/internal/tool/search"
	"github.com/jmallia/scribe/internal/tool/shell"
)

// NewReadFileAdapter adapts file reading.
func NewReadFileAdapter(editor *file.Editor) Tool {
	return NewBaseAdapter(
		"read_file",
		"Read the contents of a file at the specified path",
		&provider.ParameterSchema{
			Type: provider.TypeObject,
			Properties: map[string]provider.PropertySchema{
				"path": {Type: provider.TypeString, Description: "The path to the file to read"},
			},
			Required: []string{"path"},
		},
		func(_ context.Context, req *file.ReadRequest) (string, error) {
			resp, err := editor.Read(req)
			if err != nil {
				return "", err
			}
			return resp.Format(), nil
		},
	)
}

// NewListFilesAdapter adapts directory listing.
func NewListFilesAdapter(editor *file.Editor) Tool {
	return NewBaseAdapter(
		"list_files",
		"List all files and directories in the specified path",
		&provider.ParameterSchema{
			Type: provider.TypeObject,
			Properties: map[string]provider.PropertySchema{
				"path": {Type: provider.TypeString, Description: "The directory path to list (defaults to current directory)"},
			},
		},
		func(_ context.Context, req *file.ListRequest) (string, error) {
			resp, err := editor.List(req)
			if err != nil {
				return "", err
			}
			return resp.Format(), nil
		},
	)
}

// NewEditFileAdapter adapts single-file editing and creation.
func NewEditFileAdapter(editor *file.Editor) Tool {
	return NewBaseAdapter(
		"edit_file",
		"Edit a file by replacing old_text with new_text. Creates the file if it doesn't exist.",
		&provider.ParameterSchema{
			Type: provider.TypeObject,
			Properties: map[string]provider.PropertySchema{
				"path":     {Type: provider.TypeString, Description: "The path to the file to edit"},
				"old_text": {Type: provider.TypeString, Description: "The text to search for and replace (leave empty to create new file)"},
				"new_text": {Type: provider.TypeString, Description: "The text to replace old_text with"},
			},
			Required: []string{"path", "new_text"},
		},
		func(_ context.Context, req *file.EditRequest) (string, error) {
			resp, err := editor.Edit(req)
			if err != nil {
				return "", err
			}
			return resp.Format(), nil
		},
	)
}

// NewSearchFilesAdapter adapts text and regex search.
func NewSearchFilesAdapter(searcher *search.Searcher) Tool {
	return NewBaseAdapter(
		"search_files",
		"Search for text patterns across multiple files in a directory. Supports regex patterns and file filtering.",
		&provider.ParameterSchema{
			Type: provider.TypeObject,
			Properties: map[string]provider.PropertySchema{
				"pattern":        {Type: provider.TypeString, Description: "The text or regex pattern to search for"},
				"path":           {Type: provider.TypeString, Description: "The directory path to search in (defaults to current directory)"},
				"file_pattern":   {Type: provider.TypeString, Description: "Optional file pattern to filter files (e.g., '*.py', '*.js')"},
				"case_sensitive": {Type: provider.TypeBoolean, Description: "Whether the search should be case-sensitive (defaults to false)"},
				"use_regex":      {Type: provider.TypeBoolean, Description: "Whether to treat the pattern as a regex (defaults to false)"},
			},
			Required: []string{"pattern"},
		},
		func(_ context.Context, req *search.Request) (string, error) {
			resp, err := searcher.Search(req)
			if err != nil {
				return "", err
			}
			return resp.Format(), nil
		},
	)
}

// NewMultiFileEditAdapter adapts the batch replacement tool.
func NewMultiFileEditAdapter(editor *batch.Editor) Tool {
	return NewBaseAdapter(
		"multi_file_edit",
		"Edit multiple files at once by applying the same text replacement across all matching files. Useful for refactoring, renaming variables/functions, or updating imports.",
		&provider.ParameterSchema{
			Type: provider.TypeObject,
			Properties: map[string]provider.PropertySchema{
				"old_text":       {Type: provider.TypeString, Description: "The text to search for and replace in all files"},
				"new_text":       {Type: provider.TypeString, Description: "The text to replace old_text with"},
				"path":           {Type: provider.TypeString, Description: "The directory path to search in (defaults to current directory)"},
				"file_pattern":   {Type: provider.TypeString, Description: "Optional file pattern to filter files (e.g., '*.py', '*.js')"},
				"case_sensitive": {Type: provider.TypeBoolean, Description: "Whether the search should be case-sensitive (defaults to true)"},
				"dry_run":        {Type: provider.TypeBoolean, Description: "If true, show what would be changed without actually modifying files (defaults to false)"},
			},
			Required: []string{"old_text", "new_text"},
		},
		func(_ context.Context, req *batch.Request) (string, error) {
			resp, err := editor.Edit(req)
			if err != nil {
				return "", err
			}
			return resp.Format(), nil
		},
	)
}

// NewRunCommandAdapter adapts shell execution.
func NewRunCommandAdapter(runner *shell.Runner) Tool {
	return NewBaseAdapter(
		"run_command",
		"Execute a shell command or run a script file. Use this to run programs, execute scripts, or perform system operations.",
		&provider.ParameterSchema{
			Type: provider.TypeObject,
			Properties: map[string]provider.PropertySchema{
				"command":           {Type: provider.TypeString, Description: "The command to execute (e.g., 'python script.py', 'ls -la', 'npm test')"},
				"working_directory": {Type: provider.TypeString, Description: "The directory to run the command in (defaults to current directory)"},
				"timeout":           {Type: provider.TypeInteger, Description: "Maximum time in seconds to wait for command completion (defaults to 30)"},
			},
			Required: []string{"command"},
		},
		func(ctx context.Context, req *shell.Request) (string, error) {
			resp, err := runner.Run(ctx, req)
			if err != nil {
				return "", err
			}
			return resp.Format(), nil
		},
	)
}

type undoRequest struct{}

// NewUndoAdapter adapts the undo tool. An empty history is not a failure;
// the model just gets told there is nothing to revert.
func NewUndoAdapter(undoer *history.Undoer) Tool {
	return NewBaseAdapter(
		"undo_last_edit",
		"Undo the last file edit operation and restore the previous version",
		&provider.ParameterSchema{
			Type:       provider.TypeObject,
			Properties: map[string]provider.PropertySchema{},
		},
		func(_ context.Context, _ *undoRequest) (string, error) {
			msg, err := undoer.UndoLast()
			if err != nil {
				if errors.Is(err, history.ErrEmptyHistory) {
					return "No edits to undo", nil
				}
				return "", err
			}
			return msg, nil
		},
	)
}

// All wires every tool adapter in declaration order.
func All(
	editor *file.Editor,
	searcher *search.Searcher,
	batchEditor *batch.Editor,
	runner *shell.Runner,
	undoer *history.Undoer,
) []Tool {
	return []Tool{
		NewReadFileAdapter(editor),
		NewListFilesAdapter(editor),
		NewEditFileAdapter(editor),
		NewSearchFilesAdapter(searcher),
		NewMultiFileEditAdapter(batchEditor),
		NewRunCommandAdapter(runner),
		NewUndoAdapter(undoer),
	}
}
