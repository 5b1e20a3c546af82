package shell

import (
	"fmt"
	"strings"
)

// Request holds the parameters for one command execution. TimeoutSeconds of
// zero means the configured default.
type Request struct {
	Command        string `json:"command"`
	WorkingDir     string `json:"working_directory"`
	TimeoutSeconds int    `json:"timeout"`
}

func (r *Request) Validate() error {
	if r.Command == "" {
		return ErrCommandRequired
	}
	return nil
}

// Response captures what the process produced.
type Response struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// Format renders the report the way a caller reading plain text expects:
// labeled sections only when non-empty, the exit code only when non-zero,
// and an explicit message when there is nothing at all to show.
func (r *Response) Format() string {
	var parts []string
	if r.Stdout != "" {
		parts = append(parts, "Output:\n"+r.Stdout)
	}
	if r.Stderr != "" {
		parts = append(parts, "Errors:\n"+r.Stderr)
	}
	if r.ExitCode != 0 {
		parts = append(parts, fmt.Sprintf("Exit code: %d", r.ExitCode))
	}
	if r.Truncated {
		parts = append(parts, "Warning: output truncated at size limit")
	}
	if len(parts) == 0 {
		return "Command completed successfully with no output"
	}
	return strings.Join(parts, "\n\n")
}
