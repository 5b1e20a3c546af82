package ui

import "context"

// UserInterface is the contract for all user interaction. All blocking
// methods accept a context; if the user quits or the process is interrupted
// they return immediately with the context's error.
type UserInterface interface {
	// ReadInput blocks until the user submits a line.
	ReadInput(ctx context.Context, prompt string) (string, error)

	// WriteStatus displays ephemeral progress (e.g. "Running read_file...").
	WriteStatus(phase string, message string)

	// WriteMessage displays one of the agent's text responses.
	WriteMessage(content string)
}
