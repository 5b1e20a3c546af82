package adapter

import (
	"context"

	provider "github.com/jmallia/scribe/internal/provider/model"
)

// Tool is a capability the agent can invoke. Implementations must be
// stateless and safe for concurrent use.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Definition returns the structured tool definition for the provider.
	Definition() provider.ToolDefinition

	// Execute runs the tool with the arguments as emitted by the model.
	Execute(ctx context.Context, args map[string]any) (string, error)
}
