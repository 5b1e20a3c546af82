// Package model holds the conversation types shared by the orchestrator and
// the provider layer.
package model

// Message is a single entry in the conversation history.
type Message struct {
	Role    string // "user", "model", "function"
	Content string

	// For model messages carrying tool calls
	ToolCalls []ToolCall

	// For function messages carrying tool results
	ToolResults []ToolResult
}

// ToolCall is a structured tool invocation emitted by the model.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolResult pairs a tool call with what executing it produced. Content is
// always set and is what the model sees; on failure it carries the error
// description and Error holds the raw message for logging.
type ToolResult struct {
	ID      string // matches ToolCall.ID
	Name    string
	Content string
	Error   string
}
