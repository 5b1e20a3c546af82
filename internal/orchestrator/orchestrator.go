// Package orchestrator runs the agent loop: it sends the conversation to the
// provider, executes whatever tool calls come back, feeds the results into
// the next round, and stops when the model answers in plain text.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmallia/scribe/internal/config"
	"github.com/jmallia/scribe/internal/orchestrator/adapter"
	"github.com/jmallia/scribe/internal/orchestrator/model"
	provider "github.com/jmallia/scribe/internal/provider/model"
)

// SystemPrompt steers the model toward terminal-friendly output.
const SystemPrompt = "You are a helpful coding assistant operating in a terminal environment. " +
	"Output only plain text without markdown formatting, as your responses appear directly in the terminal." +
	"Be concise but thorough, providing clear and practical advice with a friendly tone. " +
	"Don't use any asterisk characters in your responses."

// StatusWriter receives progress updates while a turn is in flight.
type StatusWriter interface {
	WriteStatus(state string, detail string)
}

// Orchestrator owns the conversation history and the tool table. It is not
// safe for concurrent turns; the agent runs one turn at a time.
type Orchestrator struct {
	provider    provider.Provider
	status      StatusWriter
	tools       map[string]adapter.Tool
	definitions []provider.ToolDefinition
	history     []model.Message
	config      *config.Config
	logger      *slog.Logger
}

// New creates an Orchestrator. status may be nil when no progress reporting
// is wanted.
func New(p provider.Provider, status StatusWriter, tools []adapter.Tool, cfg *config.Config, logger *slog.Logger) *Orchestrator {
	if p == nil {
		panic("provider is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	toolMap := make(map[string]adapter.Tool, len(tools))
	definitions := make([]provider.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		toolMap[t.Name()] = t
		definitions = append(definitions, t.Definition())
	}

	return &Orchestrator{
		provider:    p,
		status:      status,
		tools:       toolMap,
		definitions: definitions,
		config:      cfg,
		logger:      logger,
	}
}

// HistoryLen returns the number of messages accumulated so far.
func (o *Orchestrator) HistoryLen() int {
	return len(o.history)
}

// Turn processes one user message and returns the model's final text. Tool
// calls are executed sequentially in emission order and their results go
// back as a single function message; the loop repeats until the model stops
// calling tools or the round-trip cap is hit. Failures inside a tool never
// escape as errors here, they become result text the model reads.
func (o *Orchestrator) Turn(ctx context.Context, input string) (string, error) {
	o.history = append(o.history, model.Message{Role: "user", Content: input})

	for range o.config.Orchestrator.MaxIterations {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		o.writeStatus("thinking", "Generating response...")

		resp, err := o.provider.Generate(ctx, &provider.GenerateRequest{
			History:      o.history,
			SystemPrompt: SystemPrompt,
			Tools:        o.definitions,
		})
		if err != nil {
			return "", err
		}

		switch resp.Content.Type {
		case provider.ResponseTypeToolCall:
			o.history = append(o.history, model.Message{
				Role:      "model",
				Content:   resp.Content.Text,
				ToolCalls: resp.Content.ToolCalls,
			})

			results := make([]model.ToolResult, 0, len(resp.Content.ToolCalls))
			for _, call := range resp.Content.ToolCalls {
				results = append(results, o.executeToolCall(ctx, call))
			}
			o.history = append(o.history, model.Message{
				Role:        "function",
				ToolResults: results,
			})

		case provider.ResponseTypeText:
			o.history = append(o.history, model.Message{
				Role:    "model",
				Content: resp.Content.Text,
			})
			return resp.Content.Text, nil

		case provider.ResponseTypeRefusal:
			refusal := fmt.Sprintf("Model refused to respond: %s", resp.Content.RefusalReason)
			o.history = append(o.history, model.Message{Role: "model", Content: refusal})
			return refusal, nil

		default:
			return "", fmt.Errorf("unknown response type %q", resp.Content.Type)
		}
	}

	return "", fmt.Errorf("no final response after %d tool iterations", o.config.Orchestrator.MaxIterations)
}

// executeToolCall runs one call and converts any failure into result text,
// so the model always receives something it can act on.
func (o *Orchestrator) executeToolCall(ctx context.Context, call model.ToolCall) model.ToolResult {
	tool, ok := o.tools[call.Name]
	if !ok {
		o.logger.Warn("unknown tool requested", "tool", call.Name)
		return model.ToolResult{
			ID:      call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("Unknown tool: %s", call.Name),
		}
	}

	o.writeStatus("executing", fmt.Sprintf("Running %s...", call.Name))
	o.logger.Info("executing tool", "tool", call.Name)

	result, err := tool.Execute(ctx, call.Args)
	if err != nil {
		o.logger.Warn("tool failed", "tool", call.Name, "error", err)
		return model.ToolResult{
			ID:      call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("Error executing %s: %s", call.Name, err.Error()),
			Error:   err.Error(),
		}
	}

	return model.ToolResult{
		ID:      call.ID,
		Name:    call.Name,
		Content: result,
	}
}

func (o *Orchestrator) writeStatus(state, detail string) {
	if o.status != nil {
		o.status.WriteStatus(state, detail)
	}
}
