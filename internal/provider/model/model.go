// Package model defines the provider-facing contract: the Provider
// interface, request and response shapes, tool definition schemas, and the
// provider error taxonomy.
package model

import (
	"github.com/jmallia/scribe/internal/orchestrator/model"
)

// GenerateRequest encapsulates all parameters for one generation call.
type GenerateRequest struct {
	// History is the full conversation so far, oldest first.
	History []model.Message

	// SystemPrompt steers the model for the whole conversation.
	SystemPrompt string

	// Tools the model may invoke in this call.
	Tools []ToolDefinition
}

// GenerateResponse contains the model's response.
type GenerateResponse struct {
	Content ResponseContent
}

// ResponseType indicates what the model produced.
type ResponseType string

const (
	ResponseTypeText     ResponseType = "text"
	ResponseTypeToolCall ResponseType = "tool_call"
	ResponseTypeRefusal  ResponseType = "refusal"
)

// ResponseContent is a union: exactly the fields for its Type are set.
type ResponseContent struct {
	Type ResponseType

	// For ResponseTypeText
	Text string

	// For ResponseTypeToolCall
	ToolCalls []model.ToolCall

	// For ResponseTypeRefusal (safety block)
	RefusalReason string
}

// ToolDefinition declares a tool to the model.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  *ParameterSchema // nil means no parameters
}

// ParameterSchema maps directly to JSON Schema.
type ParameterSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// PropertySchema defines a single parameter property.
type PropertySchema struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Schema type names used in tool definitions.
const (
	TypeObject  = "object"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)
