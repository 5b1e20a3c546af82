package model

import "context"

// Provider is the LLM backend contract the orchestrator depends on.
type Provider interface {
	// Generate sends the conversation to the model and returns its response.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// GetModel returns the active model name.
	GetModel() string
}
