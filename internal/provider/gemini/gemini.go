// Package gemini implements the Provider contract on top of the official
// Google GenAI SDK.
package gemini

import (
	"context"

	"github.com/jmallia/scribe/internal/config"
	provider "github.com/jmallia/scribe/internal/provider/model"
)

// Provider talks to the Gemini API.
type Provider struct {
	client    Client
	modelName string
	maxTokens int32
}

// New creates a Provider for the configured model.
func New(client Client, cfg *config.Config) *Provider {
	if client == nil {
		panic("client is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &Provider{
		client:    client,
		modelName: cfg.Provider.Model,
		maxTokens: cfg.Provider.MaxOutputTokens,
	}
}

// Generate sends the conversation and tool declarations to the API and
// converts the result back into provider types.
func (p *Provider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	contents := toGeminiContents(req.History)
	genConfig := toGeminiConfig(req.SystemPrompt, p.maxTokens)
	if len(req.Tools) > 0 {
		genConfig.Tools = toGeminiTools(req.Tools)
	}

	resp, err := p.client.GenerateContent(ctx, p.modelName, contents, genConfig)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp)
}

// GetModel returns the active model name.
func (p *Provider) GetModel() string {
	return p.modelName
}
