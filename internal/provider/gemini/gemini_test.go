package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/jmallia/scribe/internal/config"
	"github.com/jmallia/scribe/internal/orchestrator/model"
	provider "github.com/jmallia/scribe/internal/provider/model"
)

type mockClient struct {
	resp *genai.GenerateContentResponse
	err  error

	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
}

func (m *mockClient) GenerateContent(_ context.Context, modelName string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.gotModel = modelName
	m.gotContents = contents
	m.gotConfig = cfg
	return m.resp, m.err
}

func textCandidate(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestGenerate_PassesModelPromptAndTools(t *testing.T) {
	client := &mockClient{resp: textCandidate("ok")}
	p := New(client, config.DefaultConfig())

	resp, err := p.Generate(context.Background(), &provider.GenerateRequest{
		History:      []model.Message{{Role: "user", Content: "hi"}},
		SystemPrompt: "stay in the terminal",
		Tools:        []provider.ToolDefinition{{Name: "read_file", Description: "read"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content.Text)

	assert.Equal(t, "gemini-2.5-flash", client.gotModel)
	assert.Equal(t, "gemini-2.5-flash", p.GetModel())
	require.Len(t, client.gotContents, 1)
	require.NotNil(t, client.gotConfig.SystemInstruction)
	assert.Equal(t, int32(4096), client.gotConfig.MaxOutputTokens)
	require.Len(t, client.gotConfig.Tools, 1)
	assert.Len(t, client.gotConfig.Tools[0].FunctionDeclarations, 1)
}

func TestGenerate_MapsAPIError(t *testing.T) {
	client := &mockClient{err: &genai.APIError{Code: 429, Message: "quota"}}
	p := New(client, config.DefaultConfig())

	_, err := p.Generate(context.Background(), &provider.GenerateRequest{
		History: []model.Message{{Role: "user", Content: "hi"}},
	})
	var provErr *provider.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, provider.ErrorCodeRateLimit, provErr.Code)
}

func TestGenerate_NoToolsOmitsDeclarations(t *testing.T) {
	client := &mockClient{resp: textCandidate("ok")}
	p := New(client, config.DefaultConfig())

	_, err := p.Generate(context.Background(), &provider.GenerateRequest{
		History: []model.Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Nil(t, client.gotConfig.Tools)
}
