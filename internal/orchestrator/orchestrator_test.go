package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallia/scribe/internal/config"
	"github.com/jmallia/scribe/internal/orchestrator/adapter"
	"github.com/jmallia/scribe/internal/orchestrator/model"
	provider "github.com/jmallia/scribe/internal/provider/model"
)

// scriptedProvider returns canned responses in order and records requests.
type scriptedProvider struct {
	responses []*provider.GenerateResponse
	err       error
	requests  []*provider.GenerateRequest
}

func (p *scriptedProvider) Generate(_ context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	if len(p.responses) == 0 {
		return nil, errors.New("script exhausted")
	}
	resp := p.responses[0]
	p.responses = p.responses[1:]
	return resp, nil
}

func (p *scriptedProvider) GetModel() string { return "scripted" }

// fakeTool is a minimal adapter.Tool for loop tests.
type fakeTool struct {
	name   string
	result string
	err    error
	calls  []map[string]any
}

func (t *fakeTool) Name() string        { return t.name }
func (t *fakeTool) Description() string { return t.name }
func (t *fakeTool) Definition() provider.ToolDefinition {
	return provider.ToolDefinition{Name: t.name, Description: t.name}
}
func (t *fakeTool) Execute(_ context.Context, args map[string]any) (string, error) {
	t.calls = append(t.calls, args)
	return t.result, t.err
}

func textResponse(text string) *provider.GenerateResponse {
	return &provider.GenerateResponse{Content: provider.ResponseContent{
		Type: provider.ResponseTypeText,
		Text: text,
	}}
}

func toolCallResponse(calls ...model.ToolCall) *provider.GenerateResponse {
	return &provider.GenerateResponse{Content: provider.ResponseContent{
		Type:      provider.ResponseTypeToolCall,
		ToolCalls: calls,
	}}
}

func TestTurn_TextOnly(t *testing.T) {
	p := &scriptedProvider{responses: []*provider.GenerateResponse{textResponse("hi there")}}
	o := New(p, nil, nil, config.DefaultConfig(), nil)

	got, err := o.Turn(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", got)
	assert.Equal(t, 2, o.HistoryLen())

	require.Len(t, p.requests, 1)
	assert.Equal(t, SystemPrompt, p.requests[0].SystemPrompt)
}

func TestTurn_ToolCallLoop(t *testing.T) {
	reader := &fakeTool{name: "read_file", result: "File contents of a.txt:\nhello"}
	p := &scriptedProvider{responses: []*provider.GenerateResponse{
		toolCallResponse(model.ToolCall{ID: "1", Name: "read_file", Args: map[string]any{"path": "a.txt"}}),
		textResponse("the file says hello"),
	}}
	o := New(p, nil, []adapter.Tool{reader}, config.DefaultConfig(), nil)

	got, err := o.Turn(context.Background(), "what does a.txt say?")
	require.NoError(t, err)
	assert.Equal(t, "the file says hello", got)

	require.Len(t, reader.calls, 1)
	assert.Equal(t, "a.txt", reader.calls[0]["path"])

	// Second request carries the tool result back to the model.
	require.Len(t, p.requests, 2)
	history := p.requests[1].History
	require.Len(t, history, 3) // user, model tool call, function result
	assert.Equal(t, "function", history[2].Role)
	require.Len(t, history[2].ToolResults, 1)
	assert.Equal(t, "File contents of a.txt:\nhello", history[2].ToolResults[0].Content)
}

func TestTurn_BatchesParallelToolCalls(t *testing.T) {
	a := &fakeTool{name: "tool_a", result: "result a"}
	b := &fakeTool{name: "tool_b", result: "result b"}
	p := &scriptedProvider{responses: []*provider.GenerateResponse{
		toolCallResponse(
			model.ToolCall{ID: "1", Name: "tool_a", Args: map[string]any{}},
			model.ToolCall{ID: "2", Name: "tool_b", Args: map[string]any{}},
		),
		textResponse("done"),
	}}
	o := New(p, nil, []adapter.Tool{a, b}, config.DefaultConfig(), nil)

	_, err := o.Turn(context.Background(), "go")
	require.NoError(t, err)

	history := p.requests[1].History
	require.Len(t, history, 3)
	results := history[2].ToolResults
	require.Len(t, results, 2, "both results belong in one function message")
	assert.Equal(t, "result a", results[0].Content)
	assert.Equal(t, "result b", results[1].Content)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "2", results[1].ID)
}

func TestTurn_UnknownToolBecomesResultText(t *testing.T) {
	p := &scriptedProvider{responses: []*provider.GenerateResponse{
		toolCallResponse(model.ToolCall{ID: "1", Name: "bogus", Args: map[string]any{}}),
		textResponse("ok"),
	}}
	o := New(p, nil, nil, config.DefaultConfig(), nil)

	_, err := o.Turn(context.Background(), "go")
	require.NoError(t, err)

	results := p.requests[1].History[2].ToolResults
	require.Len(t, results, 1)
	assert.Equal(t, "Unknown tool: bogus", results[0].Content)
}

func TestTurn_ToolErrorBecomesResultText(t *testing.T) {
	failing := &fakeTool{name: "edit_file", err: errors.New("Text not found in file: xyz")}
	p := &scriptedProvider{responses: []*provider.GenerateResponse{
		toolCallResponse(model.ToolCall{ID: "1", Name: "edit_file", Args: map[string]any{}}),
		textResponse("ok"),
	}}
	o := New(p, nil, []adapter.Tool{failing}, config.DefaultConfig(), nil)

	_, err := o.Turn(context.Background(), "go")
	require.NoError(t, err)

	results := p.requests[1].History[2].ToolResults
	require.Len(t, results, 1)
	assert.Equal(t, "Error executing edit_file: Text not found in file: xyz", results[0].Content)
}

func TestTurn_MaxIterations(t *testing.T) {
	loop := &fakeTool{name: "spin", result: "again"}
	cfg := config.DefaultConfig()
	cfg.Orchestrator.MaxIterations = 3

	// Always answer with another tool call.
	responses := make([]*provider.GenerateResponse, 0, 3)
	for range 3 {
		responses = append(responses, toolCallResponse(model.ToolCall{ID: "1", Name: "spin", Args: map[string]any{}}))
	}
	p := &scriptedProvider{responses: responses}
	o := New(p, nil, []adapter.Tool{loop}, cfg, nil)

	_, err := o.Turn(context.Background(), "go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 tool iterations")
	assert.Len(t, loop.calls, 3)
}

func TestTurn_ProviderErrorPropagates(t *testing.T) {
	p := &scriptedProvider{err: &provider.ProviderError{Code: provider.ErrorCodeRateLimit, Message: "slow down"}}
	o := New(p, nil, nil, config.DefaultConfig(), nil)

	_, err := o.Turn(context.Background(), "go")
	require.Error(t, err)
	var provErr *provider.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, provider.ErrorCodeRateLimit, provErr.Code)
}

func TestTurn_Refusal(t *testing.T) {
	p := &scriptedProvider{responses: []*provider.GenerateResponse{{
		Content: provider.ResponseContent{
			Type:          provider.ResponseTypeRefusal,
			RefusalReason: "safety",
		},
	}}}
	o := New(p, nil, nil, config.DefaultConfig(), nil)

	got, err := o.Turn(context.Background(), "go")
	require.NoError(t, err)
	assert.Contains(t, got, "safety")
}

func TestTurn_HistoryAccumulatesAcrossTurns(t *testing.T) {
	p := &scriptedProvider{responses: []*provider.GenerateResponse{
		textResponse("first"),
		textResponse("second"),
	}}
	o := New(p, nil, nil, config.DefaultConfig(), nil)

	_, err := o.Turn(context.Background(), "one")
	require.NoError(t, err)
	_, err = o.Turn(context.Background(), "two")
	require.NoError(t, err)

	require.Len(t, p.requests, 2)
	assert.Len(t, p.requests[1].History, 3) // user, model, user
	assert.Equal(t, 4, o.HistoryLen())
}
