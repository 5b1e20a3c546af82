package adapter

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	provider "github.com/jmallia/scribe/internal/provider/model"
)

// Validator is implemented by request types that check their own fields.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by request types whose defaults differ from the
// Go zero value. It runs before decoding; fields absent from the argument
// map keep what it set.
type Defaulter interface {
	SetDefaults()
}

// ToolExecutor runs a tool with a typed request and returns the text the
// model will read.
type ToolExecutor[Req any] func(ctx context.Context, req *Req) (string, error)

// MissingArgumentError reports a required argument the model left out.
type MissingArgumentError struct {
	Tool  string
	Field string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument '%s'", e.Field)
}

// BaseAdapter centralizes what every tool adapter needs: decoding the raw
// argument map into a typed request, checking required fields and request
// validation, and delegating to the executor. Individual adapters are just
// a definition plus an executor closure.
type BaseAdapter[Req any] struct {
	name        string
	description string
	definition  provider.ToolDefinition
	executor    ToolExecutor[Req]
}

// NewBaseAdapter creates a tool adapter from a definition and an executor.
func NewBaseAdapter[Req any](
	name string,
	description string,
	params *provider.ParameterSchema,
	executor ToolExecutor[Req],
) *BaseAdapter[Req] {
	if executor == nil {
		panic("executor is required")
	}
	return &BaseAdapter[Req]{
		name:        name,
		description: description,
		definition: provider.ToolDefinition{
			Name:        name,
			Description: description,
			Parameters:  params,
		},
		executor: executor,
	}
}

// Name implements Tool.
func (b *BaseAdapter[Req]) Name() string {
	return b.name
}

// Description implements Tool.
func (b *BaseAdapter[Req]) Description() string {
	return b.description
}

// Definition implements Tool.
func (b *BaseAdapter[Req]) Definition() provider.ToolDefinition {
	return b.definition
}

// Execute implements Tool. Required fields are checked against the raw map
// before decoding, so a missing argument is reported by name rather than
// surfacing as a zero-value validation failure downstream.
func (b *BaseAdapter[Req]) Execute(ctx context.Context, args map[string]any) (string, error) {
	if b.definition.Parameters != nil {
		for _, field := range b.definition.Parameters.Required {
			if _, ok := args[field]; !ok {
				return "", &MissingArgumentError{Tool: b.name, Field: field}
			}
		}
	}

	var req Req
	if d, ok := any(&req).(Defaulter); ok {
		d.SetDefaults()
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &req,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return "", fmt.Errorf("building argument decoder: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", err
		}
	}

	return b.executor(ctx, &req)
}
