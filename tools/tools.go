package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/onehop-ai/onehop/protocol"
)

// Spec describes one registered tool: a unique name, a prompt-facing
// description, an optional schema for the tool_input payload, and the
// handler itself. Specs are registered once at startup and read-only
// thereafter.
type Spec struct {
	Name        string
	Description string
	// Params optionally describes the JSON structure the tool expects inside
	// the tool_input string; it is surfaced in the oracle prompt when set.
	Params *jsonschema.Schema
	Fn     func(ctx context.Context, input string) (string, error)
}

// Info returns the prompt-facing view of the spec.
func (s Spec) Info() protocol.ToolInfo {
	info := protocol.ToolInfo{Name: s.Name, Description: s.Description}
	if s.Params != nil {
		if b, err := json.Marshal(s.Params); err == nil {
			info.InputSchema = string(b)
		}
	}
	return info
}

// GenerateSchema derives a JSON Schema from a tool input struct.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// unmarshalInput decodes a tool_input string carrying JSON into T.
func unmarshalInput[T any](input string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(input), &v); err != nil {
		return v, fmt.Errorf("invalid tool input: %w", err)
	}
	return v, nil
}
