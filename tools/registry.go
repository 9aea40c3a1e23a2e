package tools

import (
	"context"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/onehop-ai/onehop/protocol"
)

// Registry holds the tool set. Registration happens at process start; after
// that the registry is read-only and safe for concurrent Execute calls as
// long as the tool bodies themselves are.
type Registry struct {
	specs *orderedmap.OrderedMap[string, Spec]
}

func NewRegistry() *Registry {
	return &Registry{specs: orderedmap.New[string, Spec]()}
}

// Register adds a spec under its name. Names are unique keys; empty names,
// missing handlers, and re-registration are rejected.
func (r *Registry) Register(s Spec) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("tools: spec has no name")
	}
	if s.Fn == nil {
		return fmt.Errorf("tools: spec %q has no handler", s.Name)
	}
	if _, ok := r.specs.Get(s.Name); ok {
		return fmt.Errorf("tools: %q already registered", s.Name)
	}
	r.specs.Set(s.Name, s)
	return nil
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (Spec, error) {
	s, ok := r.specs.Get(name)
	if !ok {
		return Spec{}, &UnknownToolError{Name: name}
	}
	return s, nil
}

// Execute runs one tool call: lookup, input validation, dispatch. Blank
// input is rejected before the tool body is invoked; any failure from the
// body comes back wrapped as *ToolError, never raw.
func (r *Registry) Execute(ctx context.Context, name, input string) (string, error) {
	s, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) == "" {
		return "", &InvalidInputError{Name: name, Reason: "blank input"}
	}
	out, err := s.Fn(ctx, input)
	if err != nil {
		return "", &ToolError{Name: name, Cause: err}
	}
	return out, nil
}

// Specs returns the registered specs in registration order, so prompt
// catalogs stay deterministic across runs.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, 0, r.specs.Len())
	for pair := r.specs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Infos returns prompt-facing tool listings in registration order.
func (r *Registry) Infos() []protocol.ToolInfo {
	specs := r.Specs()
	out := make([]protocol.ToolInfo, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.Info())
	}
	return out
}

// Len reports the number of registered tools.
func (r *Registry) Len() int { return r.specs.Len() }
