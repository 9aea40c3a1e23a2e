package tools

import "fmt"

// UnknownToolError reports a lookup for a name with no registered spec.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("tools: unknown tool %q", e.Name)
}

// InvalidInputError reports input rejected before the tool body ran.
type InvalidInputError struct {
	Name   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("tools: invalid input for %q: %s", e.Name, e.Reason)
}

// ToolError wraps a failure raised by a tool body so callers see one error
// shape regardless of which tool failed or why.
type ToolError struct {
	Name  string
	Cause error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tools: %q failed: %v", e.Name, e.Cause)
}

func (e *ToolError) Unwrap() error { return e.Cause }
