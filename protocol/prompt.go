package protocol

import (
	"fmt"
	"strings"
)

// ToolInfo is the prompt-facing view of a registered tool. It is kept
// separate from the registry's own spec type so this package stays a leaf.
type ToolInfo struct {
	Name        string
	Description string
	// InputSchema optionally carries a JSON Schema describing the structure
	// a tool expects inside the tool_input string.
	InputSchema string
}

// BuildPrompt assembles the instruction payload for one decision: the tool
// catalog, one worked example per directive shape, the output-format rules,
// and the verbatim current request. The request is always the latest human
// turn so the oracle answers the current question, not a stale one.
func BuildPrompt(request string, tools []ToolInfo) string {
	var b strings.Builder
	b.WriteString("You are a helpful assistant that MUST respond with ONLY valid JSON.\n\n")

	if len(tools) == 0 {
		b.WriteString("You have no tools available; answer with a final_answer.\n")
	} else {
		b.WriteString("You have access to these tools:\n")
		for _, t := range tools {
			fmt.Fprintf(&b, "%s: %s\n", t.Name, firstLine(t.Description))
			if t.InputSchema != "" {
				fmt.Fprintf(&b, "  tool_input is a JSON string matching: %s\n", t.InputSchema)
			}
		}
	}

	b.WriteString("\nEXAMPLES:\n\n")
	b.WriteString("User: Please say hello to Bob\n")
	b.WriteString("Response: {\"tool\": \"say_hello\", \"tool_input\": \"Bob\"}\n\n")
	b.WriteString("User: What's the weather?\n")
	b.WriteString("Response: {\"final_answer\": \"I apologize, but I don't have access to weather information.\"}\n\n")

	b.WriteString("RULES:\n")
	b.WriteString("1. Respond with ONLY JSON\n")
	b.WriteString("2. No explanations or extra text\n")
	b.WriteString("3. Use EXACTLY one of these formats:\n")
	b.WriteString("   {\"tool\": \"<tool name>\", \"tool_input\": \"<input>\"}\n")
	b.WriteString("   {\"final_answer\": \"<your response>\"}\n\n")

	fmt.Fprintf(&b, "Current request: %s\n\nJSON response:", request)
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
