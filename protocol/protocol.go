package protocol

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Directive is the decoded intent of an assistant turn: either a request to
// invoke a named tool, or a final answer for the user. No other shape exists;
// a reply that fits neither is a protocol violation, not a third variant.
type Directive interface {
	directive()
}

// ToolCall asks for one tool invocation. The name is a weak reference,
// resolved against the registry at execution time.
type ToolCall struct {
	Name  string
	Input string
}

// FinalAnswer ends the turn with text for the user.
type FinalAnswer struct {
	Text string
}

func (ToolCall) directive()    {}
func (FinalAnswer) directive() {}

// Error reports an oracle reply that does not match either directive shape.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return "protocol: " + e.Reason }

// Reply keys recognised by the decoder.
const (
	keyTool        = "tool"
	keyToolInput   = "tool_input"
	keyFinalAnswer = "final_answer"
)

// EncodeDirective renders a directive as its canonical JSON object:
// {"tool":...,"tool_input":...} or {"final_answer":...}.
func EncodeDirective(d Directive) (string, error) {
	switch v := d.(type) {
	case ToolCall:
		out, err := sjson.Set("", keyTool, v.Name)
		if err != nil {
			return "", err
		}
		return sjson.Set(out, keyToolInput, v.Input)
	case FinalAnswer:
		return sjson.Set("", keyFinalAnswer, v.Text)
	default:
		return "", fmt.Errorf("protocol: unsupported directive %T", d)
	}
}

// Decode parses a raw oracle reply into a Directive. After trimming
// surrounding whitespace the reply must be a single JSON object whose key
// set is exactly {tool, tool_input} or {final_answer}, all values strings.
// Prose around the object, extra or missing keys, and non-string values all
// yield *Error.
func Decode(raw string) (Directive, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, &Error{Reason: "empty reply"}
	}
	if !gjson.Valid(s) {
		return nil, &Error{Reason: "reply is not valid JSON"}
	}
	root := gjson.Parse(s)
	if !root.IsObject() {
		return nil, &Error{Reason: "reply is not a JSON object"}
	}

	fields := map[string]gjson.Result{}
	var badKey string
	root.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		switch k {
		case keyTool, keyToolInput, keyFinalAnswer:
			fields[k] = value
		default:
			badKey = k
			return false
		}
		return true
	})
	if badKey != "" {
		return nil, &Error{Reason: fmt.Sprintf("unexpected key %q", badKey)}
	}

	if fa, ok := fields[keyFinalAnswer]; ok {
		if len(fields) != 1 {
			return nil, &Error{Reason: "final_answer cannot be combined with tool keys"}
		}
		if fa.Type != gjson.String {
			return nil, &Error{Reason: "final_answer must be a string"}
		}
		return FinalAnswer{Text: fa.String()}, nil
	}

	name, okName := fields[keyTool]
	input, okInput := fields[keyToolInput]
	if !okName || !okInput {
		return nil, &Error{Reason: "reply must contain final_answer, or both tool and tool_input"}
	}
	if name.Type != gjson.String || input.Type != gjson.String {
		return nil, &Error{Reason: "tool and tool_input must be strings"}
	}
	return ToolCall{Name: name.String(), Input: input.String()}, nil
}
