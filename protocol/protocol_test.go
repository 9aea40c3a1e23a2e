package protocol_test

import (
	"strings"
	"testing"

	"github.com/onehop-ai/onehop/protocol"
)

func TestEncodeDirective_ToolCall(t *testing.T) {
	got, err := protocol.EncodeDirective(protocol.ToolCall{Name: "say_hello", Input: "Bob"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"tool":"say_hello","tool_input":"Bob"}`
	if got != want {
		t.Fatalf("encoded tool call: got %s want %s", got, want)
	}
}

func TestEncodeDirective_FinalAnswer(t *testing.T) {
	got, err := protocol.EncodeDirective(protocol.FinalAnswer{Text: "Hello, Bob!"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"final_answer":"Hello, Bob!"}`
	if got != want {
		t.Fatalf("encoded final answer: got %s want %s", got, want)
	}
}

func TestDecode_ToolCall_RoundTrip(t *testing.T) {
	in := protocol.ToolCall{Name: "say_hello", Input: "Bob"}
	raw, err := protocol.EncodeDirective(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	d, err := protocol.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, ok := d.(protocol.ToolCall)
	if !ok {
		t.Fatalf("expected ToolCall, got %T", d)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestDecode_FinalAnswer(t *testing.T) {
	d, err := protocol.Decode(`{"final_answer": "I don't have access to weather information."}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	fa, ok := d.(protocol.FinalAnswer)
	if !ok {
		t.Fatalf("expected FinalAnswer, got %T", d)
	}
	if fa.Text != "I don't have access to weather information." {
		t.Fatalf("unexpected text: %q", fa.Text)
	}
}

func TestDecode_TrimsSurroundingWhitespace(t *testing.T) {
	d, err := protocol.Decode("  \n\t{\"final_answer\": \"ok\"}\n  ")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fa, ok := d.(protocol.FinalAnswer); !ok || fa.Text != "ok" {
		t.Fatalf("expected FinalAnswer{ok}, got %#v", d)
	}
}

func TestDecode_Rejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   \n"},
		{"invalid syntax", `sure, here's JSON: {tool: say_hello}`},
		{"prose around object", `here you go {"final_answer": "hi"} thanks`},
		{"array", `[{"final_answer": "hi"}]`},
		{"bare string", `"final_answer"`},
		{"number", `42`},
		{"empty object", `{}`},
		{"unknown key", `{"answer": "hi"}`},
		{"extra key", `{"final_answer": "hi", "confidence": "high"}`},
		{"missing tool_input", `{"tool": "say_hello"}`},
		{"missing tool", `{"tool_input": "Bob"}`},
		{"mixed shapes", `{"tool": "say_hello", "tool_input": "Bob", "final_answer": "hi"}`},
		{"non-string tool", `{"tool": 1, "tool_input": "Bob"}`},
		{"non-string tool_input", `{"tool": "say_hello", "tool_input": {"name": "Bob"}}`},
		{"non-string final_answer", `{"final_answer": 42}`},
		{"null final_answer", `{"final_answer": null}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := protocol.Decode(tc.raw)
			if err == nil {
				t.Fatalf("expected error, got directive %#v", d)
			}
			perr, ok := err.(*protocol.Error)
			if !ok {
				t.Fatalf("expected *protocol.Error, got %T: %v", err, err)
			}
			if perr.Reason == "" {
				t.Fatal("expected a non-empty reason")
			}
			if d != nil {
				t.Fatalf("decode must not partially succeed, got %#v", d)
			}
		})
	}
}

func TestBuildPrompt_EmbedsRequestVerbatim(t *testing.T) {
	request := "Please say hello to Bob (and don't forget the exclamation mark)"
	prompt := protocol.BuildPrompt(request, nil)
	if !strings.Contains(prompt, "Current request: "+request) {
		t.Fatalf("prompt missing verbatim request:\n%s", prompt)
	}
}

func TestBuildPrompt_ListsTools(t *testing.T) {
	infos := []protocol.ToolInfo{
		{Name: "say_hello", Description: "Says hello to the provided name."},
		{Name: "calculator", Description: "Evaluates arithmetic.\nSecond line is not listed.", InputSchema: `{"type":"object"}`},
	}
	prompt := protocol.BuildPrompt("hi", infos)

	if !strings.Contains(prompt, "say_hello: Says hello to the provided name.") {
		t.Fatalf("prompt missing say_hello listing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "calculator: Evaluates arithmetic.") {
		t.Fatalf("prompt missing calculator listing:\n%s", prompt)
	}
	if strings.Contains(prompt, "Second line") {
		t.Fatalf("descriptions should be clipped to one line:\n%s", prompt)
	}
	if !strings.Contains(prompt, `{"type":"object"}`) {
		t.Fatalf("prompt missing input schema:\n%s", prompt)
	}
	// Catalog order must follow the given order.
	if strings.Index(prompt, "say_hello:") > strings.Index(prompt, "calculator:") {
		t.Fatalf("tool catalog order changed:\n%s", prompt)
	}
}

func TestBuildPrompt_ShowsBothDirectiveShapes(t *testing.T) {
	prompt := protocol.BuildPrompt("hi", nil)
	if !strings.Contains(prompt, `{"tool": "say_hello", "tool_input": "Bob"}`) {
		t.Fatalf("prompt missing tool call example:\n%s", prompt)
	}
	if !strings.Contains(prompt, `{"final_answer":`) {
		t.Fatalf("prompt missing final answer example:\n%s", prompt)
	}
}
