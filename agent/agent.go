package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/onehop-ai/onehop/conversation"
	"github.com/onehop-ai/onehop/internal/telemetry"
	"github.com/onehop-ai/onehop/protocol"
	"github.com/onehop-ai/onehop/tools"
)

// Oracle is the external decision maker consulted once per step. Both
// failures and timeouts are treated identically by the orchestrator.
type Oracle interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// ErrNotAwaitingDecision is returned by Step when the state has no fresh
// human turn to decide on. This is caller misuse, not an oracle or tool
// failure, so it surfaces as an error instead of a safe-error turn.
var ErrNotAwaitingDecision = errors.New("agent: state is not awaiting a decision")

// Canned answers appended when a phase fails. Causes go to telemetry, never
// into the transcript.
const (
	defaultDecisionErrorAnswer = "I encountered an error while processing your request."
	defaultToolErrorAnswer     = "I encountered an error while executing the tool."
)

// Agent orchestrates one oracle decision and at most one tool execution per
// human turn. One Step per State may be in flight at a time; independent
// States are safe to step concurrently.
type Agent struct {
	oracle  Oracle
	reg     *tools.Registry
	timeout time.Duration

	decisionErrorAnswer string
	toolErrorAnswer     string
}

type Option func(*Agent)

// WithTimeout bounds each Step; an oracle or tool call still running when
// the deadline passes is aborted and the turn ends with a safe-error answer.
func WithTimeout(d time.Duration) Option {
	return func(a *Agent) { a.timeout = d }
}

// WithSafeAnswers overrides the canned failure answers for the decision and
// tool phases. Empty strings keep the defaults.
func WithSafeAnswers(decision, tool string) Option {
	return func(a *Agent) {
		if decision != "" {
			a.decisionErrorAnswer = decision
		}
		if tool != "" {
			a.toolErrorAnswer = tool
		}
	}
}

func New(oracle Oracle, reg *tools.Registry, opts ...Option) *Agent {
	a := &Agent{
		oracle:              oracle,
		reg:                 reg,
		decisionErrorAnswer: defaultDecisionErrorAnswer,
		toolErrorAnswer:     defaultToolErrorAnswer,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Step drives one full turn cycle and is the only entry point: decide, then
// execute the tool if one was requested, then stop. The state is always
// Terminal when Step returns nil. The only error Step returns is
// ErrNotAwaitingDecision.
func (a *Agent) Step(ctx context.Context, st *conversation.State) error {
	if st.Control() != conversation.AwaitingDecision {
		return ErrNotAwaitingDecision
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	if _, ok := telemetry.TurnIDFromContext(ctx); !ok {
		ctx = telemetry.WithTurnID(ctx, fmt.Sprintf("turn-%d", time.Now().UnixNano()))
	}

	a.decide(ctx, st)
	if st.Control() == conversation.ReadyForTool {
		a.executeTool(ctx, st)
	}
	return nil
}

// decide asks the oracle for the next directive and appends it. Any failure
// along the way terminates the turn with the decision safe answer.
func (a *Agent) decide(ctx context.Context, st *conversation.State) {
	turnID, _ := telemetry.TurnIDFromContext(ctx)

	request, ok := st.LatestHuman()
	if !ok {
		// Unreachable through Step: awaiting-decision implies a human turn.
		a.terminate(st, a.decisionErrorAnswer)
		return
	}
	prompt := protocol.BuildPrompt(request, a.reg.Infos())

	start := time.Now()
	raw, err := a.oracle.Invoke(ctx, prompt)
	telemetry.Emit("oracle_call", map[string]any{
		"turn_id":     turnID,
		"duration_ms": time.Since(start).Milliseconds(),
		"prompt_size": len(prompt),
		"reply_size":  len(raw),
		"error":       errString(err),
	})
	if err != nil {
		a.terminate(st, a.decisionErrorAnswer)
		return
	}

	d, err := protocol.Decode(raw)
	if err != nil {
		telemetry.Emit("protocol_error", map[string]any{
			"turn_id": turnID,
			"error":   err.Error(),
		})
		a.terminate(st, a.decisionErrorAnswer)
		return
	}
	if err := st.AppendAssistant(d); err != nil {
		a.terminate(st, a.decisionErrorAnswer)
		return
	}
	telemetry.Emit("decision", map[string]any{
		"turn_id": turnID,
		"kind":    directiveKind(d),
	})
}

// executeTool re-decodes the pending tool call and dispatches it through
// the registry. Every failure path still terminates the turn.
func (a *Agent) executeTool(ctx context.Context, st *conversation.State) {
	turnID, _ := telemetry.TurnIDFromContext(ctx)

	call, ok := pendingToolCall(st)
	if !ok {
		// Re-validation failed; handled like any other protocol failure.
		telemetry.Emit("protocol_error", map[string]any{
			"turn_id": turnID,
			"error":   "ready-for-tool state without a decodable tool call",
		})
		a.terminate(st, a.decisionErrorAnswer)
		return
	}

	start := time.Now()
	out, err := a.reg.Execute(ctx, call.Name, call.Input)
	telemetry.Emit("tool_exec", map[string]any{
		"turn_id":     turnID,
		"tool_name":   call.Name,
		"duration_ms": time.Since(start).Milliseconds(),
		"input_size":  len(call.Input),
		"output_size": len(out),
		"error":       errString(err),
	})
	if err != nil {
		a.terminate(st, a.toolErrorAnswer)
		return
	}
	a.terminate(st, out)
}

// pendingToolCall re-decodes the latest assistant turn into its tool call.
func pendingToolCall(st *conversation.State) (protocol.ToolCall, bool) {
	last, ok := st.LastTurn()
	if !ok || last.Role != conversation.RoleAssistant {
		return protocol.ToolCall{}, false
	}
	d, err := protocol.Decode(last.Content)
	if err != nil {
		return protocol.ToolCall{}, false
	}
	call, ok := d.(protocol.ToolCall)
	return call, ok
}

// terminate appends a final answer; the turn cycle always ends here.
func (a *Agent) terminate(st *conversation.State, text string) {
	// Encoding a FinalAnswer cannot fail.
	_ = st.AppendAssistant(protocol.FinalAnswer{Text: text})
}

func directiveKind(d protocol.Directive) string {
	if _, ok := d.(protocol.ToolCall); ok {
		return "tool_call"
	}
	return "final_answer"
}

func errString(err error) any {
	if err == nil {
		return nil
	}
	return err.Error()
}
