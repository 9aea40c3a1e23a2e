package conversation

import (
	"github.com/onehop-ai/onehop/protocol"
)

// Role tags a turn's author.
type Role string

const (
	RoleHuman     Role = "human"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the log. Turns are immutable once appended.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Control tells the orchestrator what to do next for the current turn cycle.
type Control int

const (
	// Terminal: nothing pending; a new human turn starts the next cycle.
	Terminal Control = iota
	// AwaitingDecision: a human turn was appended and no decision exists yet.
	AwaitingDecision
	// ReadyForTool: the last assistant turn is a tool call awaiting execution.
	ReadyForTool
)

func (c Control) String() string {
	switch c {
	case AwaitingDecision:
		return "awaiting_decision"
	case ReadyForTool:
		return "ready_for_tool"
	default:
		return "terminal"
	}
}

// State is one session's conversation: the append-only turn log and the
// control field. A State is owned by its caller; the orchestrator mutates it
// during a step, and concurrent sessions use independent instances.
type State struct {
	turns   []Turn
	control Control
}

// NewState returns an empty session. Control starts Terminal: there is
// nothing to decide until a human turn arrives.
func NewState() *State {
	return &State{control: Terminal}
}

// AppendHuman appends a human turn and marks the state as awaiting a
// decision for it.
func (s *State) AppendHuman(text string) {
	s.turns = append(s.turns, Turn{Role: RoleHuman, Content: text})
	s.control = AwaitingDecision
}

// AppendAssistant encodes the directive into an assistant turn. Control is
// derived from the directive kind, keeping it in lockstep with the log.
func (s *State) AppendAssistant(d protocol.Directive) error {
	content, err := protocol.EncodeDirective(d)
	if err != nil {
		return err
	}
	s.turns = append(s.turns, Turn{Role: RoleAssistant, Content: content})
	s.control = controlFor(d)
	return nil
}

func controlFor(d protocol.Directive) Control {
	if _, ok := d.(protocol.ToolCall); ok {
		return ReadyForTool
	}
	return Terminal
}

// Control reports what the orchestrator should do next.
func (s *State) Control() Control { return s.control }

// Len reports the number of turns.
func (s *State) Len() int { return len(s.turns) }

// Turns returns a copy of the log.
func (s *State) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// LastTurn returns the most recent turn.
func (s *State) LastTurn() (Turn, bool) {
	if len(s.turns) == 0 {
		return Turn{}, false
	}
	return s.turns[len(s.turns)-1], true
}

// LatestHuman returns the content of the most recent human turn.
func (s *State) LatestHuman() (string, bool) {
	for i := len(s.turns) - 1; i >= 0; i-- {
		if s.turns[i].Role == RoleHuman {
			return s.turns[i].Content, true
		}
	}
	return "", false
}
