package conversation

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/onehop-ai/onehop/protocol"
)

// Save writes the transcript as indented JSON. Only the turns are stored;
// control is derivable and re-derived on load.
func Save(path string, s *State) error {
	b, err := json.MarshalIndent(s.turns, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Load reads a transcript from path. A missing file yields an empty state.
func Load(path string) (*State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewState(), nil
		}
		return nil, err
	}
	var turns []Turn
	if err := json.Unmarshal(b, &turns); err != nil {
		return nil, err
	}
	return &State{turns: turns, control: deriveControl(turns)}, nil
}

// deriveControl reconstructs the control field from the end of the log, so a
// persisted transcript cannot desynchronise the state machine. An assistant
// turn that no longer decodes reads as terminal.
func deriveControl(turns []Turn) Control {
	if len(turns) == 0 {
		return Terminal
	}
	last := turns[len(turns)-1]
	if last.Role == RoleHuman {
		return AwaitingDecision
	}
	d, err := protocol.Decode(last.Content)
	if err != nil {
		return Terminal
	}
	return controlFor(d)
}
