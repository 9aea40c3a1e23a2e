// Package telemetry emits structured JSONL events for each orchestrator
// boundary (oracle call, decision, protocol error, tool execution).
//
// Events go to .agent/events.jsonl when ONEHOP_OBSERVE_JSON=1. Diagnostic
// causes belong here, never in the conversation transcript.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	eventsDir  = ".agent"
	eventsFile = "events.jsonl"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// Emit appends a single JSON event line when observation is enabled. The
// event name and a timestamp are added alongside the caller's fields; the
// caller's map is never mutated.
func Emit(name string, fields map[string]any) {
	if !ObserveEnabled() {
		return
	}

	if err := os.MkdirAll(eventsDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: mkdir %s: %v\n", eventsDir, err)
		return
	}
	path := filepath.Join(eventsDir, eventsFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	// One logger per emission keeps the file handle tied to the current
	// working directory, which tests change per case.
	lg := zerolog.New(f).With().Timestamp().Logger()
	lg.Log().Fields(fields).Str("event", name).Send()
}
