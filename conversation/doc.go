// Package conversation holds the per-session turn log and control field.
//
// Model:
//   - Turn: one immutable message, tagged human or assistant.
//   - State: append-only log plus a control value telling the orchestrator
//     what to do next.
//   - Invariant: control is derived from the most recent turn (a fresh human
//     turn awaits a decision; an assistant turn's directive kind decides the
//     rest). It is never set independently.
//
// Persistence stores only the turns; control is re-derived on load.
package conversation
