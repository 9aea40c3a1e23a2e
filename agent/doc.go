// Package agent drives one turn cycle: a single oracle decision followed by
// at most one tool execution, always ending in a terminal final answer.
//
// Invariants:
//   - Step never surfaces an oracle, protocol, or tool failure as an error;
//     each one terminates the turn with a canned, user-safe answer while the
//     cause goes to telemetry.
//   - Callers never observe the intermediate ready-for-tool state; the
//     decide and execute phases run inside one Step call.
//   - A tool result never feeds back into a new decision; continuing
//     requires a fresh human turn.
package agent
