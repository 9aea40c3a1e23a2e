// Package protocol implements the JSON decision format exchanged with the
// oracle.
//
// Includes:
//   - Directive: closed union of ToolCall and FinalAnswer.
//   - Decode: strict reply validation (exact key sets, string values only).
//   - BuildPrompt: instruction payload with tool catalog, worked examples,
//     format rules, and the verbatim current request.
//   - Invariant: a reply either decodes to exactly one Directive or fails
//     with *Error; there is no partial success.
package protocol
