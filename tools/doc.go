// Package tools defines tool contracts and the registry that executes them.
//
// Includes:
//   - Spec: name, description, optional JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Registry: insertion-ordered lookup and validated execution; blank
//     input never reaches a tool body, and tool failures always come back
//     wrapped as *ToolError.
//   - Built-ins: say_hello, current_time, calculator.
package tools
