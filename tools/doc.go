// Package tools defines the tool catalog and executes tool calls.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive the input schema from a Go struct.
//   - Outcome: tagged result of one execution; text for the model either way.
//   - Execute: dispatch by name with argument validation; never panics or
//     returns a Go error past its boundary.
//   - File tools: read_file, list_files (non-recursive), edit_file.
package tools
