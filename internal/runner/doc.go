// Package runner coordinates message exchange with the Anthropic Messages API
// and dispatches tool calls.
//
// Invariants:
//   - exactly one assistant message is appended to the transcript per model call;
//   - tool_use and the corresponding tool_result stay adjacent within a turn,
//     with results appended as a single user message in response order;
//   - tool failures never abort a turn; they travel back to the model as
//     tool_result content.
//
// Flow:
//
//	user(text) -> assistant(tool_use) -> user(tool_result) -> assistant(text)
package runner
