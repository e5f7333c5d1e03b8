// Package logging builds the session log handle.
//
// The log is a side channel, not part of the conversational contract: user
// input, tool invocations with their arguments, and truncated tool result
// previews are appended to a file with timestamps.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// previewLimit caps tool result text recorded in the log.
const previewLimit = 500

// New returns a logger appending JSON lines to the file at path. The caller
// owns the handle: construct at startup, Sync at shutdown.
func New(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// Preview clamps s to previewLimit runes for log output, appending an
// ellipsis when truncated.
func Preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLimit {
		return s
	}
	return string(r[:previewLimit]) + "..."
}
