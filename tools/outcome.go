package tools

import "fmt"

// ErrorKind classifies a failed tool execution. The model only ever sees the
// outcome text; the kind exists so callers and tests need not parse prose.
type ErrorKind string

const (
	ErrUnknownTool  ErrorKind = "ERR_UNKNOWN_TOOL"
	ErrInvalidArgs  ErrorKind = "ERR_INVALID_ARGS"
	ErrFileNotFound ErrorKind = "ERR_FILE_NOT_FOUND"
	ErrPathNotFound ErrorKind = "ERR_PATH_NOT_FOUND"
	ErrTextNotFound ErrorKind = "ERR_TEXT_NOT_FOUND"
	ErrIO           ErrorKind = "ERR_IO"
)

// Outcome is the result of executing one tool call. Success and failure both
// carry text destined for the model; Kind is empty on success.
type Outcome struct {
	Kind    ErrorKind
	Content string
}

// IsError reports whether the outcome represents a failure.
func (o Outcome) IsError() bool { return o.Kind != "" }

// Ok wraps a successful result text.
func Ok(text string) Outcome { return Outcome{Content: text} }

// Errf builds a failure outcome with a formatted message.
func Errf(kind ErrorKind, format string, args ...any) Outcome {
	return Outcome{Kind: kind, Content: fmt.Sprintf(format, args...)}
}
