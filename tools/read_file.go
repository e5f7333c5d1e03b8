package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type ReadFileInput struct {
	Path string `json:"path" jsonschema_description:"Path of the file to read."`
}

var ReadFileDefinition = ToolDefinition{
	Name:        "read_file",
	Description: "Read the contents of the file at the given path.",
	InputSchema: ReadFileInputSchema,
	Function:    ReadFile,
}

var ReadFileInputSchema = GenerateSchema[ReadFileInput]()

// ReadFile returns the full file content prefixed with the path. A missing
// file yields a distinct not-found message; any other I/O failure yields a
// generic error message carrying the cause.
func ReadFile(input json.RawMessage) Outcome {
	var in ReadFileInput
	if err := json.Unmarshal(input, &in); err != nil {
		return Errf(ErrInvalidArgs, "Invalid arguments for read_file: %v", err)
	}

	b, err := os.ReadFile(in.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Errf(ErrFileNotFound, "File not found: %s", in.Path)
		}
		return Errf(ErrIO, "Error reading file: %v", err)
	}
	return Ok(fmt.Sprintf("Contents of %s:\n%s", in.Path, b))
}
