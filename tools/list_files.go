package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

type ListFilesInput struct {
	Path string `json:"path,omitempty" jsonschema_description:"Directory path to list (defaults to the current directory)."`
}

var ListFilesDefinition = ToolDefinition{
	Name:        "list_files",
	Description: "List all files and directories at the given path (non-recursive).",
	InputSchema: ListFilesInputSchema,
	Function:    ListFiles,
}

var ListFilesInputSchema = GenerateSchema[ListFilesInput]()

// ListFiles lists immediate children of a directory, sorted lexicographically
// by name and tagged as [dir] or [file]. An empty directory is a success
// outcome with an informative message, not an error.
func ListFiles(input json.RawMessage) Outcome {
	var in ListFilesInput
	if err := json.Unmarshal(input, &in); err != nil {
		return Errf(ErrInvalidArgs, "Invalid arguments for list_files: %v", err)
	}

	dir := in.Path
	if dir == "" {
		dir = "."
	}

	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Errf(ErrPathNotFound, "Path not found: %s", dir)
		}
		return Errf(ErrIO, "Error listing files: %v", err)
	}
	if len(entries) == 0 {
		return Ok(fmt.Sprintf("Empty directory: %s", dir))
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, fmt.Sprintf("Contents of %s:", dir))
	for _, e := range entries {
		if e.IsDir() {
			lines = append(lines, fmt.Sprintf("[dir]  %s/", e.Name()))
		} else {
			lines = append(lines, fmt.Sprintf("[file] %s", e.Name()))
		}
	}
	return Ok(strings.Join(lines, "\n"))
}
