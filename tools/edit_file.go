package tools

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type EditFileInput struct {
	Path    string `json:"path" jsonschema_description:"Path of the file to edit."`
	OldText string `json:"old_text,omitempty" jsonschema_description:"Text to search for and replace (leave empty to create a new file)."`
	NewText string `json:"new_text" jsonschema_description:"Text that replaces old_text, or the full content for a new file."`
}

var EditFileDefinition = ToolDefinition{
	Name:        "edit_file",
	Description: "Edit a file by replacing old_text with new_text. Creates the file when it does not exist.",
	InputSchema: EditFileInputSchema,
	Function:    EditFile,
}

var EditFileInputSchema = GenerateSchema[EditFileInput]()

// EditFile has two modes, selected by whether the file exists and old_text is
// non-empty:
//
//   - Replace: all occurrences of old_text become new_text. When old_text is
//     absent from the content nothing is written and the outcome says so.
//   - Create: new_text becomes the entire file content, with missing parent
//     directories created first.
func EditFile(input json.RawMessage) Outcome {
	var in EditFileInput
	if err := json.Unmarshal(input, &in); err != nil {
		return Errf(ErrInvalidArgs, "Invalid arguments for edit_file: %v", err)
	}

	if _, err := os.Stat(in.Path); err == nil && in.OldText != "" {
		b, err := os.ReadFile(in.Path)
		if err != nil {
			return Errf(ErrIO, "Error editing file: %v", err)
		}
		content := string(b)
		if !strings.Contains(content, in.OldText) {
			return Errf(ErrTextNotFound, "Text not found in file: %s", in.OldText)
		}
		content = strings.ReplaceAll(content, in.OldText, in.NewText)
		if err := os.WriteFile(in.Path, []byte(content), 0o644); err != nil {
			return Errf(ErrIO, "Error editing file: %v", err)
		}
		return Ok(fmt.Sprintf("Successfully edited %s", in.Path))
	}

	// Create mode: file absent, or old_text empty.
	if dir := filepath.Dir(in.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Errf(ErrIO, "Error editing file: %v", err)
		}
	}
	if err := os.WriteFile(in.Path, []byte(in.NewText), 0o644); err != nil {
		return Errf(ErrIO, "Error editing file: %v", err)
	}
	return Ok(fmt.Sprintf("Successfully created %s", in.Path))
}
