package tools

// Registry returns all tool definitions wired for the agent, in the order
// they are presented to the model.
func Registry() []ToolDefinition {
	return []ToolDefinition{ReadFileDefinition, ListFilesDefinition, EditFileDefinition}
}
