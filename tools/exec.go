package tools

import (
	"encoding/json"
	"fmt"
)

// Execute dispatches one tool call by name against the given definitions.
// Every failure, including an unknown name, bad arguments, or a panicking
// handler, is converted into an error Outcome so the conversation loop can
// always hand something back to the model.
func Execute(defs []ToolDefinition, name string, input json.RawMessage) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Errf(ErrIO, "Error executing %s: %v", name, r)
		}
	}()

	// The model may omit input entirely for tools with no required params.
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}

	var def *ToolDefinition
	for i := range defs {
		if defs[i].Name == name {
			def = &defs[i]
			break
		}
	}
	if def == nil {
		return Errf(ErrUnknownTool, "Unknown tool: %s", name)
	}

	if err := validateInput(def, input); err != nil {
		return Errf(ErrInvalidArgs, "Invalid arguments for %s: %v", name, err)
	}
	return def.Function(input)
}

// validateInput checks the required properties recorded in the definition's
// schema against the incoming JSON object, before any handler runs.
func validateInput(def *ToolDefinition, input json.RawMessage) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(input, &fields); err != nil {
		return fmt.Errorf("input is not a JSON object: %v", err)
	}
	for _, name := range def.InputSchema.Required {
		if _, ok := fields[name]; !ok {
			return fmt.Errorf("missing required field %q", name)
		}
	}
	return nil
}
