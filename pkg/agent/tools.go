package agent

import (
	"context"
	"encoding/json"
)

// Tool describes a callable exposed to the hosted conversational runtime.
type Tool struct {
	Type        string      `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	InputSchema *JSONSchema `json:"input_schema,omitempty"`
}

const ToolTypeFunction = "function"

// ToolHandler executes a tool call. The returned string is surfaced to the
// dialogue engine verbatim; errors should be *Error values so the dispatcher
// can convert them into spoken text.
type ToolHandler func(ctx context.Context, input json.RawMessage) (string, error)

// MakeTool creates a tool definition plus handler from a typed function.
// The input schema is generated from T's struct tags.
func MakeTool[T any](name, description string, fn func(context.Context, T) (string, error)) (Tool, ToolHandler) {
	handler := func(ctx context.Context, raw json.RawMessage) (string, error) {
		var input T
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &input); err != nil {
				return "", NewInvalidInputError(name, err)
			}
		}
		return fn(ctx, input)
	}

	return Tool{
		Type:        ToolTypeFunction,
		Name:        name,
		Description: description,
		InputSchema: SchemaFor[T](),
	}, handler
}

// ToolSet is a collection of tools with their handlers.
type ToolSet struct {
	tools    []Tool
	handlers map[string]ToolHandler
}

// NewToolSet creates an empty tool set.
func NewToolSet() *ToolSet {
	return &ToolSet{handlers: make(map[string]ToolHandler)}
}

// Add registers a tool with its handler. Returns the set for chaining.
func (ts *ToolSet) Add(tool Tool, handler ToolHandler) *ToolSet {
	ts.tools = append(ts.tools, tool)
	if handler != nil && tool.Name != "" {
		ts.handlers[tool.Name] = handler
	}
	return ts
}

// AddFunc registers a typed function tool on the set.
func AddFunc[T any](ts *ToolSet, name, description string, fn func(context.Context, T) (string, error)) *ToolSet {
	tool, handler := MakeTool(name, description, fn)
	return ts.Add(tool, handler)
}

// Tools returns all tool definitions in registration order.
func (ts *ToolSet) Tools() []Tool {
	return ts.tools
}

// Handler returns the handler registered for name.
func (ts *ToolSet) Handler(name string) (ToolHandler, bool) {
	h, ok := ts.handlers[name]
	return h, ok
}

// Names returns the registered tool names in registration order.
func (ts *ToolSet) Names() []string {
	names := make([]string, len(ts.tools))
	for i, t := range ts.tools {
		names[i] = t.Name
	}
	return names
}
