package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
)

// Message types on the bridge wire.
const (
	TypeHello      = "hello"
	TypeReady      = "ready"
	TypeToolCall   = "tool_call"
	TypeToolResult = "tool_result"
	TypeError      = "error"
)

// HelloMessage is an optional frame the runtime may send after connecting
// to identify itself. The server logs it and keeps listening.
type HelloMessage struct {
	Type    string `json:"type"`
	Client  string `json:"client,omitempty"`
	Version string `json:"version,omitempty"`
}

// ReadyMessage is sent once after the connection opens and advertises the
// agent's tools to the hosted runtime.
type ReadyMessage struct {
	Type         string       `json:"type"`
	Agent        string       `json:"agent"`
	Instructions string       `json:"instructions,omitempty"`
	Tools        []agent.Tool `json:"tools"`
}

// ToolCallMessage is an inbound tool invocation from the runtime.
type ToolCallMessage struct {
	Type  string          `json:"type"`
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input,omitempty"`
}

// ToolResultMessage is the successful reply to a tool call.
type ToolResultMessage struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Output string `json:"output"`
}

// ErrorMessage is the failure reply to a tool call. Spoken carries the
// text the agent should say; the structured error is for the runtime.
type ErrorMessage struct {
	Type   string       `json:"type"`
	ID     string       `json:"id,omitempty"`
	Spoken string       `json:"spoken,omitempty"`
	Err    *agent.Error `json:"error"`
}

// MessageType reads an inbound frame's envelope type.
func MessageType(raw []byte) (string, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("bad frame: %w", err)
	}
	return envelope.Type, nil
}

// DecodeToolCall parses an inbound frame, accepting only tool_call.
func DecodeToolCall(raw []byte) (*ToolCallMessage, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("bad frame: %w", err)
	}
	if envelope.Type != TypeToolCall {
		return nil, fmt.Errorf("unexpected message type %q", envelope.Type)
	}

	var msg ToolCallMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("bad tool_call frame: %w", err)
	}
	if msg.Name == "" {
		return nil, fmt.Errorf("tool_call missing name")
	}
	return &msg, nil
}
