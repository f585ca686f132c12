// Package agent is the tool-dispatch boundary between the hosted
// conversational runtime (STT, LLM, TTS, turn detection) and the local
// logic cores. The runtime invokes named, schema-typed tools; everything
// here runs synchronously and returns plain text for the agent to speak.
package agent

// Agent is a voice-agent definition: a persona prompt plus its tools.
// The speech pipeline itself lives in the hosted runtime and is out of
// scope; an Agent only describes what the runtime may call.
type Agent struct {
	Name         string
	Instructions string
	Tools        *ToolSet
}
