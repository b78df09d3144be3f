// Package llm defines the streaming contract between the orchestrator and
// the LLM backends (planner, judge, suggester, reporter). Implementations
// live outside the core; a stub for tests ships alongside the contract.
package llm

import "context"

// Role identifies a conversation message author.
type Role string

// Conversation roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation entry sent to an LLM.
type Message struct {
	Role    Role
	Content string
}

// GenerateInput carries one LLM call.
type GenerateInput struct {
	Messages    []Message
	ModelID     string
	Temperature *float32
	MaxTokens   *int
	// ResponseSchema, when non-empty, asks the backend for structured JSON
	// output conforming to the given JSON schema document.
	ResponseSchema []byte
}

// Chunk is one element of a streamed LLM response.
type Chunk interface{ isChunk() }

// TextChunk carries a response text delta.
type TextChunk struct {
	Content string
}

// ReasoningChunk carries a reasoning/thinking text delta.
type ReasoningChunk struct {
	Content string
}

// UsageChunk carries token accounting, typically the final chunk.
type UsageChunk struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// ErrorChunk signals a mid-stream failure. Retryable errors may be retried
// by the caller; non-retryable ones terminate the call.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (*TextChunk) isChunk()      {}
func (*ReasoningChunk) isChunk() {}
func (*UsageChunk) isChunk()     {}
func (*ErrorChunk) isChunk()     {}

// Client is a streaming LLM backend. Generate returns a channel that the
// implementation closes when the stream ends. Implementations must observe
// ctx and stop emitting promptly once it is cancelled.
type Client interface {
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)
}
