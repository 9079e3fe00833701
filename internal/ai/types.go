package ai

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"travelchat/internal/session"
)

// Turn is one inbound chat turn: the client's full message history plus
// optional per-turn overrides for model and temperature.
type Turn struct {
	Messages    []openai.ChatCompletionMessage
	Model       string
	Temperature *float32
}

// SessionFn hands the orchestrator the connection's session on demand.
// Sessions are created lazily on the first tool invocation, so the
// orchestrator only resolves one when the model actually requests tools.
type SessionFn func() *session.Session

// Completer is the LLM collaborator boundary. *openai.Client satisfies it;
// tests substitute a scripted fake.
type Completer interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}
