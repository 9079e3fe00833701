package server

import (
	"github.com/sashabaranov/go-openai"
)

// Frame types emitted to the client
const (
	frameTypeAck          = "message_received"
	frameTypeChatResponse = "chat_response"
)

// InboundFrame is one chat turn from the client: its full message history
// plus optional model and temperature overrides.
type InboundFrame struct {
	Messages    []openai.ChatCompletionMessage `json:"messages"`
	Model       string                         `json:"model,omitempty"`
	Temperature *float32                       `json:"temperature,omitempty"`
}

// OutboundFrame is what the server writes back: an ack while the turn is
// being processed, then the assistant's reply.
type OutboundFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Role    string `json:"role,omitempty"`
}
