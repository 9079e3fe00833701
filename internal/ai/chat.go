package ai

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"

	"travelchat/internal/ai/tools"
	"travelchat/internal/logger"
)

// Reply synthesized when the completion API itself is unreachable. The
// turn ends normally and the connection stays open for the next one.
const providerErrorReply = "Sorry, I encountered an error processing your request. Please try again."

// Orchestrator drives one chat turn through the completion API: detect
// tool-call intents, execute them against the session, feed the results
// back, and produce the final assistant reply.
type Orchestrator struct {
	completer Completer
	registry  *tools.Registry
	executor  *tools.Executor
}

func NewOrchestrator(completer Completer, registry *tools.Registry) *Orchestrator {
	toolTimeout := time.Duration(GetConfig().ToolTimeoutSeconds) * time.Second
	return &Orchestrator{
		completer: completer,
		registry:  registry,
		executor:  tools.NewExecutor(registry, toolTimeout),
	}
}

// prepareMessages strips any client-supplied system message and installs
// the fixed system prompt at the front, so the operating instructions can
// never be overridden from the wire.
func prepareMessages(inbound []openai.ChatCompletionMessage) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(inbound)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: GetConfig().SystemPrompt,
	})

	for _, msg := range inbound {
		if msg.Role == openai.ChatMessageRoleSystem {
			logger.Warnf("Dropping client-supplied system message")
			continue
		}
		messages = append(messages, msg)
	}

	return messages
}

func (o *Orchestrator) buildRequest(messages []openai.ChatCompletionMessage, turn Turn) openai.ChatCompletionRequest {
	cfg := GetConfig()

	model := cfg.Model
	if turn.Model != "" {
		model = turn.Model
	}

	temperature := cfg.Temperature
	if turn.Temperature != nil {
		temperature = *turn.Temperature
	}

	request := openai.ChatCompletionRequest{
		Model:       MapModelName(model),
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   cfg.MaxResponseTokens,
	}

	if cfg.EnableToolCalls {
		if availableTools := o.registry.OpenAITools(); len(availableTools) > 0 {
			request.Tools = availableTools
		}
	}

	return request
}

func (o *Orchestrator) complete(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionMessage, error) {
	callCtx, cancel := CreateContext(ctx)
	defer cancel()

	resp, err := o.completer.CreateChatCompletion(callCtx, request)
	if err != nil {
		return openai.ChatCompletionMessage{}, err
	}
	if len(resp.Choices) == 0 {
		logger.Warnf("Completion response contained no choices")
		return openai.ChatCompletionMessage{}, nil
	}

	return resp.Choices[0].Message, nil
}

// ProcessTurn runs one inbound turn to completion and returns the
// assistant's reply. It never returns an error: provider and tool failures
// are folded into the reply so the connection survives every turn.
func (o *Orchestrator) ProcessTurn(ctx context.Context, sessionFn SessionFn, turn Turn) string {
	if o.completer == nil {
		return "Chat is not available (missing OPENAI_API_KEY)."
	}

	messages := prepareMessages(turn.Messages)

	request := o.buildRequest(messages, turn)
	assistantMsg, err := o.complete(ctx, request)
	if err != nil {
		logger.Errorf("OpenAI API error: %v", err)
		return providerErrorReply
	}

	if len(assistantMsg.ToolCalls) == 0 {
		return assistantMsg.Content
	}

	logger.AIDebugf("Model requested %d tool calls", len(assistantMsg.ToolCalls))
	messages = append(messages, assistantMsg)

	sess := sessionFn()

	// Execute intents sequentially in the order the model emitted them;
	// later calls may depend on session state mutated by earlier ones.
	for _, toolCall := range assistantMsg.ToolCalls {
		result := o.executor.Execute(ctx, sess, toolCall.Function.Name, toolCall.Function.Arguments)

		messages = append(messages, openai.ChatCompletionMessage{
			Role:       openai.ChatMessageRoleTool,
			Content:    result.Content(),
			Name:       toolCall.Function.Name,
			ToolCallID: toolCall.ID,
		})
	}

	// Exactly one follow-up completion per turn. Known limitation: if the
	// follow-up response chains another tool request it is logged and
	// skipped, and its content returned as-is. Looping until the model
	// stops requesting tools (with a round cap) is the alternative.
	request = o.buildRequest(messages, turn)
	finalMsg, err := o.complete(ctx, request)
	if err != nil {
		logger.Errorf("OpenAI API error on follow-up: %v", err)
		return providerErrorReply
	}

	if len(finalMsg.ToolCalls) > 0 {
		logger.Warnf("Model requested %d further tool calls after the follow-up; not executed", len(finalMsg.ToolCalls))
	}

	return finalMsg.Content
}
