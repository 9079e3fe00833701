// Package tools provides the catalog of callable tools exposed to the chat
// model and the executor that dispatches the model's tool-call intents.
package tools

import (
	"context"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"travelchat/internal/session"
)

type Tool interface {
	Name() string
	Description() string
	Parameters() jsonschema.Definition
	// Execute runs the tool against the session. Expected failures come back
	// as a failure Result; a non-nil error signals a fault (provider outage,
	// bug) that the executor converts into a failure Result itself.
	Execute(ctx context.Context, sess *session.Session, args string) (Result, error)
	ToOpenAITool() openai.Tool
}

// OrdinalSpec declares the 1-based list parameter of a tool that references
// offers by position. Param is the argument name carrying the number, Slot
// the session list it indexes, Noun the word used in validation messages.
type OrdinalSpec struct {
	Param string
	Slot  session.Slot
	Noun  string
}

// OrdinalTool is implemented by tools whose arguments reference a session
// list by 1-based position. The executor validates the ordinal against the
// current list before the handler runs.
type OrdinalTool interface {
	Tool
	Ordinal() OrdinalSpec
}

// SearchTool is implemented by tools that produce an offer list. The
// executor persists Result.Offers into the declared slot, overwriting any
// prior list, before the result is returned.
type SearchTool interface {
	Tool
	ResultSlot() session.Slot
}

type BaseTool struct {
	ToolName        string
	ToolDescription string
	ToolParameters  jsonschema.Definition
}

func (b *BaseTool) Name() string {
	return b.ToolName
}

func (b *BaseTool) Description() string {
	return b.ToolDescription
}

func (b *BaseTool) Parameters() jsonschema.Definition {
	return b.ToolParameters
}

func (b *BaseTool) ToOpenAITool() openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        b.Name(),
			Description: b.Description(),
			Parameters:  b.Parameters(),
		},
	}
}
