package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"travelchat/internal/session"
)

// WebSearchArgs represents the arguments for the web search tool
type WebSearchArgs struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// WebSearchTool answers general lookups. Results are mocked; wiring a real
// search API only touches this file.
type WebSearchTool struct {
	BaseTool
}

func NewWebSearchTool() *WebSearchTool {
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"query": {
				Type:        jsonschema.String,
				Description: "The search query",
			},
			"limit": {
				Type:        jsonschema.Integer,
				Description: "Maximum number of results to return (default 3)",
			},
		},
		Required: []string{"query"},
	}

	return &WebSearchTool{
		BaseTool: BaseTool{
			ToolName:        "search_web",
			ToolDescription: "Search the web for information on a topic",
			ToolParameters:  params,
		},
	}
}

func (t *WebSearchTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	var a WebSearchArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return Failuref(KindArgumentParse, "invalid search arguments: %s", err), nil
	}
	if a.Query == "" {
		return Failure(KindArgumentParse, "query is required"), nil
	}
	if a.Limit <= 0 || a.Limit > 10 {
		a.Limit = 3
	}

	slug := strings.ReplaceAll(a.Query, " ", "_")
	results := []map[string]string{
		{
			"title":   fmt.Sprintf("%s - Primary result", a.Query),
			"snippet": fmt.Sprintf("This is information about %s...", a.Query),
			"url":     fmt.Sprintf("https://en.wikipedia.org/wiki/%s", slug),
		},
		{
			"title":   fmt.Sprintf("%s - Related topic", a.Query),
			"snippet": fmt.Sprintf("Related information to %s...", a.Query),
			"url":     fmt.Sprintf("https://en.wikipedia.org/wiki/Related_%s", slug),
		},
	}
	if a.Limit < len(results) {
		results = results[:a.Limit]
	}

	return Success(map[string]any{
		"query":   a.Query,
		"results": results,
	}), nil
}
