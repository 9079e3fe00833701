package tools

import (
	"context"
	"encoding/json"

	"github.com/sashabaranov/go-openai/jsonschema"

	"travelchat/internal/session"
)

// WeatherArgs represents the arguments for the weather tool
type WeatherArgs struct {
	Location string `json:"location"`
	Unit     string `json:"unit,omitempty"`
}

// WeatherTool reports current weather for a location. The provider call is
// mocked; a real deployment would swap in a weather API client here.
type WeatherTool struct {
	BaseTool
}

func NewWeatherTool() *WeatherTool {
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"location": {
				Type:        jsonschema.String,
				Description: "The city and state, e.g. San Francisco, CA",
			},
			"unit": {
				Type:        jsonschema.String,
				Enum:        []string{"celsius", "fahrenheit"},
				Description: "The temperature unit to use",
			},
		},
		Required: []string{"location"},
	}

	return &WeatherTool{
		BaseTool: BaseTool{
			ToolName:        "get_weather",
			ToolDescription: "Get the current weather in a given location if the user asks for it.",
			ToolParameters:  params,
		},
	}
}

func (t *WeatherTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	var a WeatherArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return Failuref(KindArgumentParse, "invalid weather arguments: %s", err), nil
	}
	if a.Location == "" {
		return Failure(KindArgumentParse, "location is required"), nil
	}
	if a.Unit == "" {
		a.Unit = "celsius"
	}

	temperature := "22"
	if a.Unit == "fahrenheit" {
		temperature = "72"
	}

	return Success(map[string]any{
		"location":    a.Location,
		"temperature": temperature,
		"unit":        a.Unit,
		"condition":   "sunny",
	}), nil
}
