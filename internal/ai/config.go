package ai

import (
	"sync"

	"travelchat/internal"
	botconfig "travelchat/internal/config"
)

type Config struct {
	Model              string
	MaxResponseTokens  int
	Temperature        float32
	SystemPrompt       string
	APITimeoutSeconds  int
	ToolTimeoutSeconds int

	EnableToolCalls bool
}

const defaultSystemPrompt = `You are a helpful travel assistant. You can answer questions, provide information,
and help users plan and book trips. If you don't know the answer to something, just say so instead of making up information.

Tool usage rules:
- Use search_flights, search_hotels and search_rental_cars when the user wants options. Always present results as a numbered list so the user can pick by number.
- Flight booking is a two-step process: confirm the fare with price_flight_offer first, then book with book_flight once the user has given the traveler's first and last name.
- Hotels and rental cars are booked directly by their number from the most recent search.
- Numbers the user gives always refer to the most recent list you showed them.
- Never invent offers, prices or booking references; only relay what the tools return.
- If a tool reports an error, explain the problem to the user in plain language and suggest what to do next.`

var (
	config     *Config
	configOnce sync.Once
)

func DefaultConfig() *Config {
	return &Config{
		Model:              internal.DEFAULT_MODEL,
		MaxResponseTokens:  internal.DEFAULT_MAX_TOKENS,
		Temperature:        internal.DEFAULT_TEMPERATURE,
		SystemPrompt:       defaultSystemPrompt,
		APITimeoutSeconds:  internal.DEFAULT_API_TIMEOUT,
		ToolTimeoutSeconds: internal.DEFAULT_TOOL_TIMEOUT,
		EnableToolCalls:    true,
	}
}

func GetConfig() *Config {
	configOnce.Do(func() {
		config = DefaultConfig()
	})
	return config
}

func UpdateConfig(updater func(*Config)) {
	updater(GetConfig())
}

// ApplyServerConfig folds the [ai] section of the TOML config into the AI
// config singleton. Empty fields keep their defaults.
func ApplyServerConfig(src botconfig.AIConfig) {
	UpdateConfig(func(cfg *Config) {
		if src.Model != "" {
			cfg.Model = src.Model
		}
		if src.Temperature > 0 {
			cfg.Temperature = src.Temperature
		}
		if src.MaxResponseTokens > 0 {
			cfg.MaxResponseTokens = src.MaxResponseTokens
		}
		if src.APITimeoutSeconds > 0 {
			cfg.APITimeoutSeconds = src.APITimeoutSeconds
		}
		if src.ToolTimeoutSeconds > 0 {
			cfg.ToolTimeoutSeconds = src.ToolTimeoutSeconds
		}
		if src.SystemPrompt != "" {
			cfg.SystemPrompt = src.SystemPrompt
		}
		cfg.EnableToolCalls = src.EnableToolCalls
	})
}
