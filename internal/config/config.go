package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"travelchat/internal"
)

type AIConfig struct {
	Model              string  `toml:"model"`
	Temperature        float32 `toml:"temperature"`
	MaxResponseTokens  int     `toml:"max_response_tokens"`
	APITimeoutSeconds  int     `toml:"api_timeout_seconds"`
	ToolTimeoutSeconds int     `toml:"tool_timeout_seconds"`
	EnableToolCalls    bool    `toml:"enable_tool_calls"`
	SystemPrompt       string  `toml:"system_prompt"`
}

type Config struct {
	ListenAddr     string   `toml:"listen_addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
	AI             AIConfig `toml:"ai"`
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		ListenAddr:     internal.DEFAULT_LISTEN_ADDR,
		AllowedOrigins: []string{"*"},
		AI: AIConfig{
			Model:              internal.DEFAULT_MODEL,
			Temperature:        internal.DEFAULT_TEMPERATURE,
			MaxResponseTokens:  internal.DEFAULT_MAX_TOKENS,
			APITimeoutSeconds:  internal.DEFAULT_API_TIMEOUT,
			ToolTimeoutSeconds: internal.DEFAULT_TOOL_TIMEOUT,
			EnableToolCalls:    true,
		},
	}
}

// ValidateConfig checks if all required configuration fields are properly set
func ValidateConfig(cfg *Config) error {
	var missingFields []string

	if cfg.ListenAddr == "" {
		missingFields = append(missingFields, "listen_addr")
	}
	if cfg.AI.Model == "" {
		missingFields = append(missingFields, "ai.model")
	}

	if cfg.ListenAddr != "" && !strings.Contains(cfg.ListenAddr, ":") {
		return fmt.Errorf("listen_addr does not contain a port (format should be host:port or :port)")
	}

	if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
		return fmt.Errorf("ai.temperature must be between 0 and 2, got %v", cfg.AI.Temperature)
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required configuration fields: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetConfigPath returns the config file path, honoring the CONFIG_PATH override
func GetConfigPath() string {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = internal.DEFAULT_CONFIG_PATH
	}
	return configPath
}
