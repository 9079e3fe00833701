package internal

const (
	VERSION = "1.0.0"

	// Defaults applied when the config file leaves a field unset
	DEFAULT_CONFIG_PATH       = "./data/config.toml"
	DEFAULT_LISTEN_ADDR       = ":8000"
	DEFAULT_MODEL             = "gpt-4o"
	DEFAULT_TEMPERATURE       = 0.7
	DEFAULT_MAX_TOKENS        = 4000
	DEFAULT_API_TIMEOUT       = 120 // seconds
	DEFAULT_TOOL_TIMEOUT      = 30  // seconds
	DEFAULT_SHUTDOWN_TIMEOUT  = 10  // seconds
	DEFAULT_HANDSHAKE_TIMEOUT = 10  // seconds

	// Largest inbound websocket frame we accept before dropping it
	MAX_FRAME_BYTES = 512 * 1024
)
