package ai

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"

	"travelchat/internal/logger"
)

var (
	apiKey      string
	client      *openai.Client
	initialized bool
	clientMutex sync.Mutex

	ErrMissingAPIKey = errors.New("OpenAI API key not found")
)

var modelMap = map[string]string{
	"gpt-4o":      openai.GPT4o,
	"gpt-4o-mini": openai.GPT4oMini,
}

func InitializeClient() error {
	clientMutex.Lock()
	defer clientMutex.Unlock()

	apiKey = os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		logger.Warnf("AI client initialized without API key. Chat features will be unavailable.")
		initialized = true
		return ErrMissingAPIKey
	}

	client = openai.NewClient(apiKey)
	logger.Successf("OpenAI client initialized with API key")
	initialized = true
	return nil
}

func IsInitialized() bool {
	return initialized && apiKey != ""
}

func GetClient() *openai.Client {
	return client
}

// CreateContext returns a context bounded by the configured API timeout so
// a hung provider call cannot stall a connection's turn forever.
func CreateContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(GetConfig().APITimeoutSeconds) * time.Second
	return context.WithTimeout(parent, timeout)
}

func MapModelName(modelName string) string {
	if mapped, exists := modelMap[modelName]; exists {
		return mapped
	}
	return modelName
}
