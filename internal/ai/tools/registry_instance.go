package tools

import (
	"sync"
	"time"

	"travelchat/internal/logger"
	"travelchat/internal/travel"
)

var (
	// Global singleton registry instance
	registry     *Registry
	registryOnce sync.Once
)

// GetRegistry returns the singleton registry instance. On the first call
// this initializes the registry and registers the default tool catalog;
// subsequent calls return the same instance. The catalog is static at
// startup, but RegisterCustomTool allows runtime additions.
func GetRegistry() *Registry {
	registryOnce.Do(func() {
		logger.AIDebugf("Initializing global tool registry")
		registry = NewRegistry()

		travelClient := travel.NewClient(500 * time.Millisecond)

		// Registration order is the order the model sees
		defaultTools := []Tool{
			NewWeatherTool(),
			NewWebSearchTool(),
			NewFlightSearchTool(travelClient),
			NewFlightPriceTool(travelClient),
			NewFlightBookTool(travelClient),
			NewHotelSearchTool(travelClient),
			NewHotelBookTool(travelClient),
			NewCarSearchTool(travelClient),
			NewCarBookTool(travelClient),
		}

		for _, tool := range defaultTools {
			registry.Register(tool)
		}

		logger.Successf("Initialized global tool registry with %d default tools", len(defaultTools))
	})
	return registry
}

// RegisterCustomTool adds a custom tool to the global registry.
func RegisterCustomTool(tool Tool) {
	GetRegistry().Register(tool)
}
