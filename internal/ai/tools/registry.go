package tools

import (
	"fmt"
	"sync"

	"github.com/sashabaranov/go-openai"

	"travelchat/internal/logger"
)

// Registry manages the collection of available tools. It provides
// thread-safe registration and retrieval, and preserves registration order:
// the descriptor list is surfaced verbatim to the completion API, and a
// stable ordering keeps the provider-side prompt cache effective.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool. Re-registering a name replaces the handler but
// keeps its original position in the catalog order.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		logger.Warnf("Replacing existing tool: %s", name)
	} else {
		r.order = append(r.order, name)
	}

	r.tools[name] = tool
	logger.AIDebugf("Registered tool: %s", name)
}

// Deregister removes a tool. A no-op if the name is unknown.
func (r *Registry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[name]; !exists {
		return
	}
	delete(r.tools, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	logger.Debugf("Deregistered tool: %s", name)
}

// Get returns a tool by name, or an error if it isn't registered.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	if !exists {
		return nil, fmt.Errorf("tool '%s' not found", name)
	}

	return tool, nil
}

// All returns every registered tool in registration order.
func (r *Registry) All() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}

	return tools
}

// OpenAITools converts the catalog to the completion API's tool format, in
// registration order.
func (r *Registry) OpenAITools() []openai.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]openai.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name].ToOpenAITool())
	}

	return tools
}
