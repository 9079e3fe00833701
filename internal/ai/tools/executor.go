package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travelchat/internal/logger"
	"travelchat/internal/session"
)

// Executor validates and dispatches tool-call intents. Whatever goes wrong
// inside a tool, the caller always gets a Result back; a handler failure
// must never tear down the orchestration loop.
type Executor struct {
	registry *Registry
	timeout  time.Duration
}

func NewExecutor(registry *Registry, timeout time.Duration) *Executor {
	return &Executor{
		registry: registry,
		timeout:  timeout,
	}
}

// Execute runs one tool-call intent against the session.
func (e *Executor) Execute(ctx context.Context, sess *session.Session, name, argsJSON string) Result {
	logger.AIDebugf("Executing tool: %s with args: %s", name, argsJSON)

	var args map[string]any
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		logger.Warnf("Tool %s: malformed arguments: %v", name, err)
		return Failuref(KindArgumentParse, "invalid tool arguments: %s", err)
	}

	tool, err := e.registry.Get(name)
	if err != nil {
		logger.Warnf("Unknown tool requested: %s", name)
		return Failure(KindUnknownTool, "unknown tool")
	}

	// Ordinal references are checked against the live session list before
	// the handler runs, so an out-of-range number never reaches a provider.
	if ot, ok := tool.(OrdinalTool); ok {
		if res, ok := checkOrdinal(sess, ot.Ordinal(), args); !ok {
			return res
		}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	res, err := e.invoke(ctx, tool, sess, argsJSON)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Errorf("Tool %s timed out after %s", name, e.timeout)
			return Failuref(KindTimeout, "tool call timed out after %s", e.timeout)
		}
		logger.Errorf("Tool execution error: %s: %v", name, err)
		return Failure(KindExecution, err.Error())
	}

	if res.OK {
		if st, ok := tool.(SearchTool); ok {
			sess.SetOffers(st.ResultSlot(), res.Offers)
			logger.AIDebugf("Stored %d %s offers in session %s", len(res.Offers), st.ResultSlot(), sess.ID)
		}
	}

	return res
}

// invoke calls the handler with panic containment. Tools wrap external
// providers, and a provider bug crashing the whole connection is the one
// outcome this layer exists to prevent.
func (e *Executor) invoke(ctx context.Context, tool Tool, sess *session.Session, argsJSON string) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Tool %s panicked: %v", tool.Name(), r)
			res, err = Result{}, fmt.Errorf("tool %s panicked: %v", tool.Name(), r)
		}
	}()

	return tool.Execute(ctx, sess, argsJSON)
}

// checkOrdinal validates a 1-based list reference. Returns ok=false with
// the failure Result to hand back when the number is absent, fractional, or
// outside [1, len(list)].
func checkOrdinal(sess *session.Session, spec OrdinalSpec, args map[string]any) (Result, bool) {
	length := len(sess.Offers(spec.Slot))

	invalid := Failuref(KindInvalidOrdinal,
		"Invalid %s number. Please choose a number between 1 and %d.", spec.Noun, length)

	raw, present := args[spec.Param]
	if !present {
		return invalid, false
	}

	num, ok := raw.(float64)
	if !ok || num != float64(int(num)) {
		return invalid, false
	}

	n := int(num)
	if n < 1 || n > length {
		return invalid, false
	}

	return Result{}, true
}
