package tools

import (
	"encoding/json"
	"fmt"

	"travelchat/internal/session"
)

// Kind classifies a tool failure for logging and tests. The model only ever
// sees the encoded error string.
type Kind string

const (
	KindArgumentParse      Kind = "argument_parse_error"
	KindUnknownTool        Kind = "unknown_tool"
	KindInvalidOrdinal     Kind = "invalid_ordinal"
	KindPreconditionFailed Kind = "precondition_failed"
	KindExecution          Kind = "execution_error"
	KindTimeout            Kind = "timeout"
)

// Result is the outcome of one tool invocation: success carrying data, or
// failure carrying a reason. Failures are ordinary values here; nothing past
// the executor boundary ever sees a tool failure as a Go error.
type Result struct {
	OK   bool
	Data any

	// Offers is set by search tools; the executor persists it into the
	// session slot. Never part of the model-facing encoding.
	Offers []session.Offer

	Kind    Kind
	Err     string
	Details any
}

func Success(data any) Result {
	return Result{OK: true, Data: data}
}

// SuccessWithOffers marks a search success whose offer list the executor
// should store in the session.
func SuccessWithOffers(data any, offers []session.Offer) Result {
	return Result{OK: true, Data: data, Offers: offers}
}

func Failure(kind Kind, msg string) Result {
	return Result{Kind: kind, Err: msg}
}

func Failuref(kind Kind, format string, args ...any) Result {
	return Result{Kind: kind, Err: fmt.Sprintf(format, args...)}
}

// Content renders the result as the JSON body of a tool-role message. The
// failure shape keeps the error key the model-facing protocol expects.
func (r Result) Content() string {
	if r.OK {
		data, err := json.Marshal(r.Data)
		if err != nil {
			return fmt.Sprintf(`{"error":"failed to encode tool result: %s"}`, err)
		}
		return string(data)
	}

	payload := map[string]any{"error": r.Err}
	if r.Kind != "" {
		payload["kind"] = string(r.Kind)
	}
	if r.Details != nil {
		payload["details"] = r.Details
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return `{"error":"failed to encode tool error"}`
	}
	return string(data)
}
