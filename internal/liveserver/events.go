package liveserver

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/nodeid"
	"github.com/vk/goalwalker/internal/render"
	"github.com/vk/goalwalker/internal/session"
)

// Event names used on the wire.
const (
	EventWalk   = "walk"
	EventStep   = "step"
	EventResult = "result"
	EventError  = "walk_error"
)

// ErrMalformedRequest is returned when a "walk" payload cannot be decoded.
var ErrMalformedRequest = errors.New("malformed walk request")

type stepEvent struct {
	RequestID string    `json:"request_id"`
	Position  int       `json:"position"`
	City      nodeid.ID `json:"city"`
}

type resultEvent struct {
	RequestID string `json:"request_id"`
	render.Document
}

type errorEvent struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// decodeRequest accepts the first argument of a "walk" event, either an
// object or a JSON string holding one.
func decodeRequest(args []any) (session.Request, error) {
	var req session.Request
	if len(args) == 0 || args[0] == nil {
		return req, fmt.Errorf("%w: missing payload", ErrMalformedRequest)
	}

	var raw []byte
	switch v := args[0].(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return req, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
		}
		raw = b
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	return req, nil
}

// payload flattens an event struct into the generic map form the socket.io
// encoder handles without reflection surprises.
func payload(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{"error": err.Error()}
	}
	return out
}

func newStepEvent(requestID string, step agent.Step) map[string]any {
	return payload(stepEvent{RequestID: requestID, Position: step.Position, City: step.City})
}

func newResultEvent(requestID string, res *agent.Result) map[string]any {
	return payload(resultEvent{RequestID: requestID, Document: render.NewDocument(res)})
}

func newErrorEvent(requestID string, err error) map[string]any {
	return payload(errorEvent{RequestID: requestID, Error: err.Error()})
}
