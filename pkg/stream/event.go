// Package stream serves detailed article summaries as server-sent events. A session plays a short
// thinking animation, clears it, relays the generative provider's chunks as they arrive and always
// finishes with a completion event, substituting a fallback paragraph if the provider fails.
package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Phase is the stage of a summary session reported to the client
type Phase string

// session phases, in order
const (
	PhaseThinking        Phase = "THINKING"
	PhaseContentStart    Phase = "CONTENT_START"
	PhaseRealContent     Phase = "REAL_CONTENT"
	PhaseContentComplete Phase = "CONTENT_COMPLETE"
)

// ActionClearAll tells the client to drop everything shown so far
const ActionClearAll = "CLEAR_ALL_CONTENT"

// Event is a single SSE message payload
type Event struct {
	Chunk   string `json:"chunk,omitempty"`
	Phase   Phase  `json:"phase,omitempty"`
	Action  string `json:"action,omitempty"`
	Done    bool   `json:"done,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// eventWriter writes events to an http response, flushing after each one
type eventWriter struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func newEventWriter(w http.ResponseWriter) *eventWriter {
	return &eventWriter{w: w, rc: http.NewResponseController(w)}
}

// setHeaders prepares the response for streaming and disables proxy buffering
func setHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache, no-transform")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
}

func (ew *eventWriter) event(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if _, err := fmt.Fprintf(ew.w, "data: %s\n\n", data); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return ew.flush()
}

func (ew *eventWriter) comment(text string) error {
	if _, err := fmt.Fprintf(ew.w, ": %s\n\n", text); err != nil {
		return fmt.Errorf("write comment: %w", err)
	}
	return ew.flush()
}

func (ew *eventWriter) flush() error {
	if err := ew.rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// WriteError responds with status and a single error event, used to reject a stream before it starts
func WriteError(w http.ResponseWriter, status int, msg, details string) {
	setHeaders(w)
	w.WriteHeader(status)
	_ = newEventWriter(w).event(Event{Error: msg, Details: details})
}
