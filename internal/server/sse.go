package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Event names of the /analyze/stream response
const (
	eventProgress = "progress"
	eventResult   = "result"
	eventError    = "error"
	eventComplete = "complete"
)

// SSEWriter writes numbered Server-Sent Events and flushes after each one
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	nextID  int
}

// NewSSEWriter sets the event-stream headers; it fails when w cannot flush
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	return &SSEWriter{w: w, flusher: flusher, nextID: 1}, nil
}

// WriteEvent sends data as JSON under the given event name
func (s *SSEWriter) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}

	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", s.nextID, event, payload); err != nil {
		return err
	}
	s.nextID++
	s.flusher.Flush()
	return nil
}

// WriteProgress reports a completed pipeline step
func (s *SSEWriter) WriteProgress(event pipeline.ProgressEvent) error {
	return s.WriteEvent(eventProgress, event)
}

// WriteResult sends the finished envelope
func (s *SSEWriter) WriteResult(env *types.AnalysisEnvelope) error {
	return s.WriteEvent(eventResult, env)
}

// WriteError sends an error event
func (s *SSEWriter) WriteError(message string) {
	s.WriteEvent(eventError, map[string]string{"error": message}) //nolint:errcheck
}

// WriteComplete closes the stream logically with the stored analysis ID
func (s *SSEWriter) WriteComplete(analysisID string) {
	s.WriteEvent(eventComplete, map[string]string{ //nolint:errcheck
		"analysis_id": analysisID,
		"status":      "completed",
	})
}
