// Package realtime streams validator diagnostics to WebSocket
// subscribers as a run produces them, adapted from the teacher's
// room-broadcast hub into a plain publish/subscribe fan-out: there are
// no rooms, players or turns here, just one hub relaying diagnostic
// events to whoever is watching a run.
package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// EventType identifies the kind of event broadcast over the stream.
type EventType string

const (
	// EventDiagnostic carries one validator diagnostic as it is raised.
	EventDiagnostic EventType = "diagnostic"
	// EventRunStarted announces that a run has begun and how many
	// puzzles it will check.
	EventRunStarted EventType = "run_started"
	// EventRunFinished announces that a run has completed.
	EventRunFinished EventType = "run_finished"
)

// Event is one message pushed down the stream.
type Event struct {
	Type    EventType       `json:"type"`
	RunID   string          `json:"runId"`
	Payload json.RawMessage `json:"payload"`
}

// DiagnosticPayload is the payload of an EventDiagnostic event.
type DiagnosticPayload struct {
	PuzzleNumber int    `json:"puzzleNumber"`
	Kind         string `json:"kind"`
	Detail       string `json:"detail"`
}

// RunStartedPayload is the payload of an EventRunStarted event.
type RunStartedPayload struct {
	PuzzleCount int `json:"puzzleCount"`
}

// RunFinishedPayload is the payload of an EventRunFinished event.
type RunFinishedPayload struct {
	DiagnosticCount int   `json:"diagnosticCount"`
	DurationMs      int64 `json:"durationMs"`
}

// Hub fans diagnostic events out to every subscribed client. A client
// that subscribed to a specific RunID only receives events tagged with
// that run; a client with an empty RunID receives every run's events,
// which is useful for an operator dashboard watching the whole service.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	mutex      sync.RWMutex
}

// NewHub creates a Hub. Callers must start it with go hub.Run() before
// registering clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
	}
}

// Run drains the hub's register, unregister and broadcast channels in
// an endless loop; it never returns, so it runs for the lifetime of
// the server in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("realtime: failed to marshal event: %v", err)
				continue
			}

			h.mutex.RLock()
			for client := range h.clients {
				if client.RunID != "" && client.RunID != event.RunID {
					continue
				}
				select {
				case client.Send <- data:
				default:
					// Slow consumer; drop rather than block the hub.
				}
			}
			h.mutex.RUnlock()
		}
	}
}

// Register subscribes client to the hub's broadcasts.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes client from the hub and closes its Send channel.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) publish(runID string, eventType EventType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("realtime: failed to marshal %s payload: %v", eventType, err)
		return
	}
	h.broadcast <- Event{Type: eventType, RunID: runID, Payload: data}
}

// RunStarted announces the start of a run with puzzleCount puzzles.
func (h *Hub) RunStarted(runID string, puzzleCount int) {
	h.publish(runID, EventRunStarted, RunStartedPayload{PuzzleCount: puzzleCount})
}

// Diagnostic announces one diagnostic raised during a run.
func (h *Hub) Diagnostic(runID string, puzzleNumber int, kind, detail string) {
	h.publish(runID, EventDiagnostic, DiagnosticPayload{
		PuzzleNumber: puzzleNumber,
		Kind:         kind,
		Detail:       detail,
	})
}

// RunFinished announces the completion of a run.
func (h *Hub) RunFinished(runID string, diagnosticCount int, duration time.Duration) {
	h.publish(runID, EventRunFinished, RunFinishedPayload{
		DiagnosticCount: diagnosticCount,
		DurationMs:      duration.Milliseconds(),
	})
}

// SubscriberCount reports how many clients are currently connected,
// for the healthz endpoint's diagnostics.
func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
