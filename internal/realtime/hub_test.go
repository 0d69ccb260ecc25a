package realtime

import (
	"encoding/json"
	"testing"
	"time"
)

func newTestClient(runID string) *Client {
	return &Client{Send: make(chan []byte, 4), RunID: runID}
}

func TestHub_BroadcastToAllSubscribers(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := newTestClient("")
	h.Register(c)

	h.Diagnostic("run-1", 3, "bad-word", `"ZZZZZ" is not in the dictionary`)

	select {
	case data := <-c.Send:
		var evt Event
		if err := json.Unmarshal(data, &evt); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if evt.Type != EventDiagnostic || evt.RunID != "run-1" {
			t.Errorf("event = %+v, want diagnostic for run-1", evt)
		}
		var payload DiagnosticPayload
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			t.Fatalf("Unmarshal(payload) error = %v", err)
		}
		if payload.PuzzleNumber != 3 || payload.Kind != "bad-word" {
			t.Errorf("payload = %+v, want puzzle 3 bad-word", payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}

	h.Unregister(c)
}

func TestHub_ScopedSubscriberOnlySeesOwnRun(t *testing.T) {
	h := NewHub()
	go h.Run()

	scoped := newTestClient("run-a")
	h.Register(scoped)

	h.RunStarted("run-b", 10)

	select {
	case <-scoped.Send:
		t.Fatal("scoped subscriber should not receive another run's events")
	case <-time.After(100 * time.Millisecond):
	}

	h.RunStarted("run-a", 5)

	select {
	case data := <-scoped.Send:
		var evt Event
		json.Unmarshal(data, &evt)
		if evt.RunID != "run-a" {
			t.Errorf("RunID = %q, want run-a", evt.RunID)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for scoped broadcast")
	}

	h.Unregister(scoped)
}

func TestHub_RunFinishedPayload(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := newTestClient("")
	h.Register(c)

	h.RunFinished("run-1", 7, 250*time.Millisecond)

	select {
	case data := <-c.Send:
		var evt Event
		json.Unmarshal(data, &evt)
		var payload RunFinishedPayload
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			t.Fatalf("Unmarshal(payload) error = %v", err)
		}
		if payload.DiagnosticCount != 7 || payload.DurationMs != 250 {
			t.Errorf("payload = %+v, want {7 250}", payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for run-finished event")
	}

	h.Unregister(c)
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := newTestClient("")
	h.Register(c)
	h.Unregister(c)

	// Give the hub goroutine a moment to process the unregister before
	// asserting the channel was closed.
	time.Sleep(50 * time.Millisecond)

	select {
	case _, ok := <-c.Send:
		if ok {
			t.Error("expected closed Send channel after Unregister")
		}
	default:
		t.Error("expected closed Send channel to read immediately")
	}
}

func TestHub_SubscriberCount(t *testing.T) {
	h := NewHub()
	go h.Run()

	if got := h.SubscriberCount(); got != 0 {
		t.Fatalf("SubscriberCount() = %d, want 0", got)
	}

	c := newTestClient("")
	h.Register(c)
	time.Sleep(50 * time.Millisecond)

	if got := h.SubscriberCount(); got != 1 {
		t.Errorf("SubscriberCount() = %d, want 1", got)
	}
}
