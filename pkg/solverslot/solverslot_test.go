package solverslot

import (
	"testing"
	"time"

	"github.com/crossplay/waffle/pkg/wordgrid"
)

func TestAwaitReceivesLatestTask(t *testing.T) {
	s := New()

	g1, _ := wordgrid.Parse("AbCdE\nF G H\nIJKLM\nN O P\nQRSTU")
	g2, _ := wordgrid.Parse("ABCDE\nF G H\nIJKLM\nN O P\nQRSTU")

	s.SetTask(1, g1)
	s.SetTask(2, g2)

	gridID, g, quit := s.Await()
	if quit {
		t.Fatal("unexpected quit")
	}
	if gridID != 2 || g != g2 {
		t.Fatalf("got gridID=%d grid=%p, want the superseding task (2, %p)", gridID, g, g2)
	}
}

func TestStaleAfterNewerTask(t *testing.T) {
	s := New()
	g1, _ := wordgrid.Parse("AbCdE\nF G H\nIJKLM\nN O P\nQRSTU")
	g2, _ := wordgrid.Parse("ABCDE\nF G H\nIJKLM\nN O P\nQRSTU")

	s.SetTask(1, g1)
	if s.Stale(1) {
		t.Fatal("task 1 should still be current")
	}

	s.SetTask(2, g2)
	if !s.Stale(1) {
		t.Fatal("task 1 should be stale once task 2 arrived")
	}
	if s.Stale(2) {
		t.Fatal("task 2 should be current")
	}
}

func TestQuitIsOneWayAndWakesWaiters(t *testing.T) {
	s := New()

	done := make(chan struct{})
	go func() {
		_, _, quit := s.Await()
		if !quit {
			t.Error("expected quit")
		}
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	s.SetQuit()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Await did not wake on quit")
	}

	g, _ := wordgrid.Parse("AbCdE\nF G H\nIJKLM\nN O P\nQRSTU")
	s.SetTask(3, g)
	if !s.Stale(3) {
		t.Fatal("SetTask after Quit must be a no-op")
	}
}

func TestClearReturnsToIdleOnlyForMatchingTask(t *testing.T) {
	s := New()
	g, _ := wordgrid.Parse("AbCdE\nF G H\nIJKLM\nN O P\nQRSTU")

	s.SetTask(1, g)
	s.Clear(2) // stale gridID, must not clear
	if s.Stale(1) {
		t.Fatal("Clear with a mismatched gridID must not touch the current task")
	}

	s.Clear(1)
	if !s.Stale(1) {
		t.Fatal("Clear with the matching gridID should return the slot to Idle")
	}
}
