// Package solverslot implements the single-slot handoff between the
// interactive editor and its background solver: the slot always holds
// only the latest request, and a worker that finishes a stale one
// discards the result instead of reporting it.
package solverslot

import (
	"sync"

	"github.com/crossplay/waffle/pkg/wordgrid"
)

// State is the kind of value currently held by a Slot.
type State int

const (
	// Idle means there is no outstanding work.
	Idle State = iota
	// TaskState means GridID/Grid name the most recent request.
	TaskState
	// Quit means the worker should stop; terminal and one-way.
	Quit
)

// Slot is a (state, condition-variable) pair shared between one
// producer (the editor) and one or more solver workers. SetTask and
// SetQuit overwrite whatever request was previously waiting; a worker
// blocked in Await wakes to see only the newest one.
type Slot struct {
	mu    sync.Mutex
	cond  *sync.Cond
	state State
	gridID int
	grid  *wordgrid.Grid
}

// New returns a Slot in the Idle state.
func New() *Slot {
	s := &Slot{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// SetTask installs g as the latest request, tagged with gridID, and
// wakes any worker waiting in Await. It is a no-op once the slot has
// been quit.
func (s *Slot) SetTask(gridID int, g *wordgrid.Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Quit {
		return
	}

	s.state = TaskState
	s.gridID = gridID
	s.grid = g
	s.cond.Broadcast()
}

// SetQuit transitions the slot to Quit, discarding any pending task.
// The transition is one-way: later calls to SetTask are ignored.
func (s *Slot) SetQuit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Quit
	s.grid = nil
	s.cond.Broadcast()
}

// Await blocks until the slot holds a task or has been quit, then
// returns it. When quit is true, gridID and g are zero and the caller
// should stop. Await does not clear the task: concurrent workers may
// all observe the same one, and a worker that later calls Stale with
// this gridID will find out whether it is still current.
func (s *Slot) Await() (gridID int, g *wordgrid.Grid, quit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.state == Idle {
		s.cond.Wait()
	}

	if s.state == Quit {
		return 0, nil, true
	}

	return s.gridID, s.grid, false
}

// Stale reports whether gridID no longer names the slot's current
// task: a newer request arrived, or the slot was quit, while the
// caller was computing a result for gridID.
func (s *Slot) Stale(gridID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != TaskState {
		return true
	}
	return s.gridID != gridID
}

// Clear returns the slot to Idle if it is still holding the task
// identified by gridID. A worker calls this after reporting its
// result, so the next Await blocks until a genuinely new task arrives
// rather than immediately re-observing the one just completed.
func (s *Slot) Clear(gridID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == TaskState && s.gridID == gridID {
		s.state = Idle
		s.grid = nil
	}
}
