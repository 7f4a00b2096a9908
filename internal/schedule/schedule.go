// Package schedule provides cancellable delayed callbacks that run on a
// single event loop.
//
// Callbacks scheduled through a Scheduler never run concurrently with each
// other or with the code that scheduled them, and a cancelled callback never
// runs. Loop delivers expirations through the bubbletea program; Manual is a
// deterministic clock for tests.
package schedule

import "time"

// Handle cancels a scheduled callback.
type Handle interface {
	// Cancel prevents the callback from running. Cancelling a callback that
	// already ran is a no-op.
	Cancel()
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Handle
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Dispatcher runs a function on the event loop. It may be called from any
// goroutine.
type Dispatcher interface {
	Post(fn func())
}

// Runtime bundles everything the player components need from the loop.
type Runtime interface {
	Scheduler
	Clock
	Dispatcher
}

// Task is a deferred callback with at most one active handle. Scheduling a
// task again replaces the previous callback.
type Task struct {
	sched  Scheduler
	handle Handle
}

// NewTask creates an idle task bound to s.
func NewTask(s Scheduler) *Task {
	return &Task{sched: s}
}

// Schedule cancels any pending callback and runs fn after d.
func (t *Task) Schedule(d time.Duration, fn func()) {
	t.Cancel()
	var h Handle
	h = t.sched.AfterFunc(d, func() {
		if t.handle == h {
			t.handle = nil
		}
		fn()
	})
	t.handle = h
}

// Cancel drops the pending callback, if any.
func (t *Task) Cancel() {
	if t.handle != nil {
		t.handle.Cancel()
		t.handle = nil
	}
}

// Pending reports whether a callback is scheduled and has not run.
func (t *Task) Pending() bool {
	return t.handle != nil
}
