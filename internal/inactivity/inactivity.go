// Package inactivity hides the control overlay after a period without
// input while media is playing.
package inactivity

import (
	"time"

	"github.com/llehouerou/reel/internal/schedule"
)

// DefaultTimeout is the idle time before the overlay hides.
const DefaultTimeout = 3 * time.Second

// Tracker owns the overlay visibility. It starts visible and paused.
type Tracker struct {
	timeout  time.Duration
	hide     *schedule.Task
	playing  bool
	hidden   bool
	onChange func(visible bool)
}

// New creates a tracker. A non-positive timeout selects DefaultTimeout.
func New(s schedule.Scheduler, timeout time.Duration) *Tracker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Tracker{timeout: timeout, hide: schedule.NewTask(s)}
}

// OnChange registers a callback for visibility changes.
func (t *Tracker) OnChange(fn func(visible bool)) { t.onChange = fn }

// Activity records user input: the overlay is shown and, while playing,
// the idle countdown restarts.
func (t *Tracker) Activity() {
	t.hide.Cancel()
	t.setHidden(false)
	if t.playing {
		t.arm()
	}
}

// Played counts as activity and starts the idle countdown.
func (t *Tracker) Played() {
	t.playing = true
	t.Activity()
}

// Paused cancels the countdown and forces the overlay visible.
func (t *Tracker) Paused() {
	t.playing = false
	t.hide.Cancel()
	t.setHidden(false)
}

// Visible reports whether the overlay is shown.
func (t *Tracker) Visible() bool { return !t.hidden }

// Pending reports whether a hide is scheduled.
func (t *Tracker) Pending() bool { return t.hide.Pending() }

func (t *Tracker) arm() {
	t.hide.Schedule(t.timeout, func() {
		if t.playing {
			t.setHidden(true)
		}
	})
}

func (t *Tracker) setHidden(hidden bool) {
	if t.hidden == hidden {
		return
	}
	t.hidden = hidden
	if t.onChange != nil {
		t.onChange(!hidden)
	}
}
