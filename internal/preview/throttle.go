package preview

import (
	"time"

	"github.com/llehouerou/reel/internal/schedule"
)

// Throttle is a leading-edge rate limiter: the first call in a window runs,
// later calls in the same window are dropped.
type Throttle struct {
	window time.Duration
	open   *schedule.Task
}

// NewThrottle creates a throttle whose windows are timed by s.
func NewThrottle(s schedule.Scheduler, window time.Duration) *Throttle {
	return &Throttle{window: window, open: schedule.NewTask(s)}
}

// Do runs fn unless a window is open, and reports whether it ran.
func (t *Throttle) Do(fn func()) bool {
	if t.open.Pending() {
		return false
	}
	fn()
	t.open.Schedule(t.window, func() {})
	return true
}

// Blocked reports whether calls are currently being dropped.
func (t *Throttle) Blocked() bool {
	return t.open.Pending()
}
