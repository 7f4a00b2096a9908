package gesture

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	width    = 1000.0
	duration = 100.0
)

func ev(kind Kind, ms int, x float64) Event {
	return Event{
		Kind:      kind,
		At:        epoch.Add(time.Duration(ms) * time.Millisecond),
		X:         x,
		Width:     width,
		MediaTime: 40,
		Duration:  duration,
	}
}

// run feeds events through a fresh recognizer and returns all actions.
func run(events ...Event) (State, []Action) {
	r := New(DefaultConfig())
	var s State
	var all []Action
	for _, e := range events {
		var acts []Action
		s, acts = r.Step(s, e)
		all = append(all, acts...)
	}
	return s, all
}

func kinds(actions []Action) []ActionKind {
	out := make([]ActionKind, len(actions))
	for i, a := range actions {
		out[i] = a.Kind
	}
	return out
}

func count(actions []Action, k ActionKind) int {
	n := 0
	for _, a := range actions {
		if a.Kind == k {
			n++
		}
	}
	return n
}

func TestPress_StartsDrag(t *testing.T) {
	s, acts := run(ev(Press, 0, 500))

	assert.Empty(t, acts)
	assert.True(t, s.Dragging)
	assert.Equal(t, 500.0, s.StartX)
	assert.Equal(t, 40.0, s.StartTime)
	assert.Equal(t, epoch, s.LastTap)
	assert.False(t, s.HasPending)
}

func TestPress_OnControlIgnored(t *testing.T) {
	e := ev(Press, 0, 500)
	e.OnControl = true
	s, acts := run(e)

	assert.Empty(t, acts)
	assert.Equal(t, State{}, s)
}

func TestTap_SchedulesSingleToggle(t *testing.T) {
	s, acts := run(ev(Press, 0, 500), ev(Release, 80, 505))

	assert.Equal(t, []ActionKind{ScheduleTap, HideDrag}, kinds(acts))
	assert.Equal(t, 300*time.Millisecond, acts[0].Delay)
	assert.False(t, s.Dragging)
}

func TestDoubleTap_ExactlyOneAction(t *testing.T) {
	_, acts := run(
		ev(Press, 0, 500), ev(Release, 50, 500),
		ev(Press, 200, 500), ev(Release, 250, 500),
	)

	assert.Equal(t, 1, count(acts, DoubleTap))
	assert.Equal(t, 1, count(acts, ScheduleTap), "first tap schedules, second press cancels")
	assert.Equal(t, 1, count(acts, CancelTap))

	// The cancel precedes the double tap so the scheduled toggle never runs.
	var cancelIdx, doubleIdx int
	for i, a := range acts {
		switch a.Kind {
		case CancelTap:
			cancelIdx = i
		case DoubleTap:
			doubleIdx = i
		default:
		}
	}
	assert.Less(t, cancelIdx, doubleIdx)
}

func TestDoubleTap_ResetsLastTap(t *testing.T) {
	s, _ := run(
		ev(Press, 0, 500), ev(Release, 20, 500),
		ev(Press, 100, 500),
	)
	assert.True(t, s.LastTap.IsZero())
	assert.False(t, s.Dragging, "second press of a double tap does not track a drag")

	// A third quick press starts a fresh sequence instead of another double tap.
	r := New(DefaultConfig())
	s, acts := r.Step(s, ev(Press, 150, 500))
	assert.Empty(t, acts)
	assert.True(t, s.Dragging)
}

func TestPress_AfterWindowIsNewTap(t *testing.T) {
	_, acts := run(
		ev(Press, 0, 500), ev(Release, 20, 500),
		ev(Press, 300, 500), ev(Release, 320, 500),
	)
	assert.Zero(t, count(acts, DoubleTap))
	assert.Equal(t, 2, count(acts, ScheduleTap))
}

func TestPress_WhileDraggingIsNotDoubleTap(t *testing.T) {
	_, acts := run(ev(Press, 0, 500), ev(Press, 100, 500))
	assert.Zero(t, count(acts, DoubleTap))
}

func TestDrag_DefersSeekToRelease(t *testing.T) {
	s, acts := run(ev(Press, 0, 500), ev(Move, 50, 600), ev(Move, 100, 700))

	assert.Zero(t, count(acts, CommitSeek), "no seek while moving")
	assert.True(t, s.HasPending)
	assert.InDelta(t, 60.0, s.PendingSeek, 1e-9) // 40 + 200/1000*100

	r := New(DefaultConfig())
	s, rel := r.Step(s, ev(Release, 150, 700))

	require.Equal(t, []ActionKind{CommitSeek, HideDrag}, kinds(rel))
	assert.InDelta(t, 60.0, rel[0].Time, 1e-9)
	assert.False(t, s.Dragging)
	assert.False(t, s.HasPending)
}

func TestDrag_CommitsLastPendingValue(t *testing.T) {
	_, acts := run(
		ev(Press, 0, 500),
		ev(Move, 10, 900),
		ev(Move, 20, 300),
		ev(Release, 30, 300),
	)

	require.Equal(t, 1, count(acts, CommitSeek))
	for _, a := range acts {
		if a.Kind == CommitSeek {
			assert.InDelta(t, 20.0, a.Time, 1e-9)
		}
	}
}

func TestDrag_ShowsFeedbackAndCancelsTap(t *testing.T) {
	_, acts := run(ev(Press, 0, 500), ev(Move, 10, 520))
	assert.Equal(t, []ActionKind{CancelTap, ShowDrag}, kinds(acts))
	assert.InDelta(t, 42.0, acts[1].Time, 1e-9)
}

func TestDrag_BelowThresholdShowsNothing(t *testing.T) {
	_, acts := run(ev(Press, 0, 500), ev(Move, 10, 510), ev(Move, 20, 490))
	assert.Empty(t, acts)
}

func TestDrag_TargetClamped(t *testing.T) {
	s, _ := run(ev(Press, 0, 500), ev(Move, 10, 5000))
	assert.Equal(t, duration, s.PendingSeek)

	s, _ = run(ev(Press, 0, 500), ev(Move, 10, -5000))
	assert.Equal(t, 0.0, s.PendingSeek)
}

func TestDrag_UnknownDurationStoresNothing(t *testing.T) {
	press := ev(Press, 0, 500)
	move := ev(Move, 10, 700)
	move.Duration = math.NaN()
	s, acts := run(press, move)

	assert.False(t, s.HasPending)
	assert.Equal(t, []ActionKind{CancelTap}, kinds(acts))
}

func TestRelease_ExactlyAtThresholdDoesNothing(t *testing.T) {
	_, acts := run(ev(Press, 0, 500), ev(Release, 10, 510))
	assert.Equal(t, []ActionKind{HideDrag}, kinds(acts))
}

func TestMoveAndRelease_IgnoredWhenIdle(t *testing.T) {
	s, acts := run(ev(Move, 0, 500), ev(Release, 10, 900))
	assert.Empty(t, acts)
	assert.Equal(t, State{}, s)
}

func TestZoneAt(t *testing.T) {
	r := New(DefaultConfig())
	tests := []struct {
		x    float64
		want Zone
	}{
		{0, ZoneBack},
		{349.9, ZoneBack},
		{350, ZoneToggle},
		{500, ZoneToggle},
		{650, ZoneToggle},
		{650.1, ZoneForward},
		{1000, ZoneForward},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.ZoneAt(tt.x, width), "x=%v", tt.x)
	}
}

func TestDoubleTap_ZoneUsesSurfaceOffset(t *testing.T) {
	press := func(ms int) Event {
		e := ev(Press, ms, 1100)
		e.Left = 1000
		return e
	}
	_, acts := run(press(0), ev(Release, 10, 1100), press(100))

	for _, a := range acts {
		if a.Kind == DoubleTap {
			assert.Equal(t, ZoneBack, a.Zone)
		}
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Press", Press.String())
	assert.Equal(t, "Forward", ZoneForward.String())
	assert.Equal(t, "CommitSeek", CommitSeek.String())
}
