// Package gesture classifies pointer input on the video surface into taps,
// double taps and drag scrubs.
//
// Classification is a pure function of the previous State and one Event;
// executing the resulting Actions (toggling playback, seeking, showing
// feedback) is left to the caller.
package gesture

import (
	"math"
	"time"
)

// Config holds the recognizer thresholds.
type Config struct {
	DoubleTapWindow time.Duration // max gap between the presses of a double tap
	DragThreshold   float64       // px of horizontal travel before a press becomes a drag
	BackZone        float64       // double taps left of this fraction seek back
	ForwardZone     float64       // double taps right of this fraction seek forward
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		DoubleTapWindow: 300 * time.Millisecond,
		DragThreshold:   10,
		BackZone:        0.35,
		ForwardZone:     0.65,
	}
}

// Kind is the type of pointer event.
type Kind int

const (
	Press Kind = iota
	Move
	Release
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Move:
		return "Move"
	case Release:
		return "Release"
	default:
		return "Unknown"
	}
}

// Event is one pointer event. X and Left are in pixels in the same
// coordinate space; MediaTime and Duration are sampled from the media when
// the event is dispatched.
type Event struct {
	Kind      Kind
	At        time.Time
	X         float64 // pointer position
	Left      float64 // left edge of the video surface
	Width     float64 // width of the video surface
	OnControl bool    // the press landed on a control button
	MediaTime float64
	Duration  float64
}

// State is the recognizer memory between events.
type State struct {
	LastTap     time.Time // zero when no tap can start a double tap
	StartX      float64
	StartTime   float64
	Dragging    bool
	PendingSeek float64
	HasPending  bool
}

// Zone is the horizontal region a double tap landed in.
type Zone int

const (
	ZoneToggle Zone = iota
	ZoneBack
	ZoneForward
)

// String returns the zone name.
func (z Zone) String() string {
	switch z {
	case ZoneToggle:
		return "Toggle"
	case ZoneBack:
		return "Back"
	case ZoneForward:
		return "Forward"
	default:
		return "Unknown"
	}
}

// ActionKind is what the caller must do.
type ActionKind int

const (
	// CancelTap cancels a scheduled single-tap action.
	CancelTap ActionKind = iota
	// DoubleTap runs the double-tap action for Zone immediately.
	DoubleTap
	// ScheduleTap schedules the single-tap action (toggle play) after Delay.
	ScheduleTap
	// ShowDrag displays Time as live drag feedback.
	ShowDrag
	// HideDrag hides the drag feedback.
	HideDrag
	// CommitSeek sets the media time to Time.
	CommitSeek
)

// String returns the action kind name.
func (k ActionKind) String() string {
	switch k {
	case CancelTap:
		return "CancelTap"
	case DoubleTap:
		return "DoubleTap"
	case ScheduleTap:
		return "ScheduleTap"
	case ShowDrag:
		return "ShowDrag"
	case HideDrag:
		return "HideDrag"
	case CommitSeek:
		return "CommitSeek"
	default:
		return "Unknown"
	}
}

// Action is an instruction produced by Step.
type Action struct {
	Kind  ActionKind
	Zone  Zone
	Time  float64
	Delay time.Duration
}

// Recognizer classifies events with a fixed Config.
type Recognizer struct {
	cfg Config
}

// New creates a recognizer.
func New(cfg Config) Recognizer {
	return Recognizer{cfg: cfg}
}

// Config returns the thresholds in use.
func (r Recognizer) Config() Config { return r.cfg }

// ZoneAt maps an offset within the surface to a double-tap zone. Offsets
// exactly on a boundary belong to the toggle zone.
func (r Recognizer) ZoneAt(x, width float64) Zone {
	switch {
	case x < width*r.cfg.BackZone:
		return ZoneBack
	case x > width*r.cfg.ForwardZone:
		return ZoneForward
	default:
		return ZoneToggle
	}
}

// Step advances the state machine by one event.
func (r Recognizer) Step(s State, e Event) (State, []Action) {
	switch e.Kind {
	case Press:
		return r.press(s, e)
	case Move:
		return r.move(s, e)
	case Release:
		return r.release(s, e)
	}
	return s, nil
}

func (r Recognizer) press(s State, e Event) (State, []Action) {
	if e.OnControl {
		return s, nil
	}

	if !s.LastTap.IsZero() && e.At.Sub(s.LastTap) < r.cfg.DoubleTapWindow && !s.Dragging {
		s.LastTap = time.Time{}
		return s, []Action{
			{Kind: CancelTap},
			{Kind: DoubleTap, Zone: r.ZoneAt(e.X-e.Left, e.Width)},
		}
	}

	s.LastTap = e.At
	s.StartX = e.X
	s.StartTime = e.MediaTime
	s.Dragging = true
	s.PendingSeek = 0
	s.HasPending = false
	return s, nil
}

func (r Recognizer) move(s State, e Event) (State, []Action) {
	if !s.Dragging {
		return s, nil
	}

	dx := e.X - s.StartX
	if math.Abs(dx) <= r.cfg.DragThreshold {
		return s, nil
	}

	actions := []Action{{Kind: CancelTap}}
	if e.Width <= 0 {
		return s, actions
	}
	target := s.StartTime + (dx/e.Width)*e.Duration
	target = math.Max(0, math.Min(target, e.Duration))
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return s, actions
	}

	s.PendingSeek = target
	s.HasPending = true
	return s, append(actions, Action{Kind: ShowDrag, Time: target})
}

func (r Recognizer) release(s State, e Event) (State, []Action) {
	if !s.Dragging {
		return s, nil
	}

	var actions []Action
	dx := math.Abs(e.X - s.StartX)
	switch {
	case dx < r.cfg.DragThreshold:
		actions = append(actions, Action{Kind: ScheduleTap, Delay: r.cfg.DoubleTapWindow})
	case s.HasPending:
		actions = append(actions, Action{Kind: CommitSeek, Time: s.PendingSeek})
	}

	s.Dragging = false
	s.PendingSeek = 0
	s.HasPending = false
	return s, append(actions, Action{Kind: HideDrag})
}
