// Package media provides the media element the player controls: a video
// played from a directory of still frames, a hidden still used for
// thumbnails, and an optional soundtrack.
//
// Times are float64 seconds. An unknown duration is NaN.
package media

import "math"

// Media is the playback surface shared by the player components.
type Media interface {
	Play() error
	Pause()
	Paused() bool
	// Ended reports whether playback reached the end of the media.
	Ended() bool
	CurrentTime() float64
	// SetCurrentTime moves the playhead. Values outside [0, Duration] are
	// clamped.
	SetCurrentTime(t float64)
	Duration() float64
}

// Audio is a soundtrack that follows the video playhead.
type Audio interface {
	Play()
	Pause()
	Seek(seconds float64) error
	Close() error
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
