package media

import (
	"image"
	"math"

	"github.com/rs/zerolog"

	"github.com/llehouerou/reel/internal/schedule"
)

// Video plays Frames against a clock. It starts paused at 0.
type Video struct {
	frames *Frames
	clock  schedule.Clock
	audio  Audio
	log    zerolog.Logger

	paused bool
	base   float64 // playhead when paused, or when playback last (re)started
	since  float64 // clock reading in seconds when playback last (re)started
}

// Verify Video implements Media at compile time.
var _ Media = (*Video)(nil)

// NewVideo creates a paused video over frames. Soundtrack failures are
// reported to log; the video keeps playing without them.
func NewVideo(frames *Frames, clock schedule.Clock, log zerolog.Logger) *Video {
	return &Video{frames: frames, clock: clock, log: log, paused: true}
}

// AttachAudio makes a soundtrack follow play, pause and seeks.
func (v *Video) AttachAudio(a Audio) {
	v.audio = a
	v.seekAudio(v.base)
}

// Frames returns the underlying frame list.
func (v *Video) Frames() *Frames { return v.frames }

// Play starts playback. Playing an ended video restarts it from 0.
func (v *Video) Play() error {
	if v.Ended() {
		v.base = 0
		v.seekAudio(0)
	}
	if !v.paused {
		return nil
	}
	v.paused = false
	v.since = v.now()
	if v.audio != nil {
		v.audio.Play()
	}
	return nil
}

// Pause freezes the playhead.
func (v *Video) Pause() {
	if v.paused {
		return
	}
	v.base = v.CurrentTime()
	v.paused = true
	if v.audio != nil {
		v.audio.Pause()
	}
}

// Paused reports whether playback is paused.
func (v *Video) Paused() bool { return v.paused }

// Ended reports whether the playhead reached the last frame's end.
func (v *Video) Ended() bool {
	return v.CurrentTime() >= v.Duration()
}

// CurrentTime returns the playhead in seconds.
func (v *Video) CurrentTime() float64 {
	if v.paused {
		return v.base
	}
	return math.Min(v.base+(v.now()-v.since), v.Duration())
}

// SetCurrentTime moves the playhead, clamped to [0, Duration].
func (v *Video) SetCurrentTime(t float64) {
	if !IsFinite(t) {
		return
	}
	t = Clamp(t, 0, v.Duration())
	v.base = t
	v.since = v.now()
	v.seekAudio(t)
}

// Duration returns the running time in seconds.
func (v *Video) Duration() float64 {
	return v.frames.Duration()
}

// FrameIndex returns the index of the frame at the playhead.
func (v *Video) FrameIndex() int {
	return v.frames.Index(v.CurrentTime())
}

// Frame decodes the frame at the playhead.
func (v *Video) Frame() (image.Image, error) {
	return v.frames.Load(v.FrameIndex())
}

func (v *Video) seekAudio(t float64) {
	if v.audio == nil {
		return
	}
	if err := v.audio.Seek(t); err != nil {
		v.log.Warn().Err(err).Float64("time", t).Msg("soundtrack seek failed")
	}
}

func (v *Video) now() float64 {
	return float64(v.clock.Now().UnixNano()) / 1e9
}
