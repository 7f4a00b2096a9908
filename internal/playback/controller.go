// Package playback implements the play/pause and seek operations applied
// to the shared media element.
package playback

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/timefmt"
)

// Controller applies user intents to the media. It holds no playback state
// of its own beyond the paused visual flag; the media is the source of truth.
type Controller struct {
	media      media.Media
	pausedFlag bool
	listeners  []func(StateChange)
	subs       []*Subscription
	closed     bool
	log        zerolog.Logger
}

// New creates a controller for m.
func New(m media.Media, log zerolog.Logger) *Controller {
	return &Controller{media: m, log: log}
}

// Media returns the controlled media.
func (c *Controller) Media() media.Media { return c.media }

// OnStateChange registers a listener for play and pause.
func (c *Controller) OnStateChange(fn func(StateChange)) {
	c.listeners = append(c.listeners, fn)
}

// Subscribe returns a subscription fed from the event loop. Slow readers
// lose events rather than block playback.
func (c *Controller) Subscribe() *Subscription {
	sub := newSubscription()
	if c.closed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Close ends every subscription. Safe to call more than once.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
}

// State returns the current playback state.
func (c *Controller) State() State {
	if c.media.Paused() {
		return StatePaused
	}
	return StatePlaying
}

// PausedFlag reports whether the controls marked playback as paused. It is
// only set by an explicit pause or by reaching the end, never initially.
func (c *Controller) PausedFlag() bool { return c.pausedFlag }

// TogglePlay starts paused media and pauses playing media.
func (c *Controller) TogglePlay() {
	if c.media.Paused() {
		c.Play()
		return
	}
	c.Pause()
}

// Play starts playback. A failure is logged and changes nothing.
func (c *Controller) Play() {
	if !c.media.Paused() {
		return
	}
	if err := c.media.Play(); err != nil {
		c.log.Warn().Err(err).Msg("play failed")
		return
	}
	c.pausedFlag = false
	c.emit(StatePaused, StatePlaying)
}

// Pause pauses playback.
func (c *Controller) Pause() {
	if c.media.Paused() {
		return
	}
	c.media.Pause()
	c.pausedFlag = true
	c.emit(StatePlaying, StatePaused)
}

// Seek moves the playhead by delta seconds, clamped to [0, duration].
// Nothing happens while the duration is unknown.
func (c *Controller) Seek(delta float64) {
	d := c.media.Duration()
	if !media.IsFinite(d) || !media.IsFinite(delta) {
		return
	}
	c.media.SetCurrentTime(media.Clamp(c.media.CurrentTime()+delta, 0, d))
	c.publishPosition()
}

// SeekTo sets the playhead to t. Non-finite targets are dropped.
func (c *Controller) SeekTo(t float64) {
	if !media.IsFinite(t) {
		return
	}
	c.media.SetCurrentTime(t)
	c.publishPosition()
}

// SeekFraction seeks to fraction×duration, as a timeline click does.
func (c *Controller) SeekFraction(fraction float64) {
	c.SeekTo(fraction * c.media.Duration())
}

// Sync is called on every time update. Media that paused itself at the end
// is reported as a pause.
func (c *Controller) Sync() {
	if c.media.Ended() && !c.media.Paused() {
		c.Pause()
	}
}

// Progress computes the time display.
func (c *Controller) Progress() Progress {
	cur := c.media.CurrentTime()
	dur := c.media.Duration()

	var pct float64
	if media.IsFinite(dur) && dur > 0 && media.IsFinite(cur) {
		pct = media.Clamp(cur/dur*100, 0, 100)
	}

	total := dur
	if math.IsNaN(total) {
		total = 0
	}

	return Progress{
		Percent: pct,
		Current: timefmt.Format(cur),
		Total:   timefmt.Format(total),
	}
}

func (c *Controller) emit(prev, cur State) {
	e := StateChange{Previous: prev, Current: cur}
	for _, fn := range c.listeners {
		fn(e)
	}
	for _, sub := range c.subs {
		sub.sendState(e)
	}
	c.publishPosition()
}

func (c *Controller) publishPosition() {
	if len(c.subs) == 0 {
		return
	}
	e := PositionChange{
		Position: c.media.CurrentTime(),
		Duration: c.media.Duration(),
		Playing:  !c.media.Paused(),
	}
	for _, sub := range c.subs {
		sub.sendPosition(e)
	}
}
