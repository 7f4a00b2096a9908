// Package player is the interactive video widget: it turns pointer, key and
// timeline input into playback actions and owns all transient control state
// (pending taps, feedback glyphs, drag text, preview, overlay visibility).
//
// Every method must be called from the event loop that drives the Runtime.
// Several players can coexist; none share state.
package player

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/reel/internal/gesture"
	"github.com/llehouerou/reel/internal/inactivity"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/playback"
	"github.com/llehouerou/reel/internal/preview"
	"github.com/llehouerou/reel/internal/schedule"
	"github.com/llehouerou/reel/internal/timefmt"
)

// ErrScreenTooSmall is returned by a Screen that cannot enter full screen.
var ErrScreenTooSmall = errors.New("terminal too small for full screen")

// Screen switches the widget's display between windowed and full screen.
type Screen interface {
	IsFullscreen() bool
	RequestFullscreen() error
	ExitFullscreen() error
}

// Config tunes the widget.
type Config struct {
	Gesture  gesture.Config
	SeekStep float64       // seconds moved by shortcuts, buttons and double taps
	Feedback time.Duration // how long a seek glyph stays visible
	Idle     time.Duration // overlay auto-hide delay while playing
	Preview  preview.Config
}

// DefaultConfig returns the stock widget settings.
func DefaultConfig() Config {
	return Config{
		Gesture:  gesture.DefaultConfig(),
		SeekStep: 10,
		Feedback: 500 * time.Millisecond,
		Idle:     inactivity.DefaultTimeout,
		Preview:  preview.DefaultConfig(),
	}
}

// Surface locates the video surface in the pointer's pixel space.
type Surface struct {
	Left  float64
	Width float64
}

// Button identifies a control button.
type Button int

const (
	ButtonBack Button = iota
	ButtonPlay
	ButtonForward
	ButtonFullscreen
)

// Player is one video widget.
type Player struct {
	cfg    Config
	rt     schedule.Runtime
	log    zerolog.Logger
	ctrl   *playback.Controller
	screen Screen

	rec gesture.Recognizer
	gs  gesture.State
	tap *schedule.Task

	back    *glyph
	forward *glyph

	drag        string
	dragVisible bool

	preview *preview.Previewer
	idle    *inactivity.Tracker
}

// New creates a widget over m. thumbs is the hidden media used for timeline
// previews.
func New(
	cfg Config,
	m media.Media,
	thumbs preview.Source,
	rt schedule.Runtime,
	screen Screen,
	log zerolog.Logger,
) *Player {
	p := &Player{
		cfg:     cfg,
		rt:      rt,
		log:     log,
		ctrl:    playback.New(m, log),
		screen:  screen,
		rec:     gesture.New(cfg.Gesture),
		tap:     schedule.NewTask(rt),
		back:    newGlyph(rt),
		forward: newGlyph(rt),
		preview: preview.New(cfg.Preview, thumbs, rt),
		idle:    inactivity.New(rt, cfg.Idle),
	}
	p.ctrl.OnStateChange(func(e playback.StateChange) {
		if e.Current == playback.StatePlaying {
			p.idle.Played()
			return
		}
		p.idle.Paused()
	})
	return p
}

// Controller returns the playback controller.
func (p *Player) Controller() *playback.Controller { return p.ctrl }

// Previewer returns the timeline previewer.
func (p *Player) Previewer() *preview.Previewer { return p.preview }

// Activity records user input for the overlay auto-hide.
func (p *Player) Activity() { p.idle.Activity() }

// PointerDown handles a press at x. onControl marks presses that landed on
// a control button or the timeline; those never start a gesture.
func (p *Player) PointerDown(x float64, s Surface, onControl bool) {
	p.idle.Activity()
	p.step(gesture.Press, x, s, onControl)
}

// PointerMove handles pointer motion anywhere on screen.
func (p *Player) PointerMove(x float64, s Surface) {
	p.idle.Activity()
	p.step(gesture.Move, x, s, false)
}

// PointerUp handles a release anywhere on screen.
func (p *Player) PointerUp(x float64, s Surface) {
	p.idle.Activity()
	p.step(gesture.Release, x, s, false)
}

func (p *Player) step(kind gesture.Kind, x float64, s Surface, onControl bool) {
	m := p.ctrl.Media()
	var actions []gesture.Action
	p.gs, actions = p.rec.Step(p.gs, gesture.Event{
		Kind:      kind,
		At:        p.rt.Now(),
		X:         x,
		Left:      s.Left,
		Width:     s.Width,
		OnControl: onControl,
		MediaTime: m.CurrentTime(),
		Duration:  m.Duration(),
	})
	for _, a := range actions {
		p.apply(a)
	}
}

func (p *Player) apply(a gesture.Action) {
	switch a.Kind {
	case gesture.CancelTap:
		p.tap.Cancel()
	case gesture.DoubleTap:
		switch a.Zone {
		case gesture.ZoneBack:
			p.SeekBack()
		case gesture.ZoneForward:
			p.SeekForward()
		case gesture.ZoneToggle:
			p.ctrl.TogglePlay()
		}
	case gesture.ScheduleTap:
		p.tap.Schedule(a.Delay, p.ctrl.TogglePlay)
	case gesture.ShowDrag:
		p.drag = timefmt.Format(a.Time)
		p.dragVisible = true
	case gesture.HideDrag:
		p.dragVisible = false
	case gesture.CommitSeek:
		p.ctrl.SeekTo(a.Time)
	}
}

// SeekBack seeks one step back and flashes the left glyph.
func (p *Player) SeekBack() {
	p.ctrl.Seek(-p.cfg.SeekStep)
	p.back.show(p.cfg.Feedback)
}

// SeekForward seeks one step forward and flashes the right glyph.
func (p *Player) SeekForward() {
	p.ctrl.Seek(p.cfg.SeekStep)
	p.forward.show(p.cfg.Feedback)
}

// TogglePlay toggles playback.
func (p *Player) TogglePlay() { p.ctrl.TogglePlay() }

// Do runs a keyboard action. It reports false for actions the widget does
// not handle.
func (p *Player) Do(action keymap.Action) bool {
	switch action {
	case keymap.ActionTogglePlay:
		p.TogglePlay()
	case keymap.ActionSeekBack:
		p.SeekBack()
	case keymap.ActionSeekForward:
		p.SeekForward()
	case keymap.ActionFullscreen:
		p.ToggleFullscreen()
	default:
		return false
	}
	return true
}

// Press runs a control button.
func (p *Player) Press(b Button) {
	switch b {
	case ButtonBack:
		p.SeekBack()
	case ButtonPlay:
		p.TogglePlay()
	case ButtonForward:
		p.SeekForward()
	case ButtonFullscreen:
		p.ToggleFullscreen()
	}
}

// ToggleFullscreen enters or leaves full screen. Failures are logged only.
func (p *Player) ToggleFullscreen() {
	if p.screen == nil {
		return
	}
	if p.screen.IsFullscreen() {
		if err := p.screen.ExitFullscreen(); err != nil {
			p.log.Warn().Err(err).Msg("exit full screen")
		}
		return
	}
	if err := p.screen.RequestFullscreen(); err != nil {
		p.log.Warn().Err(err).Msg("request full screen")
	}
}

// TimelineClick seeks to the clicked fraction of a timeline width px wide.
func (p *Player) TimelineClick(x, width float64) {
	if width <= 0 {
		return
	}
	p.ctrl.SeekFraction(x / width)
}

// TimelineHover updates the preview for the pointer at x on the timeline.
func (p *Player) TimelineHover(x, width float64) {
	p.preview.Hover(x, width, p.ctrl.Media().Duration())
}

// TimelineLeave hides the preview.
func (p *Player) TimelineLeave() { p.preview.Leave() }

// JumpTo seeks to t seconds, clamped to the media.
func (p *Player) JumpTo(t float64) {
	d := p.ctrl.Media().Duration()
	if media.IsFinite(d) {
		t = media.Clamp(t, 0, d)
	}
	p.ctrl.SeekTo(t)
}

// TimeUpdate is called whenever the media time advances.
func (p *Player) TimeUpdate() { p.ctrl.Sync() }

// View is a snapshot of everything the controls display.
type View struct {
	Progress        playback.Progress
	Paused          bool
	Held            bool // paused by the user or by reaching the end, not initially
	BackGlyph       bool
	ForwardGlyph    bool
	Drag            string // empty when no drag is shown
	Preview         preview.Panel
	ControlsVisible bool
	Fullscreen      bool
}

// View returns the current display state.
func (p *Player) View() View {
	v := View{
		Progress:        p.ctrl.Progress(),
		Paused:          p.ctrl.Media().Paused(),
		Held:            p.ctrl.PausedFlag(),
		BackGlyph:       p.back.visible,
		ForwardGlyph:    p.forward.visible,
		Preview:         p.preview.Panel(),
		ControlsVisible: p.idle.Visible(),
	}
	if p.dragVisible {
		v.Drag = p.drag
	}
	if p.screen != nil {
		v.Fullscreen = p.screen.IsFullscreen()
	}
	return v
}

// glyph is a feedback indicator that hides itself after a delay.
type glyph struct {
	visible bool
	hide    *schedule.Task
}

func newGlyph(s schedule.Scheduler) *glyph {
	return &glyph{hide: schedule.NewTask(s)}
}

func (g *glyph) show(d time.Duration) {
	g.visible = true
	g.hide.Schedule(d, func() { g.visible = false })
}
