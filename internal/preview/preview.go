// Package preview shows a thumbnail of the frame under the pointer while it
// hovers over the timeline.
package preview

import (
	"image"
	"math"
	"time"

	"github.com/llehouerou/reel/internal/schedule"
	"github.com/llehouerou/reel/internal/timefmt"
)

// Source is the hidden media instance thumbnails are decoded from. Seeks
// complete asynchronously and report through the OnSeeked callback.
type Source interface {
	Seeking() bool
	Seek(t float64)
	Frame() image.Image
	OnSeeked(fn func())
}

// Config sizes the preview.
type Config struct {
	Throttle     time.Duration
	PanelWidth   float64 // px, used to center and clamp the panel
	CanvasWidth  int
	CanvasHeight int
}

// DefaultConfig returns the stock preview settings.
func DefaultConfig() Config {
	return Config{
		Throttle:     200 * time.Millisecond,
		PanelWidth:   160,
		CanvasWidth:  160,
		CanvasHeight: 90,
	}
}

// Panel is the visible state of the preview popup.
type Panel struct {
	Visible bool
	Left    float64 // px from the timeline's left edge
	Time    string
}

// Previewer drives the preview panel from timeline hover positions.
type Previewer struct {
	cfg      Config
	src      Source
	canvas   *Canvas
	throttle *Throttle
	panel    Panel
}

// New creates a previewer that decodes thumbnails from src.
func New(cfg Config, src Source, sched schedule.Scheduler) *Previewer {
	def := DefaultConfig()
	if cfg.PanelWidth <= 0 {
		cfg.PanelWidth = def.PanelWidth
	}
	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		cfg.CanvasWidth, cfg.CanvasHeight = def.CanvasWidth, def.CanvasHeight
	}

	p := &Previewer{
		cfg:      cfg,
		src:      src,
		canvas:   NewCanvas(cfg.CanvasWidth, cfg.CanvasHeight),
		throttle: NewThrottle(sched, cfg.Throttle),
	}
	src.OnSeeked(p.paint)
	return p
}

// Hover handles the pointer at offset px within a timeline width px wide.
// It returns false when the call was throttled or out of bounds.
func (p *Previewer) Hover(offset, width, duration float64) bool {
	accepted := false
	p.throttle.Do(func() {
		accepted = p.update(offset, width, duration)
	})
	return accepted
}

func (p *Previewer) update(offset, width, duration float64) bool {
	if width <= 0 || offset < 0 || offset > width {
		return false
	}

	target := offset / width * duration

	left := offset - p.cfg.PanelWidth/2
	left = math.Max(0, math.Min(left, width-p.cfg.PanelWidth))

	p.panel = Panel{
		Visible: true,
		Left:    left,
		Time:    timefmt.Format(target),
	}

	if !math.IsNaN(target) && !math.IsInf(target, 0) && !p.src.Seeking() {
		p.src.Seek(target)
	}
	return true
}

// Leave hides the panel.
func (p *Previewer) Leave() {
	p.panel.Visible = false
}

// Panel returns the current panel state.
func (p *Previewer) Panel() Panel { return p.panel }

// Canvas returns the thumbnail surface.
func (p *Previewer) Canvas() *Canvas { return p.canvas }

// Config returns the effective settings.
func (p *Previewer) Config() Config { return p.cfg }

func (p *Previewer) paint() {
	p.canvas.Paint(p.src.Frame())
}
