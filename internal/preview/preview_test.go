package preview

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/schedule"
)

type fakeSource struct {
	seeking  bool
	seeks    []float64
	frame    image.Image
	onSeeked func()
}

func (s *fakeSource) Seeking() bool      { return s.seeking }
func (s *fakeSource) Frame() image.Image { return s.frame }
func (s *fakeSource) OnSeeked(fn func()) { s.onSeeked = fn }
func (s *fakeSource) Seek(t float64) {
	s.seeking = true
	s.seeks = append(s.seeks, t)
}

// complete finishes the outstanding seek with a solid frame.
func (s *fakeSource) complete(c color.Color) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 18))
	for y := range 18 {
		for x := range 32 {
			img.Set(x, y, c)
		}
	}
	s.frame = img
	s.seeking = false
	s.onSeeked()
}

func newPreviewer() (*Previewer, *fakeSource, *schedule.Manual) {
	clock := schedule.NewManual(time.Unix(0, 0))
	src := &fakeSource{}
	return New(DefaultConfig(), src, clock), src, clock
}

func TestThrottle_LeadingEdge(t *testing.T) {
	clock := schedule.NewManual(time.Unix(0, 0))
	th := NewThrottle(clock, 200*time.Millisecond)

	calls := 0
	for range 5 {
		th.Do(func() { calls++ })
		clock.Advance(50 * time.Millisecond)
	}
	// calls at 0,50,100,150 fall in the first window; 200 opens a new one
	assert.Equal(t, 2, calls)

	clock.Advance(time.Second)
	assert.False(t, th.Blocked())
	assert.True(t, th.Do(func() { calls++ }))
	assert.Equal(t, 3, calls)
}

func TestHover_PositionsPanel(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{"centered", 500, 420},
		{"clamped left", 30, 0},
		{"clamped right", 990, 840},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := newPreviewer()
			require.True(t, p.Hover(tt.offset, 1000, 100))
			assert.True(t, p.Panel().Visible)
			assert.InDelta(t, tt.want, p.Panel().Left, 1e-9)
		})
	}
}

func TestHover_SetsTimeAndSeeks(t *testing.T) {
	p, src, _ := newPreviewer()

	p.Hover(650, 1000, 100)

	assert.Equal(t, "1:05", p.Panel().Time)
	require.Len(t, src.seeks, 1)
	assert.InDelta(t, 65.0, src.seeks[0], 1e-9)
}

func TestHover_OutOfBoundsIgnored(t *testing.T) {
	p, src, _ := newPreviewer()

	assert.False(t, p.Hover(-1, 1000, 100))
	assert.False(t, p.Panel().Visible)
	assert.Empty(t, src.seeks)
}

func TestHover_ThrottledWithinWindow(t *testing.T) {
	p, src, clock := newPreviewer()

	assert.True(t, p.Hover(100, 1000, 100))
	src.seeking = false
	clock.Advance(100 * time.Millisecond)
	assert.False(t, p.Hover(600, 1000, 100))
	clock.Advance(100 * time.Millisecond)
	assert.True(t, p.Hover(700, 1000, 100))

	assert.Len(t, src.seeks, 2)
	assert.Equal(t, "1:10", p.Panel().Time)
}

func TestHover_SkipsSeekWhileSeeking(t *testing.T) {
	p, src, clock := newPreviewer()

	p.Hover(100, 1000, 100)
	clock.Advance(time.Second)
	p.Hover(200, 1000, 100)

	assert.Len(t, src.seeks, 1, "first seek still outstanding")
	assert.Equal(t, "0:20", p.Panel().Time, "panel still follows the pointer")
}

func TestHover_UnknownDurationShowsPanelWithoutSeek(t *testing.T) {
	p, src, _ := newPreviewer()

	assert.True(t, p.Hover(100, 1000, math.NaN()))
	assert.True(t, p.Panel().Visible)
	assert.Equal(t, "0:00", p.Panel().Time)
	assert.Empty(t, src.seeks)
}

func TestLeave_HidesOnly(t *testing.T) {
	p, _, _ := newPreviewer()
	p.Hover(500, 1000, 100)

	p.Leave()

	assert.False(t, p.Panel().Visible)
	assert.Equal(t, "0:50", p.Panel().Time)
}

func TestSeeked_PaintsCanvas(t *testing.T) {
	p, src, _ := newPreviewer()
	assert.Zero(t, p.Canvas().Version())

	p.Hover(500, 1000, 100)
	src.complete(color.RGBA{R: 255, A: 255})

	assert.Equal(t, uint64(1), p.Canvas().Version())
	w, h := p.Canvas().Size()
	assert.Equal(t, 160, w)
	assert.Equal(t, 90, h)
	r, g, _, _ := p.Canvas().Image().At(80, 45).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
}

func TestCanvas_PaintNilIsNoop(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Paint(nil)
	assert.Zero(t, c.Version())
}
