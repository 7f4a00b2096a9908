package playback

import (
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/reel/internal/media"
)

func newController(duration float64) (*Controller, *media.Mock) {
	m := media.NewMock(duration)
	return New(m, zerolog.Nop()), m
}

func TestTogglePlay(t *testing.T) {
	c, m := newController(100)
	var events []StateChange
	c.OnStateChange(func(e StateChange) { events = append(events, e) })

	assert.False(t, c.PausedFlag(), "flag is not set initially")

	c.TogglePlay()
	assert.False(t, m.Paused())
	assert.Equal(t, StatePlaying, c.State())
	assert.False(t, c.PausedFlag())

	c.TogglePlay()
	assert.True(t, m.Paused())
	assert.True(t, c.PausedFlag())

	assert.Equal(t, []StateChange{
		{Previous: StatePaused, Current: StatePlaying},
		{Previous: StatePlaying, Current: StatePaused},
	}, events)
}

func TestTogglePlay_PlayErrorKeepsState(t *testing.T) {
	c, m := newController(100)
	m.SetPlayError(errors.New("no device"))
	c.Pause() // no-op while paused
	notified := false
	c.OnStateChange(func(StateChange) { notified = true })

	c.TogglePlay()

	assert.True(t, m.Paused())
	assert.False(t, notified)
	assert.Equal(t, 1, m.PlayCalls())
}

func TestSeek_StaysInBounds(t *testing.T) {
	durations := []float64{0, 1, 9.5, 60, 3600}
	deltas := []float64{-1e6, -10, -0.5, 0, 0.5, 10, 1e6}

	for _, d := range durations {
		for _, delta := range deltas {
			for _, frac := range []float64{0, 0.25, 0.5, 1} {
				c, m := newController(d)
				m.SetTime(frac * d)

				c.Seek(delta)

				got := m.CurrentTime()
				if got < 0 || got > d {
					t.Errorf("duration %v start %v delta %v: time %v out of bounds", d, frac*d, delta, got)
				}
				for _, s := range m.SeekCalls() {
					if s < 0 || s > d {
						t.Errorf("out-of-range seek request %v for duration %v", s, d)
					}
				}
			}
		}
	}
}

func TestSeek_Relative(t *testing.T) {
	c, m := newController(100)
	m.SetTime(50)

	c.Seek(10)
	assert.InDelta(t, 60.0, m.CurrentTime(), 1e-9)
	c.Seek(-10)
	assert.InDelta(t, 50.0, m.CurrentTime(), 1e-9)
}

func TestSeek_UnknownDurationIsSkipped(t *testing.T) {
	c, m := newController(math.NaN())
	c.Seek(10)
	assert.Empty(t, m.SeekCalls())
}

func TestSeekFraction(t *testing.T) {
	c, m := newController(200)
	c.SeekFraction(0.25)
	assert.Equal(t, []float64{50}, m.SeekCalls())

	c2, m2 := newController(math.NaN())
	c2.SeekFraction(0.5)
	assert.Empty(t, m2.SeekCalls())
}

func TestSync_PausesAtEnd(t *testing.T) {
	c, m := newController(10)
	c.Play()
	var got []StateChange
	c.OnStateChange(func(e StateChange) { got = append(got, e) })

	m.SetTime(5)
	c.Sync()
	assert.Empty(t, got)

	m.SetTime(10)
	c.Sync()
	assert.True(t, m.Paused())
	assert.True(t, c.PausedFlag())
	assert.Len(t, got, 1)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		time     float64
		want     Progress
	}{
		{"halfway", 130, 65, Progress{Percent: 50, Current: "1:05", Total: "2:10"}},
		{"unknown duration", math.NaN(), 0, Progress{Percent: 0, Current: "0:00", Total: "0:00"}},
		{"zero duration", 0, 0, Progress{Percent: 0, Current: "0:00", Total: "0:00"}},
		{"end", 5, 5, Progress{Percent: 100, Current: "0:05", Total: "0:05"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newController(tt.duration)
			m.SetTime(tt.time)
			assert.Equal(t, tt.want, c.Progress())
		})
	}
}

func TestSubscribe_ReceivesStateAndPosition(t *testing.T) {
	c, m := newController(100)
	m.SetTime(20)
	sub := c.Subscribe()

	c.TogglePlay()

	select {
	case e := <-sub.StateChanged:
		assert.Equal(t, StateChange{Previous: StatePaused, Current: StatePlaying}, e)
	default:
		t.Fatal("no state change delivered")
	}
	select {
	case p := <-sub.PositionChanged:
		assert.Equal(t, PositionChange{Position: 20, Duration: 100, Playing: true}, p)
	default:
		t.Fatal("no position delivered")
	}

	c.Seek(10)
	p := <-sub.PositionChanged
	assert.InDelta(t, 30.0, p.Position, 1e-9)
}

func TestSubscribe_NoEventsForFailedPlay(t *testing.T) {
	c, m := newController(100)
	m.SetPlayError(errors.New("boom"))
	sub := c.Subscribe()

	c.TogglePlay()

	assert.Empty(t, sub.StateChanged)
	assert.Empty(t, sub.PositionChanged)
}

func TestClose_SignalsSubscribers(t *testing.T) {
	c, _ := newController(100)
	a := c.Subscribe()
	b := c.Subscribe()

	c.Close()
	c.Close()

	<-a.Done
	<-b.Done
}
