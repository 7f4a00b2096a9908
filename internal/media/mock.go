package media

import "math"

// Mock is a test double for Media.
type Mock struct {
	paused   bool
	time     float64
	duration float64
	playErr  error

	playCalls  int
	pauseCalls int
	seekCalls  []float64
}

// Verify Mock implements Media at compile time.
var _ Media = (*Mock)(nil)

// NewMock creates a paused mock with the given duration (NaN for unknown).
func NewMock(duration float64) *Mock {
	return &Mock{paused: true, duration: duration}
}

func (m *Mock) Play() error {
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	m.paused = false
	return nil
}

func (m *Mock) Pause() {
	m.pauseCalls++
	m.paused = true
}

func (m *Mock) Paused() bool { return m.paused }

func (m *Mock) Ended() bool {
	return !math.IsNaN(m.duration) && m.time >= m.duration
}

func (m *Mock) CurrentTime() float64 { return m.time }

// SetCurrentTime records the request and moves the playhead. The recorded
// value is the raw request so tests can check callers clamp first.
func (m *Mock) SetCurrentTime(t float64) {
	m.seekCalls = append(m.seekCalls, t)
	m.time = t
}

func (m *Mock) Duration() float64 { return m.duration }

// Test helpers

func (m *Mock) SetPaused(p bool) { m.paused = p }

func (m *Mock) SetTime(t float64) { m.time = t }

func (m *Mock) SetDuration(d float64) { m.duration = d }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SeekCalls() []float64 { return m.seekCalls }
