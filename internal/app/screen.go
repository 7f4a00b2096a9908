package app

import (
	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/ui/layout"
)

// Screen implements player.Screen for the terminal: full screen drops the
// header and status rows.
type Screen struct {
	fullscreen    bool
	width, height int
}

// Verify Screen implements player.Screen at compile time.
var _ player.Screen = (*Screen)(nil)

// NewScreen returns a windowed screen.
func NewScreen() *Screen { return &Screen{} }

// IsFullscreen reports the current mode.
func (s *Screen) IsFullscreen() bool { return s.fullscreen }

// RequestFullscreen enters full screen, failing with
// player.ErrScreenTooSmall when the terminal cannot fit the controls.
func (s *Screen) RequestFullscreen() error {
	if !layout.FitsFullscreen(s.width, s.height) {
		return player.ErrScreenTooSmall
	}
	s.fullscreen = true
	return nil
}

// ExitFullscreen returns to windowed mode.
func (s *Screen) ExitFullscreen() error {
	s.fullscreen = false
	return nil
}

// Resize records the terminal size.
func (s *Screen) Resize(width, height int) {
	s.width = width
	s.height = height
}
