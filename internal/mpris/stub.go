//go:build !linux

package mpris

import (
	"github.com/llehouerou/reel/internal/playback"
	"github.com/llehouerou/reel/internal/schedule"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Remote, _ *playback.Subscription, _ schedule.Dispatcher, _ Info) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
