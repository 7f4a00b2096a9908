//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/reel/internal/playback"
	"github.com/llehouerou/reel/internal/schedule"
)

// Adapter connects the playback controller to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
	player *playerAdapter
	done   chan struct{}
	wg     sync.WaitGroup
}

// New creates and starts a new MPRIS adapter. Remote calls are posted to
// the event loop through post; status is tracked from sub.
func New(remote Remote, sub *playback.Subscription, post schedule.Dispatcher, info Info) (*Adapter, error) {
	a := &Adapter{
		player: newPlayerAdapter(remote, post, info, time.Now),
		done:   make(chan struct{}),
	}
	a.server = server.NewServer("reel", &rootAdapter{}, a.player)

	a.watch(sub)

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// watch mirrors subscription events into the player adapter until the
// subscription or the adapter is closed.
func (a *Adapter) watch(sub *playback.Subscription) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		for {
			select {
			case e := <-sub.StateChanged:
				a.player.status.setPlaying(e.Current == playback.StatePlaying)
			case p := <-sub.PositionChanged:
				a.player.status.setPosition(p)
			case <-sub.Done:
				return
			case <-a.done:
				return
			}
		}
	}()
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	a.wg.Wait()
	if a.server == nil {
		return nil
	}
	if err := a.server.Stop(); err != nil {
		return fmt.Errorf("stop mpris server: %w", err)
	}
	return nil
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Reel", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"image/jpeg", "image/png"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. D-Bus calls
// arrive on their own goroutines: commands are posted to the loop and
// properties are served from status.
type playerAdapter struct {
	remote Remote
	post   schedule.Dispatcher
	info   Info
	status *status
}

func newPlayerAdapter(remote Remote, post schedule.Dispatcher, info Info, now func() time.Time) *playerAdapter {
	return &playerAdapter{
		remote: remote,
		post:   post,
		info:   info,
		status: &status{now: now, duration: info.Duration},
	}
}

func (p *playerAdapter) Next() error {
	return nil // Single video
}

func (p *playerAdapter) Previous() error {
	return nil // Single video
}

func (p *playerAdapter) Pause() error {
	p.post.Post(p.remote.Pause)
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.post.Post(p.remote.TogglePlay)
	return nil
}

func (p *playerAdapter) Stop() error {
	p.post.Post(p.remote.Pause)
	return nil
}

func (p *playerAdapter) Play() error {
	p.post.Post(p.remote.Play)
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	delta := time.Duration(offset) * time.Microsecond
	p.post.Post(func() { p.remote.Seek(delta.Seconds()) })
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	t := (time.Duration(position) * time.Microsecond).Seconds()
	p.post.Post(func() { p.remote.SeekTo(t) })
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if p.status.isPlaying() {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(p.info.Path)),
		Title:   p.info.Title,
	}
	if d := p.status.length(); d > 0 {
		meta.Length = types.Microseconds(secondsToMicro(d))
	}
	if p.info.Artist != "" {
		meta.Artist = []string{p.info.Artist}
	}
	if p.info.ArtPath != "" {
		meta.ArtUrl = "file://" + p.info.ArtPath
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return secondsToMicro(p.status.position()), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.status.length() > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// status is the last known playback state, extrapolated while playing.
type status struct {
	mu       sync.RWMutex
	now      func() time.Time
	playing  bool
	pos      float64
	at       time.Time
	duration float64
}

func (s *status) setPlaying(playing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = s.positionLocked()
	s.at = s.now()
	s.playing = playing
}

func (s *status) setPosition(e playback.PositionChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = e.Position
	s.at = s.now()
	s.playing = e.Playing
	s.duration = e.Duration
}

func (s *status) isPlaying() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playing
}

func (s *status) position() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.positionLocked()
}

func (s *status) length() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if math.IsNaN(s.duration) || math.IsInf(s.duration, 0) {
		return 0
	}
	return s.duration
}

func (s *status) positionLocked() float64 {
	pos := s.pos
	if s.playing && !s.at.IsZero() {
		pos += s.now().Sub(s.at).Seconds()
	}
	if d := s.duration; d > 0 && !math.IsInf(d, 0) && pos > d {
		pos = d
	}
	return pos
}

func secondsToMicro(s float64) int64 {
	return int64(s * 1e6)
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
