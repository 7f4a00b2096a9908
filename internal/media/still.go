package media

import (
	"image"

	"github.com/llehouerou/reel/internal/schedule"
)

// Still is a hidden, independent instance of the same frames used to decode
// preview thumbnails. Seeks complete asynchronously: the frame is decoded
// off the event loop and the seek-completion callback runs on the loop.
// An issued seek cannot be cancelled.
type Still struct {
	frames *Frames
	post   schedule.Dispatcher

	seeking  bool
	current  float64
	frame    image.Image
	err      error
	onSeeked func()
}

// NewStill creates a still over frames. post delivers seek completions to
// the event loop.
func NewStill(frames *Frames, post schedule.Dispatcher) *Still {
	return &Still{frames: frames, post: post}
}

// OnSeeked registers the seek-completion callback.
func (s *Still) OnSeeked(fn func()) { s.onSeeked = fn }

// Seeking reports whether a seek is outstanding.
func (s *Still) Seeking() bool { return s.seeking }

// CurrentTime returns the time of the last requested seek.
func (s *Still) CurrentTime() float64 { return s.current }

// Frame returns the most recently decoded frame, or nil.
func (s *Still) Frame() image.Image { return s.frame }

// Err returns the error of the last failed seek, if any.
func (s *Still) Err() error { return s.err }

// Seek decodes the frame at t in the background.
func (s *Still) Seek(t float64) {
	if !IsFinite(t) {
		return
	}
	t = Clamp(t, 0, s.frames.Duration())
	s.seeking = true
	s.current = t
	idx := s.frames.Index(t)

	go func() {
		img, err := s.frames.Load(idx)
		s.post.Post(func() {
			s.seeking = false
			s.err = err
			if err != nil {
				return
			}
			s.frame = img
			if s.onSeeked != nil {
				s.onSeeked()
			}
		})
	}()
}
