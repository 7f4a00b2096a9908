package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

var (
	speakerOnce sync.Once
	speakerErr  error
	speakerRate beep.SampleRate
)

// Soundtrack plays an audio file through the system speaker in step with
// the video.
type Soundtrack struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	title    string
	artist   string
}

// Verify Soundtrack implements Audio at compile time.
var _ Audio = (*Soundtrack)(nil)

// IsAudioFile reports whether path has a supported soundtrack extension.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".flac", ".wav":
		return true
	}
	return false
}

// OpenSoundtrack decodes path and queues it, paused, on the speaker.
func OpenSoundtrack(path string) (*Soundtrack, error) {
	if !IsAudioFile(path) {
		return nil, fmt.Errorf("unsupported soundtrack format: %s", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	title, artist := readTags(f, path)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode soundtrack: %w", err)
	}

	speakerOnce.Do(func() {
		speakerRate = format.SampleRate
		speakerErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		streamer.Close()
		f.Close()
		return nil, fmt.Errorf("init speaker: %w", speakerErr)
	}

	var src beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		src = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}

	s := &Soundtrack{
		file:     f,
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: src, Paused: true},
		title:    title,
		artist:   artist,
	}
	speaker.Play(s.ctrl)
	return s, nil
}

// Title returns the track title tag, or the file name without extension.
func (s *Soundtrack) Title() string { return s.title }

// Artist returns the artist tag, which may be empty.
func (s *Soundtrack) Artist() string { return s.artist }

// Play resumes audio output.
func (s *Soundtrack) Play() {
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
}

// Pause silences audio output.
func (s *Soundtrack) Pause() {
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

// Seek moves the audio playhead to seconds, clamped to the stream.
func (s *Soundtrack) Seek(seconds float64) error {
	if !IsFinite(seconds) {
		return nil
	}
	speaker.Lock()
	defer speaker.Unlock()

	pos := s.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	pos = max(0, min(pos, s.streamer.Len()-1))
	return s.streamer.Seek(pos)
}

// Close stops audio output and releases the file.
func (s *Soundtrack) Close() error {
	speaker.Clear()
	err := s.streamer.Close()
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	return err
}

func readTags(r io.ReadSeeker, path string) (title, artist string) {
	title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m, err := tag.ReadFrom(r)
	if err != nil {
		return title, ""
	}
	if t := strings.TrimSpace(m.Title()); t != "" {
		title = t
	}
	return title, strings.TrimSpace(m.Artist())
}
