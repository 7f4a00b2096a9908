package media

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG frames
	_ "image/png"  // PNG frames
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// ErrNoFrames is returned when a directory holds no frame images.
var ErrNoFrames = errors.New("no frames found")

const frameCacheSize = 48

var frameExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Frames is an immutable, ordered list of frame images played at a fixed
// rate. It is shared by the visible video and the hidden preview still and
// is safe for concurrent use.
type Frames struct {
	dir   string
	paths []string
	fps   float64

	mu    sync.Mutex
	cache map[int]image.Image
	order []int // least recently used first
}

// OpenFrames lists the frame images in dir in lexical order.
func OpenFrames(dir string, fps float64) (*Frames, error) {
	if fps <= 0 || !IsFinite(fps) {
		return nil, fmt.Errorf("invalid frame rate %v", fps)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read frames dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if frameExts[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFrames, dir)
	}
	slices.Sort(paths)

	return &Frames{
		dir:   dir,
		paths: paths,
		fps:   fps,
		cache: make(map[int]image.Image),
	}, nil
}

// Dir returns the directory the frames were read from.
func (f *Frames) Dir() string { return f.dir }

// Len returns the number of frames.
func (f *Frames) Len() int { return len(f.paths) }

// FPS returns the playback rate.
func (f *Frames) FPS() float64 { return f.fps }

// Duration returns the running time in seconds.
func (f *Frames) Duration() float64 {
	return float64(len(f.paths)) / f.fps
}

// Index returns the frame shown at time t.
func (f *Frames) Index(t float64) int {
	if !IsFinite(t) || t <= 0 {
		return 0
	}
	i := int(math.Floor(t * f.fps))
	return min(i, len(f.paths)-1)
}

// Load decodes frame i, serving recently used frames from memory.
func (f *Frames) Load(i int) (image.Image, error) {
	if i < 0 || i >= len(f.paths) {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", i, len(f.paths))
	}

	f.mu.Lock()
	if img, ok := f.cache[i]; ok {
		f.touch(i)
		f.mu.Unlock()
		return img, nil
	}
	f.mu.Unlock()

	img, err := decodeFile(f.paths[i])
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cache[i]; !ok {
		f.cache[i] = img
		f.order = append(f.order, i)
		for len(f.order) > frameCacheSize {
			delete(f.cache, f.order[0])
			f.order = f.order[1:]
		}
	}
	return img, nil
}

// touch moves i to the back of the LRU order. Caller holds mu.
func (f *Frames) touch(i int) {
	if idx := slices.Index(f.order, i); idx >= 0 {
		f.order = append(slices.Delete(f.order, idx, idx+1), i)
	}
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
