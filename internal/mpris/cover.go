package mpris

import (
	"os"
	"path/filepath"
)

// posterNames lists poster filenames looked up next to the frames
// directory, in priority order. Images inside it are frames.
var posterNames = []string{
	"poster.jpg", "poster.png", "poster.jpeg",
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png",
}

// FindArt returns a poster image beside the frames directory dir, or
// fallback (usually the first frame) when there is none.
func FindArt(dir, fallback string) string {
	parent := filepath.Dir(filepath.Clean(dir))
	for _, name := range posterNames {
		path := filepath.Join(parent, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return fallback
}
