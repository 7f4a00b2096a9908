// Package imgproto writes images to the terminal with the Kitty or Sixel
// graphics protocol.
package imgproto

import (
	"image"
	"strings"
)

// Placement positions a prepared image on screen. Row and Col are 1-based;
// Width and Height are in cells. Z orders overlapping Kitty placements.
type Placement struct {
	ID     uint32
	Row    int
	Col    int
	Width  int
	Height int
	Z      int
}

// Protocol abstracts the terminal image display protocol.
type Protocol interface {
	// Name identifies the protocol in logs and the status line.
	Name() string

	// Prepare encodes img under id and returns any one-time terminal
	// command. Kitty transmits to terminal memory; Sixel caches the
	// encoding and returns "".
	Prepare(img image.Image, id uint32) (string, error)

	// Place returns the sequence that draws a prepared image.
	Place(p Placement) string

	// Delete returns the sequence that frees the image. Sixel returns "".
	Delete(id uint32) string

	// TargetPixelSize returns the pixel size an image should be resized to
	// before it fills the given number of cells.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}

// Blank returns a block of spaces the size of an image area, so lipgloss
// never measures escape sequences.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Cell size assumed when the terminal does not report one.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)
