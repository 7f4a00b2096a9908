package preview

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// Canvas is the fixed-resolution thumbnail surface. Each Paint bumps the
// version so renderers know when to retransmit.
type Canvas struct {
	img     *image.RGBA
	version uint64
}

// NewCanvas creates a blank canvas of w×h pixels.
func NewCanvas(w, h int) *Canvas {
	w = max(w, 1)
	h = max(h, 1)
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Paint scales src to the canvas resolution and draws it.
func (c *Canvas) Paint(src image.Image) {
	if src == nil {
		return
	}
	b := c.img.Bounds()
	scaled := resize.Resize(uint(b.Dx()), uint(b.Dy()), src, resize.Bilinear)
	draw.Draw(c.img, b, scaled, scaled.Bounds().Min, draw.Src)
	c.version++
}

// Image returns the canvas pixels.
func (c *Canvas) Image() image.Image { return c.img }

// Size returns the canvas resolution.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Version counts paints; zero means never painted.
func (c *Canvas) Version() uint64 { return c.version }
