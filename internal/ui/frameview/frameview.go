// Package frameview keeps one image slot in terminal memory: the current
// video frame or the preview thumbnail.
package frameview

import (
	"image"
	"sync/atomic"

	"github.com/nfnt/resize"

	"github.com/llehouerou/reel/internal/ui/imgproto"
)

// nextImageID is shared by all renderers so IDs never collide on screen.
var nextImageID uint32

func newImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// Renderer transmits an image when its key or size changes and places it
// on demand.
//
// The transmission stays attached to every placement until the next image
// replaces it. bubbletea may drop intermediate frames, so a one-shot write
// could be lost; unchanged lines are not redrawn, so repeating it is cheap.
type Renderer struct {
	proto imgproto.Protocol
	z     int

	key      int64
	imageID  uint32
	ready    bool
	transmit string

	width  int
	height int
}

// New creates a renderer drawing with proto at stacking level z. A nil
// proto disables images.
func New(proto imgproto.Protocol, z int) *Renderer {
	return &Renderer{proto: proto, z: z}
}

// Enabled reports whether images can be shown at all.
func (r *Renderer) Enabled() bool { return r.proto != nil }

// SetSize sets the display box in cells. A new size forces a retransmit.
func (r *Renderer) SetSize(width, height int) {
	if r.width != width || r.height != height {
		r.width = width
		r.height = height
		r.ready = false
	}
}

// Size returns the display box in cells.
func (r *Renderer) Size() (width, height int) { return r.width, r.height }

// Prepare makes img, identified by key, the current image: the previous
// image is deleted and the new one transmitted with the next placement.
// It reports whether anything changed; a key already prepared at the
// current size is skipped.
func (r *Renderer) Prepare(key int64, img image.Image) (bool, error) {
	if r.proto == nil || img == nil || r.width <= 0 || r.height <= 0 {
		return false, nil
	}
	if r.ready && r.key == key {
		return false, nil
	}

	r.transmit = r.proto.Delete(r.imageID)
	r.imageID = 0
	r.key = key
	r.ready = true

	pw, ph := r.proto.TargetPixelSize(r.width, r.height)
	//nolint:gosec // cell boxes are small
	scaled := resize.Thumbnail(uint(max(pw, 1)), uint(max(ph, 1)), img, resize.Bilinear)

	id := newImageID()
	cmd, err := r.proto.Prepare(scaled, id)
	if err != nil {
		return true, err
	}
	r.imageID = id
	r.transmit += cmd
	return true, nil
}

// HasImage reports whether an image is ready to place.
func (r *Renderer) HasImage() bool { return r.imageID != 0 }

// Placement returns the commands drawing the image at the 1-based row and
// column, preceded by its transmission, or "" when there is nothing to
// draw.
func (r *Renderer) Placement(row, col int) string {
	if r.proto == nil || r.imageID == 0 {
		return r.transmit
	}
	return r.transmit + r.proto.Place(imgproto.Placement{
		ID:     r.imageID,
		Row:    row,
		Col:    col,
		Width:  r.width,
		Height: r.height,
		Z:      r.z,
	})
}

// Placeholder returns blank space covering the image box.
func (r *Renderer) Placeholder() string {
	return imgproto.Blank(r.width, r.height)
}

// Clear frees the image. The deletion goes out with the next placement.
func (r *Renderer) Clear() {
	if r.proto != nil {
		r.transmit = r.proto.Delete(r.imageID)
	}
	r.imageID = 0
	r.ready = false
}

// Pending returns the commands not yet attached to a placement, such as
// the deletion left by Clear.
func (r *Renderer) Pending() string { return r.transmit }
