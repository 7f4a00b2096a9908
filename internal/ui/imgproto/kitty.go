package imgproto

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	// chunkSize is the largest payload the protocol accepts per escape.
	chunkSize = 4096
)

// Kitty implements Protocol with the Kitty graphics protocol. Images are
// transmitted once and placed by ID.
type Kitty struct{}

func (*Kitty) Name() string { return "kitty" }

func (*Kitty) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return transmit(buf.Bytes(), id), nil
}

// transmit sends PNG data without displaying it (a=t). f=100 is PNG and q=2
// suppresses terminal responses.
func transmit(pngData []byte, id uint32) string {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String()
}

// Place draws the image with a fixed placement ID, so placing it again
// moves it instead of leaving a copy behind. The cursor is saved and
// restored around the placement.
func (*Kitty) Place(p Placement) string {
	if p.ID == 0 || p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", p.Row, p.Col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,z=%d,C=1,q=2;%s",
		escStart, p.ID, p.Width, p.Height, p.Z, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// Delete frees the image and all of its placements (d=I).
func (*Kitty) Delete(id uint32) string {
	if id == 0 {
		return ""
	}
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", escStart, id, escEnd)
}

// TargetPixelSize assumes the common 8x16 cell; the terminal scales to the
// requested cell box anyway.
func (*Kitty) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return widthCells * 8, heightCells * 16
}
