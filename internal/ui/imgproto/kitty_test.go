package imgproto

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"
)

func testImage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestKitty_PrepareTransmitsPNG(t *testing.T) {
	k := &Kitty{}
	cmd, err := k.Prepare(testImage(10, 10), 7)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	if !strings.HasPrefix(cmd, escStart) || !strings.HasSuffix(cmd, escEnd) {
		t.Fatalf("command is not a single graphics escape: %q", cmd)
	}
	for _, want := range []string{"a=t", "f=100", "i=7", "q=2", "m=0"} {
		if !strings.Contains(cmd, want) {
			t.Errorf("command should contain %s", want)
		}
	}

	_, payload, _ := strings.Cut(strings.TrimSuffix(cmd, escEnd), ";")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("payload is not a png: %v", err)
	}
}

func TestTransmit_Chunked(t *testing.T) {
	data := make([]byte, 4000)
	for i := range data {
		data[i] = byte(i % 256)
	}

	cmd := transmit(data, 42)

	if n := strings.Count(cmd, escStart); n != 2 {
		t.Fatalf("expected 2 chunks, got %d", n)
	}
	first, rest, _ := strings.Cut(cmd, escEnd)
	if !strings.Contains(first, "i=42") || !strings.Contains(first, "m=1") {
		t.Errorf("first chunk = %q, want id and continuation", first[:40])
	}
	if strings.Contains(rest, "i=") {
		t.Error("later chunks should not repeat the image ID")
	}
	if !strings.HasPrefix(rest, escStart+"m=0;") {
		t.Error("last chunk should have m=0")
	}
}

func TestKitty_Place(t *testing.T) {
	k := &Kitty{}
	cmd := k.Place(Placement{ID: 42, Row: 5, Col: 10, Width: 8, Height: 4, Z: 2})

	if !strings.HasPrefix(cmd, "\x1b[s\x1b[5;10H") {
		t.Errorf("command should save cursor and move to 5;10, got %q", cmd)
	}
	if !strings.HasSuffix(cmd, "\x1b[u") {
		t.Error("command should restore cursor")
	}
	for _, want := range []string{"a=p", "i=42", "p=1", "c=8", "r=4", "z=2", "C=1"} {
		if !strings.Contains(cmd, want) {
			t.Errorf("command should contain %s", want)
		}
	}
}

func TestKitty_PlaceNothing(t *testing.T) {
	k := &Kitty{}
	if cmd := k.Place(Placement{Row: 1, Col: 1, Width: 4, Height: 2}); cmd != "" {
		t.Errorf("Place() without image = %q, want empty", cmd)
	}
	if cmd := k.Place(Placement{ID: 1, Row: 1, Col: 1}); cmd != "" {
		t.Errorf("Place() with empty box = %q, want empty", cmd)
	}
}

func TestKitty_Delete(t *testing.T) {
	k := &Kitty{}
	if got, want := k.Delete(9), "\x1b_Ga=d,d=I,i=9,q=2;\x1b\\"; got != want {
		t.Errorf("Delete() = %q, want %q", got, want)
	}
	if got := k.Delete(0); got != "" {
		t.Errorf("Delete(0) = %q, want empty", got)
	}
}

func TestBlank(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		expect string
	}{
		{"3x2", 3, 2, "   \n   "},
		{"zero width", 0, 2, ""},
		{"zero height", 3, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blank(tt.w, tt.h); got != tt.expect {
				t.Errorf("Blank(%d, %d) = %q, want %q", tt.w, tt.h, got, tt.expect)
			}
		})
	}
}
