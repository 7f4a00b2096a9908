package imgproto

import (
	"image"
	"strings"
	"testing"
)

func TestDetect_Choice(t *testing.T) {
	t.Setenv(EnvOverride, "")

	if p := Detect("kitty"); p == nil || p.Name() != "kitty" {
		t.Errorf("Detect(kitty) = %v", p)
	}
	if p := Detect("sixel"); p == nil || p.Name() != "sixel" {
		t.Errorf("Detect(sixel) = %v", p)
	}
	if p := Detect("none"); p != nil {
		t.Errorf("Detect(none) = %v, want nil", p)
	}
}

func TestDetect_EnvWins(t *testing.T) {
	t.Setenv(EnvOverride, "none")

	if p := Detect("kitty"); p != nil {
		t.Errorf("Detect() = %v, want nil from environment", p)
	}
}

func TestIsKittySupported_Contour(t *testing.T) {
	t.Setenv("CONTOUR_PROFILE", "default")
	t.Setenv("KITTY_WINDOW_ID", "1")

	if IsKittySupported() {
		t.Error("Contour should not report Kitty support")
	}
	if !IsSixelSupported() {
		t.Error("Contour should report Sixel support")
	}
}

func TestSixel_PrepareAndPlace(t *testing.T) {
	s := NewSixel()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	cmd, err := s.Prepare(img, 3)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	if cmd != "" {
		t.Errorf("Prepare() = %q, want empty", cmd)
	}

	first := s.Place(Placement{ID: 3, Row: 2, Col: 4})
	if !strings.HasPrefix(first, "\x1b[s\x1b[2;4H") {
		t.Errorf("Place() should save the cursor and move to 2;4, got %q", first)
	}
	if !strings.Contains(first, "\x1bP") {
		t.Error("Place() should carry the sixel data")
	}
	if second := s.Place(Placement{ID: 3, Row: 2, Col: 4}); second == first {
		t.Error("consecutive placements should differ")
	}

	s.Delete(3)
	if got := s.Place(Placement{ID: 3, Row: 2, Col: 4}); got != "" {
		t.Errorf("Place() after Delete = %q, want empty", got)
	}
}

func TestSixel_TargetPixelSizeKeepsMargin(t *testing.T) {
	s := &Sixel{cellW: 10, cellH: 20}
	w, h := s.TargetPixelSize(4, 3)
	if w != 40 || h != 40 {
		t.Errorf("TargetPixelSize(4, 3) = %dx%d, want 40x40", w, h)
	}
}
