//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	Init("none")
}

func TestPlayPause(t *testing.T) {
	tests := []struct {
		style  string
		paused bool
		want   string
	}{
		{"none", true, ">"},
		{"none", false, "||"},
		{"unicode", true, "▶"},
		{"unicode", false, "⏸"},
		{"nerd", true, "\uf04b"},
		{"nerd", false, "\uf04c"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			defer Init("none")

			if got := PlayPause(tt.paused); got != tt.want {
				t.Errorf("PlayPause(%v) = %q, want %q", tt.paused, got, tt.want)
			}
		})
	}
}

func TestSeekGlyphs(t *testing.T) {
	Init("none")
	if Back() != "<<" {
		t.Errorf("Back() = %q", Back())
	}
	if Forward() != ">>" {
		t.Errorf("Forward() = %q", Forward())
	}

	Init("unicode")
	defer Init("none")
	if Back() != "⏪" || Forward() != "⏩" {
		t.Errorf("unicode glyphs = %q %q", Back(), Forward())
	}
}

func TestFullscreen(t *testing.T) {
	Init("none")
	if got := Fullscreen(false); got != "[ ]" {
		t.Errorf("Fullscreen(false) = %q", got)
	}
	if got := Fullscreen(true); got != "[-]" {
		t.Errorf("Fullscreen(true) = %q", got)
	}
}

func TestFormatNames(t *testing.T) {
	tests := []struct {
		style      string
		wantAudio  string
		wantFrames string
	}{
		{"none", "song.mp3", "frames/"},
		{"unicode", "🎵 song.mp3", "🎞 frames"},
		{"nerd", "\uf001 song.mp3", "󰕧 frames"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			defer Init("none")

			if got := FormatAudio("song.mp3"); got != tt.wantAudio {
				t.Errorf("FormatAudio() = %q, want %q", got, tt.wantAudio)
			}
			if got := FormatFrames("frames"); got != tt.wantFrames {
				t.Errorf("FormatFrames() = %q, want %q", got, tt.wantFrames)
			}
		})
	}
}
