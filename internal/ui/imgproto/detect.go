package imgproto

import (
	"os"
	"strings"
)

// EnvOverride names the environment variable that forces a protocol.
const EnvOverride = "REEL_IMAGE_PROTOCOL"

// Detect returns the protocol to use, or nil when images are disabled or
// unsupported. choice comes from the configuration ("auto", "kitty",
// "sixel", "none"); the environment variable wins over it.
func Detect(choice string) Protocol {
	if override := os.Getenv(EnvOverride); override != "" {
		choice = override
	}

	switch strings.ToLower(choice) {
	case "kitty":
		return &Kitty{}
	case "sixel":
		return NewSixel()
	case "none":
		return nil
	}

	if IsKittySupported() {
		return &Kitty{}
	}
	if IsSixelSupported() {
		return NewSixel()
	}
	return nil
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour sets CONTOUR_PROFILE but has no Kitty graphics. Parent
	// terminal variables can leak into it.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	// KONSOLE_VERSION is like "220401"; graphics arrived in 22.04.
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")

	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if term == "foot" || term == "foot-extra" || os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}

	// xterm only has sixel when built for it, but nothing better matched.
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}
