package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style.
type Icons struct {
	Play       string
	Pause      string
	Back       string
	Forward    string
	Fullscreen string
	Windowed   string
	Audio      string
	Frames     string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b",  // nf-fa-play
		Pause:      "\uf04c",  // nf-fa-pause
		Back:       "󰴪",       // nf-md-rewind_10
		Forward:    "󰵱",       // nf-md-fast_forward_10
		Fullscreen: "󰊓",       // nf-md-fullscreen
		Windowed:   "󰊔",       // nf-md-fullscreen_exit
		Audio:      "\uf001 ", // nf-fa-music
		Frames:     "󰕧 ",      // nf-md-video
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Back:       "⏪",
		Forward:    "⏩",
		Fullscreen: "⛶",
		Windowed:   "⧉",
		Audio:      "🎵 ",
		Frames:     "🎞 ",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Back:       "<<",
		Forward:    ">>",
		Fullscreen: "[ ]",
		Windowed:   "[-]",
		Audio:      "",
		Frames:     "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// PlayPause returns the glyph for the button that toggles playback: the
// play glyph while paused, the pause glyph while playing.
func PlayPause(paused bool) string {
	if paused {
		return current.Play
	}
	return current.Pause
}

// Back returns the seek-back glyph.
func Back() string {
	return current.Back
}

// Forward returns the seek-forward glyph.
func Forward() string {
	return current.Forward
}

// Fullscreen returns the full-screen toggle glyph for the current mode.
func Fullscreen(active bool) string {
	if active {
		return current.Windowed
	}
	return current.Fullscreen
}

// FormatAudio formats a soundtrack name with the appropriate icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// FormatFrames formats a frames directory name with the appropriate icon.
func FormatFrames(name string) string {
	if current == noneIcons {
		return name + "/"
	}
	return current.Frames + name
}
