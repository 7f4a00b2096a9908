package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons         string `koanf:"icons"`          // "nerd", "unicode", or "none"
	ImageProtocol string `koanf:"image_protocol"` // "auto", "kitty", "sixel", or "none"
	MPRIS         *bool  `koanf:"mpris"`          // register on the session bus (default: true)

	Controls ControlsConfig `koanf:"controls"`
	Overlay  OverlayConfig  `koanf:"overlay"`
	Preview  PreviewConfig  `koanf:"preview"`
	Playback PlaybackConfig `koanf:"playback"`
	Log      LogConfig      `koanf:"log"`

	// Keys overrides bindings: action name -> keys, e.g. seek_back = ["h", "left"]
	Keys map[string][]string `koanf:"keys"`
}

// ControlsConfig tunes gestures and shortcuts.
type ControlsConfig struct {
	SeekSeconds     float64 `koanf:"seek_seconds"`      // shortcut and double-tap seek step (default: 10)
	DoubleTapMS     int     `koanf:"double_tap_ms"`     // double-tap window (default: 300)
	DragThresholdPX float64 `koanf:"drag_threshold_px"` // travel before a press becomes a drag (default: 10)
	BackZone        float64 `koanf:"back_zone"`         // fraction of width (default: 0.35)
	ForwardZone     float64 `koanf:"forward_zone"`      // fraction of width (default: 0.65)
	FeedbackMS      int     `koanf:"feedback_ms"`       // seek glyph display time (default: 500)
}

// OverlayConfig holds the auto-hide settings.
type OverlayConfig struct {
	IdleMS int `koanf:"idle_ms"` // default: 3000
}

// PreviewConfig holds the timeline thumbnail settings.
type PreviewConfig struct {
	ThrottleMS   int `koanf:"throttle_ms"`   // default: 200
	PanelWidthPX int `koanf:"panel_width_px"` // default: 160
	Width        int `koanf:"width"`         // thumbnail resolution (default: 160x90)
	Height       int `koanf:"height"`
}

// PlaybackConfig holds defaults for the media itself.
type PlaybackConfig struct {
	FPS      float64 `koanf:"fps"`      // frame rate of the frames directory (default: 24)
	Autoplay bool    `koanf:"autoplay"` // start playing on launch
}

// LogConfig selects the log file and level.
type LogConfig struct {
	Path  string `koanf:"path"`  // default: $XDG_STATE_HOME/reel/reel.log
	Level string `koanf:"level"` // default: info
}

// Load reads the config files in priority order. An explicit path, when
// given, must exist and wins over the others.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = append(paths, explicit)
	}
	return loadFiles(paths)
}

func loadFiles(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.Path != "" {
		cfg.Log.Path = expandPath(cfg.Log.Path)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/reel/config.toml
		filepath.Join(xdg.ConfigHome, "reel", "config.toml"),
		// 2. ./reel.toml (pwd, highest priority)
		"reel.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// MPRISEnabled reports whether media keys should be registered.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// GetControlsConfig returns the controls configuration with defaults applied.
func (c *Config) GetControlsConfig() ControlsConfig {
	cfg := c.Controls

	if cfg.SeekSeconds <= 0 {
		cfg.SeekSeconds = 10
	}
	if cfg.DoubleTapMS <= 0 {
		cfg.DoubleTapMS = 300
	}
	if cfg.DragThresholdPX <= 0 {
		cfg.DragThresholdPX = 10
	}
	if cfg.BackZone <= 0 || cfg.BackZone >= 1 || cfg.ForwardZone <= 0 ||
		cfg.ForwardZone >= 1 || cfg.BackZone > cfg.ForwardZone {
		cfg.BackZone = 0.35
		cfg.ForwardZone = 0.65
	}
	if cfg.FeedbackMS <= 0 {
		cfg.FeedbackMS = 500
	}

	return cfg
}

// GetOverlayConfig returns the overlay configuration with defaults applied.
func (c *Config) GetOverlayConfig() OverlayConfig {
	cfg := c.Overlay
	if cfg.IdleMS <= 0 {
		cfg.IdleMS = 3000
	}
	return cfg
}

// GetPreviewConfig returns the preview configuration with defaults applied.
func (c *Config) GetPreviewConfig() PreviewConfig {
	cfg := c.Preview
	if cfg.ThrottleMS <= 0 {
		cfg.ThrottleMS = 200
	}
	if cfg.PanelWidthPX <= 0 {
		cfg.PanelWidthPX = 160
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width = 160
		cfg.Height = 90
	}
	return cfg
}

// GetPlaybackConfig returns the playback configuration with defaults applied.
func (c *Config) GetPlaybackConfig() PlaybackConfig {
	cfg := c.Playback
	if cfg.FPS <= 0 {
		cfg.FPS = 24
	}
	return cfg
}
