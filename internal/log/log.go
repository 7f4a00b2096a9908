// Package log configures the zerolog logger shared by all components.
//
// The terminal belongs to the UI, so log output goes to a file.
package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const appName = "reel"

// Config captures options for the global logger.
type Config struct {
	Level  string    // "debug", "info", ...; defaults to info
	Output io.Writer // defaults to io.Discard until Open is used
}

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Configure replaces the global logger.
func Configure(cfg Config) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	w := cfg.Output
	if w == nil {
		w = io.Discard
	}

	mu.Lock()
	base = zerolog.New(w).Level(level).With().Timestamp().Logger()
	mu.Unlock()
}

// Open creates (or appends to) the log file and configures the logger to
// write there. An empty path selects the XDG state directory.
func Open(path, level string) (io.Closer, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	Configure(Config{Level: level, Output: f})
	return f, nil
}

// DefaultPath returns $XDG_STATE_HOME/reel/reel.log.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// Base returns the configured logger.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
