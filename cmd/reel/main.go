// Command reel plays a directory of video frames in the terminal, with
// tap, double-tap and drag gestures, a seekable timeline with thumbnail
// previews and controls that hide while playing.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/llehouerou/reel/internal/app"
	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/gesture"
	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/log"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/mpris"
	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/preview"
	"github.com/llehouerou/reel/internal/schedule"
	"github.com/llehouerou/reel/internal/stderr"
	"github.com/llehouerou/reel/internal/ui/headerbar"
	"github.com/llehouerou/reel/internal/ui/imgproto"
)

type flags struct {
	fps      float64
	audio    string
	config   string
	logLevel string
	noMPRIS  bool
	autoplay bool
}

// parseFlags reads args (without the program name). Usage and flag errors
// are written to out.
func parseFlags(args []string, out io.Writer) (flags, string, error) {
	var f flags
	fs := pflag.NewFlagSet("reel", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: reel [flags] <frames-dir>\n\n")
		fs.PrintDefaults()
	}
	fs.Float64Var(&f.fps, "fps", 0, "frame rate of the frames directory (default from config, 24)")
	fs.StringVar(&f.audio, "audio", "", "soundtrack played along (mp3, flac, wav)")
	fs.StringVar(&f.config, "config", "", "config file path")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.BoolVar(&f.noMPRIS, "no-mpris", false, "do not register media keys")
	fs.BoolVarP(&f.autoplay, "autoplay", "p", false, "start playing on launch")

	if err := fs.Parse(args); err != nil {
		return f, "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return f, "", errors.New("expected one frames directory")
	}
	return f, fs.Arg(0), nil
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "reel: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Flags are parsed while stderr still reaches the terminal, so usage
	// and flag errors stay visible.
	f, dir, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		return err
	}

	// Start capturing stderr before any C library (ALSA) initialization.
	if err := stderr.Start(); err == nil {
		defer stderr.Stop()
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Log.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	logFile, err := log.Open(cfg.Log.Path, level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	stderr.Forward(log.WithComponent("stderr"))
	logger := log.WithComponent("main")

	icons.Init(cfg.Icons)

	pb := cfg.GetPlaybackConfig()
	if f.fps > 0 {
		pb.FPS = f.fps
	}
	frames, err := media.OpenFrames(dir, pb.FPS)
	if err != nil {
		return fmt.Errorf("open frames: %w", err)
	}

	loop := schedule.NewLoop()
	defer loop.Stop()

	video := media.NewVideo(frames, loop, log.WithComponent("media"))
	still := media.NewStill(frames, loop)

	var status app.StatusMsg
	var soundtrack *media.Soundtrack
	if f.audio != "" {
		soundtrack, err = media.OpenSoundtrack(f.audio)
		if err != nil {
			logger.Warn().Err(err).Str("path", f.audio).Msg("soundtrack unavailable, playing silent")
			status = app.StatusMsg{Text: errmsg.Format(errmsg.OpSoundtrackOpen, err), Error: true}
		} else {
			defer soundtrack.Close()
			video.AttachAudio(soundtrack)
		}
	}

	proto := imgproto.Detect(cfg.ImageProtocol)
	cellW, cellH := imgproto.CellSize()
	if proto == nil {
		logger.Info().Msg("no terminal image protocol, using text placeholder")
	} else {
		logger.Info().Str("protocol", proto.Name()).Int("cell_w", cellW).Int("cell_h", cellH).Msg("images enabled")
	}

	screen := app.NewScreen()
	p := player.New(playerConfig(cfg), video, still, loop, screen, log.WithComponent("player"))

	keys := keymap.NewResolver(keymap.WithOverrides(keymap.All, cfg.Keys))

	header := headerbar.Info{
		Title:  filepath.Base(filepath.Clean(dir)),
		Frames: frames.Len(),
		FPS:    frames.FPS(),
	}
	if soundtrack != nil {
		header.Audio = soundtrack.Title()
	}

	if cfg.MPRISEnabled() && !f.noMPRIS {
		ctrl := p.Controller()
		info := mpris.Info{
			Path:     frames.Dir(),
			Title:    header.Title,
			ArtPath:  mpris.FindArt(frames.Dir(), ""),
			Duration: frames.Duration(),
		}
		if soundtrack != nil {
			info.Artist = soundtrack.Artist()
		}
		adapter, err := mpris.New(ctrl, ctrl.Subscribe(), loop, info)
		if err != nil {
			logger.Warn().Err(err).Msg("mpris unavailable")
			if status.Text == "" {
				status = app.StatusMsg{Text: errmsg.Format(errmsg.OpMPRIS, err), Error: true}
			}
		} else {
			defer adapter.Close()
		}
	}

	m := app.New(app.Options{
		Player:     p,
		Screen:     screen,
		Frames:     video,
		Loop:       loop,
		Keys:       keys,
		Proto:      proto,
		CellWidth:  cellW,
		CellHeight: cellH,
		FPS:        frames.FPS(),
		Header:     header,
		Status:     status,
		Autoplay:   pb.Autoplay || f.autoplay,
		Log:        log.WithComponent("app"),
	})

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	loop.SetSender(prog.Send)

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	p.Controller().Close()
	return nil
}

// playerConfig maps the config file onto the widget settings.
func playerConfig(cfg *config.Config) player.Config {
	c := cfg.GetControlsConfig()
	o := cfg.GetOverlayConfig()
	pv := cfg.GetPreviewConfig()
	return player.Config{
		Gesture: gesture.Config{
			DoubleTapWindow: time.Duration(c.DoubleTapMS) * time.Millisecond,
			DragThreshold:   c.DragThresholdPX,
			BackZone:        c.BackZone,
			ForwardZone:     c.ForwardZone,
		},
		SeekStep: c.SeekSeconds,
		Feedback: time.Duration(c.FeedbackMS) * time.Millisecond,
		Idle:     time.Duration(o.IdleMS) * time.Millisecond,
		Preview: preview.Config{
			Throttle:     time.Duration(pv.ThrottleMS) * time.Millisecond,
			PanelWidth:   float64(pv.PanelWidthPX),
			CanvasWidth:  pv.Width,
			CanvasHeight: pv.Height,
		},
	}
}
