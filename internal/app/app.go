package app

import (
	"image"
	"math"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/ui/frameview"
	"github.com/llehouerou/reel/internal/ui/headerbar"
	"github.com/llehouerou/reel/internal/ui/helpbindings"
	"github.com/llehouerou/reel/internal/ui/imgproto"
	"github.com/llehouerou/reel/internal/ui/layout"
)

// Stacking levels of the two images: the thumbnail sits over the video.
const (
	videoZ   = 0
	previewZ = 1
)

// FrameSource supplies the picture at the playhead.
type FrameSource interface {
	FrameIndex() int
	Frame() (image.Image, error)
}

// LoopHandler runs timer and posted callbacks delivered as messages.
type LoopHandler interface {
	Handle(msg tea.Msg) bool
}

// Options wires the model.
type Options struct {
	Player *player.Player
	Screen *Screen
	Frames FrameSource // nil shows a text placeholder
	Loop   LoopHandler
	Keys   *keymap.Resolver
	Proto  imgproto.Protocol // nil disables images

	CellWidth  int
	CellHeight int
	FPS        float64

	Header   headerbar.Info
	Status   StatusMsg // initial status line
	Autoplay bool

	Log zerolog.Logger
}

// Model is the root application model.
type Model struct {
	player *player.Player
	screen *Screen
	frames FrameSource
	loop   LoopHandler
	keys   *keymap.Resolver
	log    zerolog.Logger

	video *frameview.Renderer
	thumb *frameview.Renderer

	cellW, cellH int
	fps          float64
	autoplay     bool

	layout   layout.Layout
	header   headerbar.Info
	status   StatusMsg
	help     helpbindings.Model
	showHelp bool

	prompt    textinput.Model
	prompting bool

	ticking       bool
	hoverTimeline bool
	frameErr      bool
}

// New creates the model.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "jump to: "
	ti.Placeholder = "m:ss"
	ti.CharLimit = 16

	cellW, cellH := opts.CellWidth, opts.CellHeight
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = imgproto.DefaultCellWidth, imgproto.DefaultCellHeight
	}

	screen := opts.Screen
	if screen == nil {
		screen = NewScreen()
	}
	keys := opts.Keys
	if keys == nil {
		keys = keymap.NewResolver(keymap.All)
	}

	return Model{
		player:   opts.Player,
		screen:   screen,
		frames:   opts.Frames,
		loop:     opts.Loop,
		keys:     keys,
		log:      opts.Log,
		video:    frameview.New(opts.Proto, videoZ),
		thumb:    frameview.New(opts.Proto, previewZ),
		cellW:    cellW,
		cellH:    cellH,
		fps:      opts.FPS,
		autoplay: opts.Autoplay,
		header:   opts.Header,
		status:   opts.Status,
		help:     helpbindings.New(keys.Help()),
		prompt:   ti,
	}
}

// Init starts playback when autoplay is set.
func (m Model) Init() tea.Cmd {
	if m.autoplay {
		return startCmd
	}
	return nil
}

// Player returns the widget.
func (m Model) Player() *player.Player { return m.player }

// surface is the video area in the pointer's pixel space.
func (m Model) surface() player.Surface {
	v := m.layout.Video
	return player.Surface{
		Left:  float64(v.Col * m.cellW),
		Width: float64(v.Width * m.cellW),
	}
}

// pixelX converts a cell column to the pixel at the cell's center.
func (m Model) pixelX(col int) float64 {
	return float64(col*m.cellW) + float64(m.cellW)/2
}

// panelCells returns the preview thumbnail box in cells.
func (m Model) panelCells() (width, height int) {
	cfg := m.player.Previewer().Config()
	width = max(int(math.Round(cfg.PanelWidth/float64(m.cellW))), 1)
	if cfg.CanvasWidth <= 0 {
		return width, 1
	}
	px := float64(width*m.cellW) * float64(cfg.CanvasHeight) / float64(cfg.CanvasWidth)
	height = max(int(math.Round(px/float64(m.cellH))), 1)
	return width, height
}
