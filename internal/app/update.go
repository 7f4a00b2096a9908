package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/timefmt"
	"github.com/llehouerou/reel/internal/ui/controls"
	"github.com/llehouerou/reel/internal/ui/helpbindings"
	"github.com/llehouerou/reel/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.refreshImages()
	if tick := next.ensureTicking(); tick != nil {
		cmd = tea.Batch(cmd, tick)
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	if m.loop != nil && m.loop.Handle(msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		if m.screen.IsFullscreen() && !layout.FitsFullscreen(msg.Width, msg.Height) {
			_ = m.screen.ExitFullscreen()
		}
		return m, nil

	case startMsg:
		m.player.Controller().Play()
		return m, nil

	case FrameTickMsg:
		return m.handleFrameTick()

	case StatusMsg:
		m.status = msg
		return m, nil

	case helpbindings.CloseMsg:
		m.showHelp = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg), nil
	}

	return m, nil
}

// handleFrameTick advances the video one frame. The chain stops once the
// media pauses; ensureTicking restarts it on the next play.
func (m Model) handleFrameTick() (Model, tea.Cmd) {
	m.player.TimeUpdate()
	if m.player.Controller().Media().Paused() {
		m.ticking = false
		return m, nil
	}
	return m, FrameTickCmd(m.fps)
}

func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || m.player.Controller().Media().Paused() {
		return nil
	}
	m.ticking = true
	return FrameTickCmd(m.fps)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Any key counts as activity, even while a prompt has focus.
	m.player.Activity()

	if m.prompting {
		return m.handlePromptKey(msg)
	}
	if m.showHelp {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch action := m.keys.Resolve(msg.String()); action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = true
		return m, nil
	case keymap.ActionJumpTo:
		m.prompting = true
		m.prompt.SetValue("")
		return m, m.prompt.Focus()
	default:
		m.player.Do(action)
		return m, nil
	}
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		text := m.prompt.Value()
		m.closePrompt()
		t, err := timefmt.Parse(text)
		if err != nil {
			m.status = StatusMsg{Text: errmsg.Format(errmsg.OpJumpParse, err), Error: true}
			return m, nil
		}
		m.status = StatusMsg{}
		m.player.JumpTo(t)
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.SetValue("")
}

// handleMouseMsg hit-tests a mouse event against the layout. Presses on
// the controls strip never start a gesture; motion and release always
// reach the recognizer so a drag can leave the video area.
func (m Model) handleMouseMsg(msg tea.MouseMsg) Model {
	l := m.layout
	x := m.pixelX(msg.X)
	s := m.surface()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			m.player.Activity()
			return m
		}
		if m.showHelp {
			m.showHelp = false
			m.player.Activity()
			return m
		}
		if l.Video.Contains(msg.X, msg.Y) {
			m.player.PointerDown(x, s, false)
			return m
		}
		m.player.PointerDown(x, s, true)
		if !l.Controls.Contains(msg.X, msg.Y) {
			return m
		}
		m.pressControl(msg.X, msg.Y)

	case tea.MouseActionMotion:
		m.player.PointerMove(x, s)
		m.hover(msg.X, msg.Y)

	case tea.MouseActionRelease:
		m.player.PointerUp(x, s)
	}
	return m
}

// pressControl runs the timeline or button under the cell. The player
// has already recorded the press as activity; controls hidden at that
// moment still respond, matching a click that also reveals them.
func (m Model) pressControl(col, row int) {
	l := m.layout
	if tl := l.Timeline(); tl.Contains(col, row) {
		m.player.TimelineClick(m.pixelX(col-tl.Col), float64(tl.Width*m.cellW))
		return
	}
	if row == l.ButtonRow() {
		if b, ok := controls.ButtonAt(m.player.View(), l.Width, col); ok {
			m.player.Press(b)
		}
	}
}

func (m *Model) hover(col, row int) {
	tl := m.layout.Timeline()
	if tl.Contains(col, row) {
		m.hoverTimeline = true
		m.player.TimelineHover(m.pixelX(col-tl.Col), float64(tl.Width*m.cellW))
		return
	}
	if m.hoverTimeline {
		m.hoverTimeline = false
		m.player.TimelineLeave()
	}
}

// refreshImages recomputes the layout and brings both image slots up to
// date with the playhead and the preview canvas.
func (m *Model) refreshImages() {
	m.layout = layout.Compute(m.screen.width, m.screen.height, m.screen.IsFullscreen())
	m.prompt.Width = max(m.layout.Width-lipgloss.Width(m.prompt.Prompt)-2, 1)

	v := m.layout.Video
	m.video.SetSize(v.Width, v.Height)
	if m.frames != nil && !v.Empty() {
		idx := m.frames.FrameIndex()
		img, err := m.frames.Frame()
		switch {
		case err != nil:
			if !m.frameErr {
				m.log.Error().Err(err).Int("frame", idx).Msg("decode frame")
				m.status = StatusMsg{Text: errmsg.Format(errmsg.OpFrameDecode, err), Error: true}
			}
			m.frameErr = true
		default:
			m.frameErr = false
			if _, err := m.video.Prepare(int64(idx), img); err != nil {
				m.log.Error().Err(err).Msg("transmit frame")
			}
		}
	}

	view := m.player.View()
	if !view.Preview.Visible || !view.ControlsVisible {
		if m.thumb.HasImage() {
			m.thumb.Clear()
		}
		return
	}
	w, h := m.panelCells()
	m.thumb.SetSize(w, min(h, v.Height))
	canvas := m.player.Previewer().Canvas()
	if canvas.Version() == 0 {
		return
	}
	if _, err := m.thumb.Prepare(int64(canvas.Version()), canvas.Image()); err != nil {
		m.log.Error().Err(err).Msg("transmit preview")
	}
}
