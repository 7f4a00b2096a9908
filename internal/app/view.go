package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/reel/internal/ui/controls"
	"github.com/llehouerou/reel/internal/ui/headerbar"
	"github.com/llehouerou/reel/internal/ui/overlay"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	l := m.layout
	// Can't render before we know terminal size
	if l.Width == 0 || l.Height == 0 {
		return ""
	}

	v := m.player.View()
	var sections []string

	if !l.Header.Empty() {
		sections = append(sections, headerbar.Render(m.header, l.Width))
	}

	if !l.Video.Empty() {
		sections = append(sections, m.renderVideo())
	}

	state := controls.State{
		View:       v,
		Width:      l.Width,
		CellWidth:  m.cellW,
		PanelWidth: m.previewWidth(),
	}
	if m.prompting && l.Status.Empty() {
		state.Prompt = m.prompt.View()
	}
	sections = append(sections, controls.Render(state))

	if !l.Status.Empty() {
		sections = append(sections, m.renderStatus())
	}

	view := enforceHeight(strings.Join(sections, "\n"), l.Height)
	return view + m.imagePlacements()
}

// renderVideo draws the video area with the feedback and help overlays.
func (m Model) renderVideo() string {
	vr := m.layout.Video
	var block string
	if m.video.Enabled() {
		block = m.video.Placeholder()
	} else {
		block = m.renderFrameText(vr.Width, vr.Height)
	}

	if fb := controls.Feedback(m.player.View(), vr.Width, vr.Height); fb != "" {
		block = overlay.Compose(block, fb, vr.Width)
	}
	if m.showHelp {
		block = overlay.Center(block, m.help.View(), vr.Width, vr.Height)
	}
	return block
}

// renderFrameText stands in for the picture when images are unavailable.
func (m Model) renderFrameText(width, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = render.EmptyLine(width)
	}
	text := fmt.Sprintf("frame %d / %d", m.frameIndex()+1, m.header.Frames)
	if m.header.Frames <= 0 {
		text = "no frames"
	}
	lines[height/2] = render.Center(styles.T().S().Subtle.Render(text), width)
	return strings.Join(lines, "\n")
}

func (m Model) frameIndex() int {
	if m.frames == nil {
		return 0
	}
	return m.frames.FrameIndex()
}

// renderStatus draws the bottom line: the jump prompt or the last status
// on the left, the help hint on the right.
func (m Model) renderStatus() string {
	st := styles.T().S()
	width := m.layout.Width
	if m.prompting {
		return render.TruncateAndPad(m.prompt.View(), width)
	}

	left := m.status.Text
	switch {
	case left == "":
	case m.status.Error:
		left = st.Error.Render(render.Truncate(left, width-8))
	default:
		left = st.Muted.Render(render.Truncate(left, width-8))
	}
	return render.Row(left, st.Subtle.Render("? help"), width)
}

// previewWidth is the thumbnail width in cells.
func (m Model) previewWidth() int {
	w, _ := m.panelCells()
	return w
}

// imagePlacements returns the terminal commands that draw the frame and,
// while the panel is shown, the thumbnail above it.
func (m Model) imagePlacements() string {
	if !m.video.Enabled() {
		return ""
	}
	l := m.layout
	var b strings.Builder
	if !l.Video.Empty() {
		b.WriteString(m.video.Placement(l.Video.Row+1, l.Video.Col+1))
	}

	panel := m.player.View().Preview
	if !panel.Visible || !m.player.View().ControlsVisible {
		b.WriteString(m.thumb.Pending())
		return b.String()
	}
	w, h := m.thumb.Size()
	box := l.PreviewBox(controls.PanelCol(panel.Left, m.cellW), w, h)
	if box.Empty() {
		b.WriteString(m.thumb.Pending())
		return b.String()
	}
	b.WriteString(m.thumb.Placement(box.Row+1, box.Col+1))
	return b.String()
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == targetHeight {
		return view
	}
	if len(lines) < targetHeight {
		for len(lines) < targetHeight {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}
