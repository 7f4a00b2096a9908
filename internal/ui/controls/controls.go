// Package controls renders the strip under the video: the preview time
// label, the timeline and the button row.
package controls

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/ui/layout"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

const (
	filledCell = "━"
	emptyCell  = "─"
)

// State is everything the strip needs for one frame.
type State struct {
	View  player.View
	Width int

	// CellWidth converts the preview panel position from pixels to cells.
	CellWidth int
	// PanelWidth is the preview panel width in cells.
	PanelWidth int

	// Prompt replaces the label row when set (full-screen jump prompt).
	Prompt string
}

// Render returns the strip as layout.ControlsHeight lines of Width cells.
// A hidden overlay renders blank lines, unless a prompt is open.
func Render(s State) string {
	blank := render.EmptyLine(s.Width)
	if !s.View.ControlsVisible && s.Prompt == "" {
		return strings.Repeat(blank+"\n", layout.ControlsHeight-1) + blank
	}

	label := renderLabel(s)
	if s.Prompt != "" {
		label = render.TruncateAndPad(s.Prompt, s.Width)
	}
	if !s.View.ControlsVisible {
		return label + "\n" + blank + "\n" + blank
	}
	return label + "\n" + renderTimeline(s) + "\n" + renderButtons(s)
}

// renderLabel draws the preview time centered over the preview panel.
func renderLabel(s State) string {
	p := s.View.Preview
	if !p.Visible || s.Width < layout.MinWidth {
		return render.EmptyLine(s.Width)
	}
	text := styles.T().S().Title.Render(p.Time)
	col := 1 + PanelCol(p.Left, s.CellWidth) + (s.PanelWidth-lipgloss.Width(text))/2
	col = min(max(col, 0), s.Width-lipgloss.Width(text))
	line := strings.Repeat(" ", col) + text
	return render.Pad(line, s.Width)
}

// PanelCol converts the preview panel's pixel offset to a cell offset
// from the timeline's left edge.
func PanelCol(left float64, cellWidth int) int {
	if cellWidth <= 0 {
		return 0
	}
	return int(math.Round(left / float64(cellWidth)))
}

func renderTimeline(s State) string {
	width := s.Width - 2
	if width <= 0 {
		return render.EmptyLine(s.Width)
	}
	filled := int(math.Round(s.View.Progress.Percent / 100 * float64(width)))
	return " " + styles.GradientFill(width, filled, filledCell, emptyCell) + " "
}

func renderButtons(s State) string {
	st := styles.T().S()
	hits := Buttons(s.View, s.Width)

	var b strings.Builder
	col := 0
	for _, h := range hits {
		if h.Button == player.ButtonFullscreen {
			continue
		}
		b.WriteString(strings.Repeat(" ", h.Col-col))
		style := st.Button
		if h.Button == player.ButtonPlay {
			style = st.Active
		}
		b.WriteString(style.Render(h.label))
		col = h.Col + h.Width
	}

	left := b.String() + "  " + st.Muted.Render(s.View.Progress.Current+" / "+s.View.Progress.Total)
	if s.View.Held {
		left += "  " + st.Subtle.Render("paused")
	}
	right := ""
	for _, h := range hits {
		if h.Button == player.ButtonFullscreen {
			right = st.Button.Render(h.label) + " "
		}
	}
	return render.Pad(render.Row(left, right, s.Width), s.Width)
}

// Hit is the cell span of one button on the button row.
type Hit struct {
	Button player.Button
	Col    int
	Width  int
	label  string
}

// Buttons lays out the buttons for a row width cells wide. Back, play and
// forward sit on the left; full screen sits on the right edge.
func Buttons(v player.View, width int) []Hit {
	labels := []struct {
		b     player.Button
		label string
	}{
		{player.ButtonBack, icons.Back()},
		{player.ButtonPlay, icons.PlayPause(v.Paused)},
		{player.ButtonForward, icons.Forward()},
	}

	hits := make([]Hit, 0, len(labels)+1)
	col := 1
	for _, l := range labels {
		w := lipgloss.Width(l.label)
		hits = append(hits, Hit{Button: l.b, Col: col, Width: w, label: l.label})
		col += w + 2
	}

	fs := icons.Fullscreen(v.Fullscreen)
	fw := lipgloss.Width(fs)
	if width-1-fw > col {
		hits = append(hits, Hit{Button: player.ButtonFullscreen, Col: width - 1 - fw, Width: fw, label: fs})
	}
	return hits
}

// ButtonAt returns the button under col on the button row.
func ButtonAt(v player.View, width, col int) (player.Button, bool) {
	for _, h := range Buttons(v, width) {
		if col >= h.Col && col < h.Col+h.Width {
			return h.Button, true
		}
	}
	return 0, false
}
