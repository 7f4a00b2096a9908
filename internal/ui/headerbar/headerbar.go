// Package headerbar renders the title row shown above the video in
// windowed mode.
package headerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/ui/render"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Info describes the loaded video.
type Info struct {
	Title  string
	Frames int
	FPS    float64
	Audio  string // soundtrack title, empty when silent
}

var separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Render returns the header for the given width: the title on the left,
// frame count, rate and soundtrack on the right.
func Render(info Info, width int) string {
	if width < 20 {
		return render.EmptyLine(width)
	}
	t := styles.T()
	st := t.S()

	parts := []string{
		st.Muted.Render(icons.FormatFrames(humanize.Comma(int64(info.Frames)) + " frames")),
		st.Muted.Render(strconv.FormatFloat(info.FPS, 'f', -1, 64) + " fps"),
	}
	if info.Audio != "" {
		parts = append(parts, st.Muted.Render(icons.FormatAudio(render.Truncate(info.Audio, width/4))))
	}
	right := strings.Join(parts, separatorStyle.Render(" │ ")) + " "

	room := width - lipgloss.Width(right) - 2
	title := ""
	if room > 0 {
		title = " " + styles.ApplyBoldGradient(render.Truncate(info.Title, room), t.Primary, t.Secondary)
	}
	return render.Pad(render.Row(title, right, width), width)
}
