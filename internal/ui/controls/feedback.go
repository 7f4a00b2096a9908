package controls

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/ui/overlay"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// Feedback renders the seek glyphs and the drag time for a video area of
// width x height cells, for use with overlay.Compose. Glyphs sit in the
// middle of the left and right thirds and the drag time in the center.
// It returns "" when nothing is shown.
func Feedback(v player.View, width, height int) string {
	if height <= 0 || width <= 0 || (!v.BackGlyph && !v.ForwardGlyph && v.Drag == "") {
		return ""
	}
	st := styles.T().S()

	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	block := strings.Join(lines, "\n")
	mid := height / 2

	put := func(text string, center int) {
		w := lipgloss.Width(text)
		col := min(max(center-w/2, 0), max(width-w, 0))
		block = overlay.Place(block, text, mid, col, width)
	}
	if v.BackGlyph {
		put(st.Glyph.Render(icons.Back()), width/6)
	}
	if v.ForwardGlyph {
		put(st.Glyph.Render(icons.Forward()), width*5/6)
	}
	if v.Drag != "" {
		put(st.Glyph.Render(v.Drag), width/2)
	}
	return block
}
