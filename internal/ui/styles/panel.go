package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered box used for the help panel and the
// full-screen prompt. Focused panels take the accent border.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.Focus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
