// Package helpbindings renders the key binding panel toggled with "?".
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/ui/styles"
)

// CloseMsg is sent when the panel asks to be closed.
type CloseMsg struct{}

// Model holds the state for the help panel.
type Model struct {
	entries []keymap.HelpEntry
}

// New creates a help panel listing entries.
func New(entries []keymap.HelpEntry) Model {
	return Model{entries: entries}
}

// Update closes the panel on ?, esc or q. Other keys are swallowed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

// View renders the bordered panel.
func (m Model) View() string {
	st := styles.T().S()

	keyWidth := 0
	for _, e := range m.entries {
		keyWidth = max(keyWidth, lipgloss.Width(e.Keys))
	}

	var sb strings.Builder
	sb.WriteString(st.Title.Render("Keys"))
	sb.WriteString("\n")
	for _, e := range m.entries {
		pad := strings.Repeat(" ", keyWidth-lipgloss.Width(e.Keys))
		sb.WriteString("\n")
		sb.WriteString(st.Active.Render(e.Keys + pad))
		sb.WriteString("  ")
		sb.WriteString(st.Base.Render(e.Description))
	}
	sb.WriteString("\n\n")
	sb.WriteString(st.Subtle.Render("drag the video to scrub, double tap the sides to skip"))

	return styles.PanelStyle(true).Render(sb.String())
}
