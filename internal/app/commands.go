package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameTickCmd returns a command that sends FrameTickMsg after one frame
// interval at fps.
func FrameTickCmd(fps float64) tea.Cmd {
	if fps <= 0 {
		fps = 24
	}
	return tea.Tick(time.Duration(float64(time.Second)/fps), func(time.Time) tea.Msg {
		return FrameTickMsg{}
	})
}

func startCmd() tea.Msg { return startMsg{} }
