package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives a tea.Model the way the program would, collecting the
// commands it returns.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness wraps m and sends it an initial window size.
func NewHarness(m tea.Model, width, height int) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model { return h.model }

// View returns the rendered view with escapes removed.
func (h *Harness) View() string { return StripANSI(h.model.View()) }

// RawView returns the rendered view as the terminal receives it.
func (h *Harness) RawView() string { return h.model.View() }

// Send delivers msg and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Key sends a printable key, or a named key such as "left" or "esc".
func (h *Harness) Key(key string) tea.Cmd {
	if t, ok := namedKeys[key]; ok {
		return h.Send(tea.KeyMsg{Type: t})
	}
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

var namedKeys = map[string]tea.KeyType{
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	" ":      tea.KeySpace,
	"ctrl+c": tea.KeyCtrlC,
}

// Press sends a left-button press at the 0-based cell (col, row).
func (h *Harness) Press(col, row int) tea.Cmd {
	return h.mouse(col, row, tea.MouseActionPress, tea.MouseButtonLeft)
}

// Motion sends pointer motion to (col, row).
func (h *Harness) Motion(col, row int) tea.Cmd {
	return h.mouse(col, row, tea.MouseActionMotion, tea.MouseButtonNone)
}

// Release sends a left-button release at (col, row).
func (h *Harness) Release(col, row int) tea.Cmd {
	return h.mouse(col, row, tea.MouseActionRelease, tea.MouseButtonLeft)
}

// Click sends a press and a release at the same cell.
func (h *Harness) Click(col, row int) {
	h.Press(col, row)
	h.Release(col, row)
}

func (h *Harness) mouse(col, row int, action tea.MouseAction, button tea.MouseButton) tea.Cmd {
	return h.Send(tea.MouseMsg{X: col, Y: row, Action: action, Button: button})
}

// Commands returns every command collected so far.
func (h *Harness) Commands() []tea.Cmd { return h.cmds }

// ClearCommands forgets collected commands.
func (h *Harness) ClearCommands() { h.cmds = nil }

// ExecuteCmd runs cmd and returns its message, or nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
