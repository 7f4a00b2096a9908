// Package keymap defines key bindings and action dispatch for the player.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionJumpTo Action = "jump_to" // open the jump-to-time prompt

	// Playback actions
	ActionTogglePlay  Action = "toggle_play"
	ActionSeekBack    Action = "seek_back"
	ActionSeekForward Action = "seek_forward"

	// Display actions
	ActionFullscreen Action = "fullscreen"
)

// Actions lists every action in help order.
var Actions = []Action{
	ActionTogglePlay,
	ActionSeekBack,
	ActionSeekForward,
	ActionFullscreen,
	ActionJumpTo,
	ActionHelp,
	ActionQuit,
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}
