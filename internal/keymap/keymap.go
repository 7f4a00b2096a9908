package keymap

// Binding maps keys to an action, with a description for help.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "display"
}

// All contains the default key bindings.
var All = []Binding{
	// Playback
	{ActionTogglePlay, []string{" "}, "Play/pause", "playback"},
	{ActionSeekBack, []string{"left"}, "Seek back", "playback"},
	{ActionSeekForward, []string{"right"}, "Seek forward", "playback"},

	// Display
	{ActionFullscreen, []string{"enter"}, "Toggle full screen", "display"},

	// Global
	{ActionJumpTo, []string{":"}, "Jump to time", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// WithOverrides returns a copy of bindings where actions named in overrides
// use the given keys instead. Unknown actions and empty key lists are
// ignored.
func WithOverrides(bindings []Binding, overrides map[string][]string) []Binding {
	result := make([]Binding, len(bindings))
	copy(result, bindings)
	for i, b := range result {
		keys, ok := overrides[string(b.Action)]
		if !ok || len(keys) == 0 {
			continue
		}
		result[i].Keys = append([]string(nil), keys...)
	}
	return result
}
