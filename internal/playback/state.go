package playback

// State represents the playback state as seen by the controls.
type State int

const (
	StatePaused State = iota
	StatePlaying
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// Progress is the time display recomputed on every time update.
type Progress struct {
	Percent float64 // 0-100 fill of the progress bar
	Current string  // formatted current time
	Total   string  // formatted duration
}
