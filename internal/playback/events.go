package playback

// StateChange is emitted when playback starts or stops.
//
// Emitted by:
//   - Play: when paused media starts
//   - Pause: when playing media stops, including the automatic pause that
//     Sync applies at the end of the media
//
// Failed plays emit nothing.
type StateChange struct {
	Previous State
	Current  State
}

// PositionChange is emitted when the playhead jumps: after every seek and
// alongside every state change. Between events the position advances at
// real-time speed while playing.
type PositionChange struct {
	Position float64 // seconds
	Duration float64 // seconds, NaN when unknown
	Playing  bool
}
