package mpris

// Remote is the part of the playback controller exposed to media keys.
// Its methods run on the event loop.
type Remote interface {
	Play()
	Pause()
	TogglePlay()
	Seek(delta float64)
	SeekTo(t float64)
}

// Info describes the loaded video.
type Info struct {
	Path     string // frames directory
	Title    string
	Artist   string
	ArtPath  string
	Duration float64 // seconds
}
