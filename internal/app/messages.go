// Package app contains the bubbletea model that puts the player on a
// terminal: layout, hit testing, frame rendering and the text prompts.
package app

// FrameTickMsg advances the video while it plays.
type FrameTickMsg struct{}

// startMsg begins playback on launch when autoplay is set.
type startMsg struct{}

// StatusMsg replaces the status line text.
type StatusMsg struct {
	Text  string
	Error bool
}
