// Package layout provides pure functions for the screen geometry: where
// the video, the controls strip and the text rows sit, and which cell a
// mouse event landed on.
package layout

// Row heights of the fixed parts of the screen.
const (
	HeaderHeight   = 1
	ControlsHeight = 3 // preview label, timeline, buttons
	StatusHeight   = 1
	MinVideoHeight = 3
	MinWidth       = 20
)

// Rect is a block of cells. Row and Col are 0-based.
type Rect struct {
	Row    int
	Col    int
	Width  int
	Height int
}

// Contains reports whether the cell at (col, row) is inside r.
func (r Rect) Contains(col, row int) bool {
	return col >= r.Col && col < r.Col+r.Width &&
		row >= r.Row && row < r.Row+r.Height
}

// Empty reports whether r has no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Layout is the screen split for one terminal size.
type Layout struct {
	Width      int
	Height     int
	Fullscreen bool

	Header   Rect // empty in full screen
	Video    Rect
	Controls Rect
	Status   Rect // empty in full screen
}

// Compute splits a width x height terminal. Full screen drops the header
// and status rows and gives them to the video.
func Compute(width, height int, fullscreen bool) Layout {
	l := Layout{Width: width, Height: height, Fullscreen: fullscreen}
	if width <= 0 || height <= 0 {
		return l
	}

	row := 0
	if !fullscreen {
		l.Header = Rect{Row: 0, Width: width, Height: HeaderHeight}
		row = HeaderHeight
	}

	reserved := row + ControlsHeight
	if !fullscreen {
		reserved += StatusHeight
	}
	videoHeight := max(height-reserved, 0)

	l.Video = Rect{Row: row, Width: width, Height: videoHeight}
	row += videoHeight

	l.Controls = Rect{Row: row, Width: width, Height: min(ControlsHeight, height-row)}
	row += l.Controls.Height

	if !fullscreen && row < height {
		l.Status = Rect{Row: row, Width: width, Height: StatusHeight}
	}
	return l
}

// FitsFullscreen reports whether a terminal can show the video and the
// controls strip with nothing else.
func FitsFullscreen(width, height int) bool {
	return width >= MinWidth && height >= ControlsHeight+MinVideoHeight
}

// LabelRow is the controls row carrying the preview time or the prompt.
func (l Layout) LabelRow() int { return l.Controls.Row }

// Timeline is the progress bar, inset by one cell on each side.
func (l Layout) Timeline() Rect {
	if l.Controls.Height < 2 || l.Width < 3 {
		return Rect{}
	}
	return Rect{Row: l.Controls.Row + 1, Col: 1, Width: l.Width - 2, Height: 1}
}

// ButtonRow is the controls row carrying the buttons and time.
func (l Layout) ButtonRow() int { return l.Controls.Row + 2 }

// PreviewBox places a width x height thumbnail whose left edge sits left
// cells into the timeline, resting on top of the controls strip and kept
// inside the video area.
func (l Layout) PreviewBox(left, width, height int) Rect {
	tl := l.Timeline()
	if tl.Empty() || l.Video.Empty() {
		return Rect{}
	}
	width = min(width, l.Width)
	height = min(height, l.Video.Height)
	col := min(max(tl.Col+left, 0), l.Width-width)
	return Rect{
		Row:    l.Video.Row + l.Video.Height - height,
		Col:    col,
		Width:  width,
		Height: height,
	}
}
