package layout

import "testing"

func TestCompute_Windowed(t *testing.T) {
	l := Compute(80, 24, false)

	want := map[string]Rect{
		"header":   {Row: 0, Col: 0, Width: 80, Height: 1},
		"video":    {Row: 1, Col: 0, Width: 80, Height: 19},
		"controls": {Row: 20, Col: 0, Width: 80, Height: 3},
		"status":   {Row: 23, Col: 0, Width: 80, Height: 1},
	}
	got := map[string]Rect{
		"header":   l.Header,
		"video":    l.Video,
		"controls": l.Controls,
		"status":   l.Status,
	}
	for name, w := range want {
		if got[name] != w {
			t.Errorf("%s = %+v, want %+v", name, got[name], w)
		}
	}
}

func TestCompute_Fullscreen(t *testing.T) {
	l := Compute(80, 24, true)

	if !l.Header.Empty() || !l.Status.Empty() {
		t.Errorf("full screen should drop header and status, got %+v %+v", l.Header, l.Status)
	}
	if l.Video != (Rect{Row: 0, Width: 80, Height: 21}) {
		t.Errorf("video = %+v", l.Video)
	}
	if l.Controls.Row != 21 {
		t.Errorf("controls row = %d, want 21", l.Controls.Row)
	}
}

func TestCompute_TooSmall(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		videoHeight   int
		controls      int
	}{
		{"zero", 0, 0, 0, 0},
		{"only controls", 40, 4, 0, 3},
		{"truncated controls", 40, 2, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Compute(tt.width, tt.height, false)
			if l.Video.Height != tt.videoHeight {
				t.Errorf("video height = %d, want %d", l.Video.Height, tt.videoHeight)
			}
			if l.Controls.Height != tt.controls {
				t.Errorf("controls height = %d, want %d", l.Controls.Height, tt.controls)
			}
		})
	}
}

func TestFitsFullscreen(t *testing.T) {
	tests := []struct {
		width, height int
		want          bool
	}{
		{80, 24, true},
		{20, 6, true},
		{19, 24, false},
		{80, 5, false},
	}
	for _, tt := range tests {
		if got := FitsFullscreen(tt.width, tt.height); got != tt.want {
			t.Errorf("FitsFullscreen(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Row: 2, Col: 3, Width: 4, Height: 2}
	tests := []struct {
		col, row int
		want     bool
	}{
		{3, 2, true},
		{6, 3, true},
		{7, 3, false},
		{3, 4, false},
		{2, 2, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.col, tt.row); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestTimelineAndRows(t *testing.T) {
	l := Compute(80, 24, false)

	if got, want := l.Timeline(), (Rect{Row: 21, Col: 1, Width: 78, Height: 1}); got != want {
		t.Errorf("Timeline() = %+v, want %+v", got, want)
	}
	if l.LabelRow() != 20 || l.ButtonRow() != 22 {
		t.Errorf("rows = %d/%d, want 20/22", l.LabelRow(), l.ButtonRow())
	}
}

func TestPreviewBox(t *testing.T) {
	l := Compute(80, 24, false)

	tests := []struct {
		name string
		left int
		want Rect
	}{
		{"inside", 10, Rect{Row: 14, Col: 11, Width: 20, Height: 6}},
		{"clamped right", 70, Rect{Row: 14, Col: 60, Width: 20, Height: 6}},
		{"at left edge", 0, Rect{Row: 14, Col: 1, Width: 20, Height: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.PreviewBox(tt.left, 20, 6); got != tt.want {
				t.Errorf("PreviewBox(%d) = %+v, want %+v", tt.left, got, tt.want)
			}
		})
	}
}
