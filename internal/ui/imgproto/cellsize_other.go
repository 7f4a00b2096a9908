//go:build !unix

package imgproto

// CellSize returns the default cell size; only unix terminals report one.
func CellSize() (cellW, cellH int) {
	return DefaultCellWidth, DefaultCellHeight
}
