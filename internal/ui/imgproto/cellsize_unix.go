//go:build unix

package imgproto

import (
	"os"

	"golang.org/x/sys/unix"
)

// CellSize returns the terminal cell size in pixels from TIOCGWINSZ, or
// 8x16 when the terminal does not report it.
func CellSize() (cellW, cellH int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return DefaultCellWidth, DefaultCellHeight
	}
	return int(ws.Xpixel) / int(ws.Col), int(ws.Ypixel) / int(ws.Row)
}
