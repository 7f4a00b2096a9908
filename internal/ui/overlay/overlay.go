// Package overlay paints styled text over a rendered view, for the seek
// glyphs, drag time and help panel drawn on top of the video area.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws block over base with its top-left corner at (row, col).
// Every cell of block replaces the base, spaces included. Lines of base
// shorter than width are padded first; parts of block past width or past
// the last base line are dropped.
func Place(base, block string, row, col, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		r := row + i
		if r < 0 || r >= len(baseLines) {
			continue
		}
		baseLines[r] = splice(baseLines[r], line, col, width)
	}
	return strings.Join(baseLines, "\n")
}

// Compose overlays top on base line by line. Only the visible span of
// each top line, from its first to its last non-space cell, replaces the
// base.
func Compose(base, top string, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := ansi.StringWidth(plain) - ansi.StringWidth(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(trimmed)
		baseLines[i] = splice(baseLines[i], ansi.Cut(line, start, end), start, width)
	}
	return strings.Join(baseLines, "\n")
}

// Center draws block in the middle of a width x height base.
func Center(base, block string, width, height int) string {
	bw, bh := 0, 0
	for _, line := range strings.Split(block, "\n") {
		bw = max(bw, ansi.StringWidth(line))
		bh++
	}
	return Place(base, block, max((height-bh)/2, 0), max((width-bw)/2, 0), width)
}

// splice replaces the cells of line starting at col with content.
func splice(line, content string, col, width int) string {
	if col < 0 || col >= width {
		return line
	}
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	content = ansi.Truncate(content, width-col, "")
	end := col + ansi.StringWidth(content)

	result := ansi.Cut(line, 0, col) + content
	if end < width {
		result += ansi.Cut(line, end, width)
	}
	return result
}
