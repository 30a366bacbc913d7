package console

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the number of cells s occupies when written one rune
// at a time through a Surface. Wide characters (e.g., CJK and emoji) take
// two cells, every other rune takes at least one, so combining marks and
// joiners are counted the same way WriteChar advances over them.
func StringWidth(s string) int {
	width := 0
	for _, r := range s {
		width += CellWidth(r)
	}
	return width
}

// CellWidth returns how far WriteChar advances the cursor for r
func CellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// BlockSize returns the width of the widest line and the number of lines in s
func BlockSize(s string) (width, height int) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if w := StringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// Truncate cuts s to at most width cells
func Truncate(s string, width int) string {
	if StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	current := 0
	for _, r := range s {
		rw := CellWidth(r)
		if current+rw > width {
			break
		}
		b.WriteRune(r)
		current += rw
	}
	return b.String()
}
