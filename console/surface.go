package console

// Surface is the minimal terminal capability consumed by the grid engine.
// Coordinates are character cells, 0-indexed from the top-left corner.
type Surface interface {
	// MoveCursor places the write cursor
	MoveCursor(x, y int)

	// WriteChar writes one rune at the cursor and advances it by the
	// rune's display width
	WriteChar(r rune)

	// Clear erases the whole surface using the current background color
	Clear()

	SetForeground(c Color)
	SetBackground(c Color)

	// Width and Height return the surface dimensions in cells
	Width() int
	Height() int

	// ReadKey blocks until one logical key is available
	ReadKey() Key
}

// WriteString writes s at (x, y) rune by rune
func WriteString(s Surface, x, y int, text string) {
	s.MoveCursor(x, y)
	for _, r := range text {
		s.WriteChar(r)
	}
}
