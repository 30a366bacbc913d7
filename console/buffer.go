package console

import "strings"

// Cell is one character cell of a Buffer.
// A Rune of 0 marks the trailing half of a wide character.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Buffer is an in-memory Surface.
// ReadKey never blocks: it pops keys queued with PushKeys and returns
// KeyNone once the queue is empty.
type Buffer struct {
	width  int
	height int
	cells  []Cell

	cursorX int
	cursorY int
	fg      Color
	bg      Color

	keys []Key
}

// NewBuffer creates a buffer of the given size, filled with blanks on black
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{fg: Gray, bg: Black}
	b.Resize(width, height)
	return b
}

// Resize reallocates the cell matrix. Contents are discarded.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	b.fill(b.bg)
	b.cursorX, b.cursorY = 0, 0
}

func (b *Buffer) fill(bg Color) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: b.fg, Bg: bg}
	}
}

// MoveCursor places the write cursor
func (b *Buffer) MoveCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
}

// Cursor returns the current cursor position
func (b *Buffer) Cursor() (x, y int) {
	return b.cursorX, b.cursorY
}

// WriteChar writes r at the cursor. Writes outside the buffer are dropped
// but still advance the cursor. A wide rune that does not fit before the
// right edge is stored as a blank, and any wide rune partly overwritten
// loses its other half.
func (b *Buffer) WriteChar(r rune) {
	w := CellWidth(r)
	x, y := b.cursorX, b.cursorY
	b.cursorX += w
	if !b.inBounds(x, y) {
		return
	}
	if x+w > b.width {
		r, w = ' ', 1
	}

	row := b.cells[y*b.width : (y+1)*b.width]
	if row[x].Rune == 0 && x > 0 {
		row[x-1].Rune = ' '
	}
	if end := x + w; end < b.width && row[end].Rune == 0 {
		row[end].Rune = ' '
	}

	row[x] = Cell{Rune: r, Fg: b.fg, Bg: b.bg}
	for i := 1; i < w; i++ {
		row[x+i] = Cell{Rune: 0, Fg: b.fg, Bg: b.bg}
	}
}

// Clear fills the buffer with blanks in the current background color
func (b *Buffer) Clear() {
	b.fill(b.bg)
}

func (b *Buffer) SetForeground(c Color) { b.fg = c }
func (b *Buffer) SetBackground(c Color) { b.bg = c }

// Foreground and Background return the current pen colors
func (b *Buffer) Foreground() Color { return b.fg }
func (b *Buffer) Background() Color { return b.bg }

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// PushKeys queues keys for ReadKey
func (b *Buffer) PushKeys(keys ...Key) {
	b.keys = append(b.keys, keys...)
}

// Pending returns the number of queued keys
func (b *Buffer) Pending() int {
	return len(b.keys)
}

// ReadKey pops the next queued key, or returns KeyNone
func (b *Buffer) ReadKey() Key {
	if len(b.keys) == 0 {
		return KeyNone
	}
	k := b.keys[0]
	b.keys = b.keys[1:]
	return k
}

// Cell returns the cell at (x, y); out-of-range reads return a zero Cell
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Line returns the text of row y with trailing blanks kept
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Lines returns every row with trailing blanks trimmed
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = strings.TrimRight(b.Line(y), " ")
	}
	return lines
}

// String joins Lines with newlines, dropping trailing empty rows
func (b *Buffer) String() string {
	lines := b.Lines()
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}

// Run is a horizontal stretch of cells sharing the same colors
type Run struct {
	Text string
	Fg   Color
	Bg   Color
}

// Runs splits row y into color runs, in left-to-right order
func (b *Buffer) Runs(y int) []Run {
	if y < 0 || y >= b.height {
		return nil
	}
	var runs []Run
	var sb strings.Builder
	var cur Run
	started := false
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.Rune == 0 {
			continue
		}
		if started && (c.Fg != cur.Fg || c.Bg != cur.Bg) {
			cur.Text = sb.String()
			runs = append(runs, cur)
			sb.Reset()
		}
		if !started || c.Fg != cur.Fg || c.Bg != cur.Bg {
			cur = Run{Fg: c.Fg, Bg: c.Bg}
			started = true
		}
		sb.WriteRune(c.Rune)
	}
	if started {
		cur.Text = sb.String()
		runs = append(runs, cur)
	}
	return runs
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}
