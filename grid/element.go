package grid

import "github.com/young1lin/gridconsole/console"

// Kind tags an element as a plain widget or as a nested grid
type Kind int

const (
	KindLeaf Kind = iota
	KindContainer
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Element is anything that can occupy a grid cell.
// Elements are compared by identity, so implementations must be pointer types.
type Element interface {
	Kind() Kind

	// Width and Height are the natural size in character cells
	Width() int
	Height() int

	RowSpan() int
	ColumnSpan() int

	CanBeSelected() bool
	IsSelected() bool
	// SetSelected is called by the containing grid only
	SetSelected(selected bool)

	// Draw renders the element with its top-left corner at (x, y), using the
	// highlight colors while selected
	Draw(s console.Surface, x, y int)

	// Activate runs the element's Enter callback
	Activate()
}

// ActivateFunc is invoked synchronously when Enter is pressed on an element.
// param is the value bound at construction.
type ActivateFunc func(e Element, param any)

// Colors holds the normal and highlighted (selected) color pairs
type Colors struct {
	Foreground          console.Color
	Background          console.Color
	HighlightForeground console.Color
	HighlightBackground console.Color
}

// DefaultColors is white on black, inverted while selected
func DefaultColors() Colors {
	return Colors{
		Foreground:          console.White,
		Background:          console.Black,
		HighlightForeground: console.Black,
		HighlightBackground: console.White,
	}
}

// ElementConfig describes a leaf element. A nil Colors means DefaultColors;
// spans below 1 are treated as 1.
type ElementConfig struct {
	Text       string
	ColumnSpan int
	RowSpan    int
	Colors     *Colors
	OnActivate ActivateFunc
	Parameter  any
}

// base carries the state shared by the leaf widgets
type base struct {
	self       Element
	text       string
	columnSpan int
	rowSpan    int
	colors     Colors
	selected   bool
	onActivate ActivateFunc
	parameter  any
}

func newBase(cfg ElementConfig) base {
	b := base{
		text:       cfg.Text,
		columnSpan: normaliseSpan(cfg.ColumnSpan),
		rowSpan:    normaliseSpan(cfg.RowSpan),
		colors:     DefaultColors(),
		onActivate: cfg.OnActivate,
		parameter:  cfg.Parameter,
	}
	if cfg.Colors != nil {
		b.colors = *cfg.Colors
	}
	return b
}

func normaliseSpan(span int) int {
	if span < 1 {
		return 1
	}
	return span
}

func (b *base) Kind() Kind { return KindLeaf }

func (b *base) Width() int {
	w, _ := console.BlockSize(b.text)
	return w
}

func (b *base) Height() int {
	_, h := console.BlockSize(b.text)
	return h
}

func (b *base) RowSpan() int    { return b.rowSpan }
func (b *base) ColumnSpan() int { return b.columnSpan }

func (b *base) IsSelected() bool          { return b.selected }
func (b *base) SetSelected(selected bool) { b.selected = selected }

// Text returns the label
func (b *base) Text() string { return b.text }

// SetText replaces the label; the owning grid picks up the new size on its
// next render
func (b *base) SetText(text string) { b.text = text }

// Colors returns the element's colors
func (b *base) Colors() Colors { return b.colors }

// Parameter returns the value passed to the activation callback
func (b *base) Parameter() any { return b.parameter }

func (b *base) Activate() {
	if b.onActivate != nil {
		b.onActivate(b.self, b.parameter)
	}
}

// drawText writes each line of text below the previous one
func drawText(s console.Surface, x, y int, text string, fg, bg console.Color) {
	s.SetForeground(fg)
	s.SetBackground(bg)
	line := 0
	s.MoveCursor(x, y)
	for _, r := range text {
		if r == '\n' {
			line++
			s.MoveCursor(x, y+line)
			continue
		}
		s.WriteChar(r)
	}
}
