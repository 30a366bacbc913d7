package grid

import "github.com/young1lin/gridconsole/console"

// Button is a selectable text element
type Button struct {
	base
}

// NewButton creates a button from cfg
func NewButton(cfg ElementConfig) *Button {
	b := &Button{base: newBase(cfg)}
	b.self = b
	return b
}

func (b *Button) CanBeSelected() bool { return true }

// Draw renders the label in the highlight colors while selected
func (b *Button) Draw(s console.Surface, x, y int) {
	if b.selected {
		drawText(s, x, y, b.text, b.colors.HighlightForeground, b.colors.HighlightBackground)
		return
	}
	drawText(s, x, y, b.text, b.colors.Foreground, b.colors.Background)
}

func (b *Button) String() string {
	return "Button " + b.text
}
