package grid

import "github.com/young1lin/gridconsole/console"

// Text is a static, never selectable label. Newlines split it over several
// rows.
type Text struct {
	base
}

// NewText creates a label from cfg. Highlight colors are ignored.
func NewText(cfg ElementConfig) *Text {
	t := &Text{base: newBase(cfg)}
	t.self = t
	return t
}

func (t *Text) CanBeSelected() bool { return false }

func (t *Text) Draw(s console.Surface, x, y int) {
	drawText(s, x, y, t.text, t.colors.Foreground, t.colors.Background)
}

func (t *Text) String() string {
	return "Text " + t.text
}
