package grid

import (
	"testing"

	"github.com/young1lin/gridconsole/console"
)

func newTestGrid(t *testing.T, target console.Surface, width, height, marginWidth, marginHeight int) *Grid {
	t.Helper()
	g, err := New(Config{
		Width:        width,
		Height:       height,
		MarginWidth:  marginWidth,
		MarginHeight: marginHeight,
		Target:       target,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func button(text string) *Button {
	return NewButton(ElementConfig{Text: text})
}

func label(text string) *Text {
	return NewText(ElementConfig{Text: text})
}

// stubElement counts draws and activations
type stubElement struct {
	width, height       int
	columnSpan, rowSpan int
	selectable          bool
	selected            bool
	draws               int
	activations         int
}

func (s *stubElement) Kind() Kind                     { return KindLeaf }
func (s *stubElement) Width() int                     { return s.width }
func (s *stubElement) Height() int                    { return s.height }
func (s *stubElement) RowSpan() int                   { return normaliseSpan(s.rowSpan) }
func (s *stubElement) ColumnSpan() int                { return normaliseSpan(s.columnSpan) }
func (s *stubElement) CanBeSelected() bool            { return s.selectable }
func (s *stubElement) IsSelected() bool               { return s.selected }
func (s *stubElement) SetSelected(selected bool)      { s.selected = selected }
func (s *stubElement) Draw(console.Surface, int, int) { s.draws++ }
func (s *stubElement) Activate()                      { s.activations++ }

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
