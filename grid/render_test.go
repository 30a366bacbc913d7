package grid

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/young1lin/gridconsole/console"
	"github.com/young1lin/gridconsole/internal/mocks"
)

func TestRenderDrawsElementAtCellOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surface := mocks.NewMockSurface(ctrl)
	g := newTestGrid(t, surface, 1, 1, 1, 0)
	g.Add(0, 0, button("Hi"))

	gomock.InOrder(
		surface.EXPECT().SetForeground(console.White),
		surface.EXPECT().SetBackground(console.Black),
		surface.EXPECT().MoveCursor(0, 0),
		surface.EXPECT().WriteChar('H'),
		surface.EXPECT().WriteChar('i'),
	)

	g.Render()
}

func TestRenderClearsWhenInvalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surface := mocks.NewMockSurface(ctrl)
	g := newTestGrid(t, surface, 1, 1, 1, 0)
	g.Add(0, 0, label("x"))
	g.Invalidate()

	gomock.InOrder(
		surface.EXPECT().SetBackground(console.Black),
		surface.EXPECT().Clear(),
		surface.EXPECT().SetForeground(console.White),
		surface.EXPECT().SetBackground(console.Black),
		surface.EXPECT().MoveCursor(0, 0),
		surface.EXPECT().WriteChar('x'),
	)
	g.Render()

	// the clear is consumed by the first render
	gomock.InOrder(
		surface.EXPECT().SetForeground(console.White),
		surface.EXPECT().SetBackground(console.Black),
		surface.EXPECT().MoveCursor(0, 0),
		surface.EXPECT().WriteChar('x'),
	)
	g.Render()
}

func TestRenderEmptyGridTouchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surface := mocks.NewMockSurface(ctrl)
	g := newTestGrid(t, surface, 3, 3, 1, 0)
	g.Render()
}

func TestRenderDrawsSpanningElementOnce(t *testing.T) {
	g := newTestGrid(t, console.NewBuffer(20, 5), 3, 1, 1, 0)
	wide := &stubElement{width: 5, height: 1, columnSpan: 3, selectable: true}
	g.Add(0, 0, wide)

	g.Render()

	if wide.draws != 1 {
		t.Errorf("draws = %d, want 1", wide.draws)
	}
}

func TestRenderLayout(t *testing.T) {
	buf := console.NewBuffer(20, 4)
	g := newTestGrid(t, buf, 2, 2, 1, 0)
	g.Add(0, 0, label("AB"))
	g.Add(1, 0, label("C"))
	g.Add(0, 1, NewButton(ElementConfig{Text: "WIDE", ColumnSpan: 2}))

	g.Render()

	want := "AB C\nWIDE"
	if got := buf.String(); got != want {
		t.Errorf("rendered =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderHighlightsSelection(t *testing.T) {
	buf := console.NewBuffer(10, 1)
	g := newTestGrid(t, buf, 2, 1, 1, 0)
	a, b := button("a"), button("b")
	g.Add(0, 0, a)
	g.Add(1, 0, b)
	_ = g.Select(b)

	g.Render()

	if c := buf.Cell(0, 0); c.Rune != 'a' || c.Fg != console.White || c.Bg != console.Black {
		t.Errorf("Cell(0,0) = %+v, want 'a' white on black", c)
	}
	if c := buf.Cell(2, 0); c.Rune != 'b' || c.Fg != console.Black || c.Bg != console.White {
		t.Errorf("Cell(2,0) = %+v, want 'b' black on white", c)
	}
}

func TestRenderCustomColors(t *testing.T) {
	buf := console.NewBuffer(10, 1)
	g := newTestGrid(t, buf, 1, 1, 1, 0)
	colors := Colors{
		Foreground:          console.Yellow,
		Background:          console.DarkBlue,
		HighlightForeground: console.Red,
		HighlightBackground: console.Gray,
	}
	g.Add(0, 0, NewText(ElementConfig{Text: "t", Colors: &colors}))

	g.Render()

	if c := buf.Cell(0, 0); c.Fg != console.Yellow || c.Bg != console.DarkBlue {
		t.Errorf("Cell(0,0) = %+v, want yellow on dark blue", c)
	}
}

func TestRenderActiveChildOnly(t *testing.T) {
	buf := console.NewBuffer(40, 5)
	root, sub := deployGrid(t, buf)

	root.Render()
	if got, want := buf.Lines()[0], "Deploy Quit"; got != want {
		t.Errorf("root line = %q, want %q", got, want)
	}

	_ = root.Select(sub)
	_ = root.HandleKey(console.KeyEnter)
	root.Render()

	want := "Debug\nKeyuser\nRelease"
	if got := buf.String(); got != want {
		t.Errorf("after drill-down rendered =\n%s\nwant\n%s", got, want)
	}

	_ = root.HandleKey(console.KeyBackspace)
	root.Render()
	if got := buf.String(); got != "Deploy Quit" {
		t.Errorf("after pop rendered = %q, want %q", got, "Deploy Quit")
	}
}

func TestRenderMultiLineText(t *testing.T) {
	buf := console.NewBuffer(10, 4)
	g := newTestGrid(t, buf, 2, 1, 1, 0)
	g.Add(0, 0, label("ab\nc"))
	g.Add(1, 0, label("d"))

	g.Render()

	want := "ab d\nc"
	if got := buf.String(); got != want {
		t.Errorf("rendered =\n%s\nwant\n%s", got, want)
	}
}
