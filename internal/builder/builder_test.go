package builder

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/young1lin/gridconsole/console"
	"github.com/young1lin/gridconsole/grid"
	"github.com/young1lin/gridconsole/internal/config"
)

func buildDefault(t *testing.T, handler Handler) (*grid.Grid, *console.Buffer) {
	t.Helper()
	buf := console.NewBuffer(60, 6)
	root, err := Build(&config.DefaultConfig().Layout, Options{Target: buf, OnActivate: handler})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return root, buf
}

func TestBuildDefaultLayout(t *testing.T) {
	root, buf := buildDefault(t, nil)

	if got, want := root.ColumnWidths(), []int{18, 9, 3, 0}; !equalInts(got, want) {
		t.Errorf("ColumnWidths() = %v, want %v", got, want)
	}

	root.Render()
	lines := buf.Lines()
	want := []string{
		"0,0" + strings.Repeat(" ", 16) + "Text asdf 2,0",
		"0,1" + strings.Repeat(" ", 16) + "1,1" + strings.Repeat(" ", 7) + "2,1",
		"Deploy application 1,2       2,2",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}

	if _, ok := root.At(1, 0).(*grid.Text); !ok {
		t.Errorf("At(1,0) = %T, want *grid.Text", root.At(1, 0))
	}
	sub, ok := root.At(0, 2).(*grid.Grid)
	if !ok {
		t.Fatalf("At(0,2) = %T, want *grid.Grid", root.At(0, 2))
	}
	if sub.Parent() != root {
		t.Error("nested grid should be linked to the root")
	}
}

func TestBuildActivations(t *testing.T) {
	var got []Activation
	root, _ := buildDefault(t, func(a Activation) { got = append(got, a) })

	if err := root.Select(root.At(0, 2)); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	for _, k := range []console.Key{console.KeyEnter, console.KeyDown, console.KeyEnter} {
		if err := root.HandleKey(k); err != nil {
			t.Fatalf("HandleKey(%v) error = %v", k, err)
		}
	}

	if len(got) != 2 {
		t.Fatalf("activations = %d, want 2", len(got))
	}
	if got[0].Kind != config.CellGrid || got[0].Where() != "Deploy application" {
		t.Errorf("first activation = %+v, want the Deploy grid", got[0])
	}
	if got[1].Where() != "Deploy application / Debug" || got[1].Parameter != "debug" {
		t.Errorf("second activation = %+v, want Debug with parameter debug", got[1])
	}
	if got[1].Column != 0 || got[1].Row != 0 || got[1].Kind != config.CellButton {
		t.Errorf("second activation = %+v, want button at 0,0", got[1])
	}
}

func TestBuildColorInheritance(t *testing.T) {
	doc := `
layout:
  width: 2
  height: 1
  colors: {foreground: Yellow}
  cells:
    - {column: 0, row: 0, text: "a"}
    - column: 1
      row: 0
      colors: {background: DarkBlue}
      grid:
        label: "g"
        width: 1
        height: 1
        colors: {foreground: Green}
        cells:
          - {column: 0, row: 0, button: "b", colors: {highlightBackground: Red}}
`
	cfg, err := config.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	buf := console.NewBuffer(10, 2)
	root, err := Build(&cfg.Layout, Options{Target: buf})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	text := root.At(0, 0).(*grid.Text)
	if c := text.Colors(); c.Foreground != console.Yellow || c.Background != console.Black {
		t.Errorf("text colors = %+v, want yellow on black", c)
	}

	sub := root.At(1, 0).(*grid.Grid)
	root.Render()
	if c := buf.Cell(2, 0); c.Rune != 'g' || c.Fg != console.Green || c.Bg != console.DarkBlue {
		t.Errorf("label cell = %+v, want green on dark blue", c)
	}

	b := sub.At(0, 0).(*grid.Button)
	want := grid.Colors{
		Foreground:          console.Green,
		Background:          console.Black,
		HighlightForeground: console.Black,
		HighlightBackground: console.Red,
	}
	if b.Colors() != want {
		t.Errorf("button colors = %+v, want %+v", b.Colors(), want)
	}
}

func TestBuildSpans(t *testing.T) {
	doc := `
layout:
  width: 3
  height: 1
  cells:
    - {column: 0, row: 0, button: "wide", columnSpan: 2}
    - {column: 2, row: 0, button: "x"}
`
	cfg, err := config.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	root, err := Build(&cfg.Layout, Options{Target: console.NewBuffer(20, 2)})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if root.At(0, 0) != root.At(1, 0) {
		t.Error("span should cover columns 0 and 1")
	}
	if len(root.Elements()) != 2 {
		t.Errorf("len(Elements()) = %d, want 2", len(root.Elements()))
	}
}

func TestBuildRejectsInvalidNodes(t *testing.T) {
	buf := console.NewBuffer(10, 2)

	_, err := Build(&config.GridNode{Width: 0, Height: 1}, Options{Target: buf})
	if !errors.Is(err, grid.ErrInvalidConfiguration) {
		t.Errorf("Build(zero width) error = %v, want ErrInvalidConfiguration", err)
	}

	_, err = Build(&config.GridNode{Width: 1, Height: 1}, Options{})
	if !errors.Is(err, grid.ErrInvalidConfiguration) {
		t.Errorf("Build(no target) error = %v, want ErrInvalidConfiguration", err)
	}

	empty := &config.GridNode{Width: 1, Height: 1, Cells: []config.CellNode{{}}}
	_, err = Build(empty, Options{Target: buf})
	if !errors.Is(err, config.ErrInvalidLayout) {
		t.Errorf("Build(empty cell) error = %v, want ErrInvalidLayout", err)
	}
}

func TestDescribe(t *testing.T) {
	root, _ := buildDefault(t, nil)

	var out bytes.Buffer
	if err := Describe(&out, root); err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"root: 4x4 cells, margin 1x0, extent 33x3",
		"column widths: [18 9 3 0] at x [0 19 29 33]",
		`"Deploy application": 1x3 cells`,
		"column widths: [7] at x [0]",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Describe() missing %q:\n%s", want, text)
		}
	}
}

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
