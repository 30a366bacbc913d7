// Package builder turns a validated layout document into a live grid tree
package builder

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/young1lin/gridconsole/console"
	"github.com/young1lin/gridconsole/grid"
	"github.com/young1lin/gridconsole/internal/config"
)

// Activation describes one Enter press on a layout element
type Activation struct {
	// Path is the labels of the enclosing grids, outermost first, followed
	// by the element's own caption
	Path      []string
	Kind      config.CellKind
	Label     string
	Parameter string
	Column    int
	Row       int
}

// Where returns the path joined with " / "
func (a Activation) Where() string {
	return strings.Join(a.Path, " / ")
}

// Handler receives activations. It runs synchronously inside the grid's key
// handling, on the goroutine driving the grid.
type Handler func(a Activation)

// Options configures Build
type Options struct {
	Target     console.Surface
	Logger     *zap.Logger
	OnActivate Handler
}

// Build creates the root grid for node and every nested grid below it
func Build(node *config.GridNode, opts Options) (*grid.Grid, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	b := &builder{opts: opts}
	return b.grid(node, config.DefaultPalette(), nil, nil)
}

type builder struct {
	opts Options
}

func (b *builder) grid(node *config.GridNode, inherited config.Palette, path []string, placement *config.CellNode) (*grid.Grid, error) {
	palette, err := node.Colors.Resolve(inherited)
	if err != nil {
		return nil, err
	}
	margins := node.Margins()

	cfg := grid.Config{
		Width:        node.Width,
		Height:       node.Height,
		MarginWidth:  margins.Width,
		MarginHeight: margins.Height,
		Target:       b.opts.Target,
		Label:        node.Label,
		Logger:       b.opts.Logger,
	}
	if placement != nil {
		cellPalette, err := placement.Colors.Resolve(palette)
		if err != nil {
			return nil, err
		}
		colors := toColors(cellPalette)
		cfg.Colors = &colors
		cfg.ColumnSpan = placement.ColumnSpan
		cfg.RowSpan = placement.RowSpan
		cfg.OnActivate = b.callback()
		cfg.Parameter = b.activation(path, placement)
	}

	g, err := grid.New(cfg)
	if err != nil {
		return nil, err
	}

	childPath := path
	if placement != nil {
		childPath = appendPath(path, node.Label)
	}

	for i := range node.Cells {
		cell := &node.Cells[i]
		switch cell.Kind() {
		case config.CellGrid:
			child, err := b.grid(cell.Grid, palette, childPath, cell)
			if err != nil {
				return nil, fmt.Errorf("cells[%d]: %w", i, err)
			}
			g.Add(cell.Column, cell.Row, child)
		case config.CellButton, config.CellText:
			e, err := b.leaf(cell, palette, childPath)
			if err != nil {
				return nil, fmt.Errorf("cells[%d]: %w", i, err)
			}
			g.Add(cell.Column, cell.Row, e)
		default:
			return nil, fmt.Errorf("cells[%d]: %w: no element", i, config.ErrInvalidLayout)
		}
	}
	return g, nil
}

func (b *builder) leaf(cell *config.CellNode, palette config.Palette, path []string) (grid.Element, error) {
	cellPalette, err := cell.Colors.Resolve(palette)
	if err != nil {
		return nil, err
	}
	colors := toColors(cellPalette)
	ec := grid.ElementConfig{
		Text:       cell.Caption(),
		ColumnSpan: cell.ColumnSpan,
		RowSpan:    cell.RowSpan,
		Colors:     &colors,
		OnActivate: b.callback(),
		Parameter:  b.activation(path, cell),
	}
	if cell.Kind() == config.CellText {
		return grid.NewText(ec), nil
	}
	return grid.NewButton(ec), nil
}

func (b *builder) activation(path []string, cell *config.CellNode) Activation {
	return Activation{
		Path:      appendPath(path, cell.Caption()),
		Kind:      cell.Kind(),
		Label:     cell.Caption(),
		Parameter: cell.Parameter,
		Column:    cell.Column,
		Row:       cell.Row,
	}
}

func (b *builder) callback() grid.ActivateFunc {
	return func(e grid.Element, param any) {
		a, ok := param.(Activation)
		if !ok {
			return
		}
		b.opts.Logger.Debug("element activated",
			zap.String("path", a.Where()), zap.String("parameter", a.Parameter))
		if b.opts.OnActivate != nil {
			b.opts.OnActivate(a)
		}
	}
}

func appendPath(path []string, name string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, name)
}

func toColors(p config.Palette) grid.Colors {
	return grid.Colors{
		Foreground:          p.Foreground,
		Background:          p.Background,
		HighlightForeground: p.HighlightForeground,
		HighlightBackground: p.HighlightBackground,
	}
}

// Describe writes the computed layout of g and every nested grid, one grid
// per paragraph
func Describe(w io.Writer, g *grid.Grid) error {
	return describe(w, g, "root", 0)
}

func describe(w io.Writer, g *grid.Grid, name string, depth int) error {
	indent := strings.Repeat("  ", depth)
	cols, rows := g.GridSize()
	width, height := g.Bounds()
	mw, mh := g.Margins()

	lines := []string{
		fmt.Sprintf("%s%s: %dx%d cells, margin %dx%d, extent %dx%d", indent, name, cols, rows, mw, mh, width, height),
		fmt.Sprintf("%s  column widths: %v at x %v", indent, g.ColumnWidths(), g.ColumnX()),
		fmt.Sprintf("%s  row heights:   %v at y %v", indent, g.RowHeights(), g.RowY()),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	for _, e := range g.Elements() {
		child, ok := e.(*grid.Grid)
		if !ok {
			continue
		}
		label := child.Label()
		if label == "" {
			label = child.String()
		}
		if err := describe(w, child, fmt.Sprintf("%q", label), depth+1); err != nil {
			return err
		}
	}
	return nil
}
