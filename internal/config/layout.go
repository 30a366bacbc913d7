package config

import (
	"errors"
	"fmt"

	"github.com/young1lin/gridconsole/console"
)

// GridNode describes one grid and, recursively, the grids nested in it
type GridNode struct {
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Margin *Margin     `yaml:"margin,omitempty"`
	Label  string      `yaml:"label,omitempty"`
	Colors *ColorsNode `yaml:"colors,omitempty"`
	Cells  []CellNode  `yaml:"cells,omitempty"`
}

// Margin is the gap between columns and rows. A missing margin means
// width 1, height 0.
type Margin struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Margins returns the node's margins with the default applied
func (n *GridNode) Margins() Margin {
	if n.Margin == nil {
		return Margin{Width: 1}
	}
	return *n.Margin
}

// ColorsNode names colors; empty fields inherit from the enclosing grid
type ColorsNode struct {
	Foreground          string `yaml:"foreground,omitempty"`
	Background          string `yaml:"background,omitempty"`
	HighlightForeground string `yaml:"highlightForeground,omitempty"`
	HighlightBackground string `yaml:"highlightBackground,omitempty"`
}

// Palette is a fully resolved color set
type Palette struct {
	Foreground          console.Color
	Background          console.Color
	HighlightForeground console.Color
	HighlightBackground console.Color
}

// DefaultPalette is white on black, inverted while selected
func DefaultPalette() Palette {
	return Palette{
		Foreground:          console.White,
		Background:          console.Black,
		HighlightForeground: console.Black,
		HighlightBackground: console.White,
	}
}

// Resolve overlays the named colors on base. A nil node returns base.
func (c *ColorsNode) Resolve(base Palette) (Palette, error) {
	if c == nil {
		return base, nil
	}
	out := base
	fields := []struct {
		name  string
		value string
		dst   *console.Color
	}{
		{"foreground", c.Foreground, &out.Foreground},
		{"background", c.Background, &out.Background},
		{"highlightForeground", c.HighlightForeground, &out.HighlightForeground},
		{"highlightBackground", c.HighlightBackground, &out.HighlightBackground},
	}
	var errs []error
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		color, err := console.ParseColor(f.value)
		if err != nil {
			errs = append(errs, &ValidationError{Path: f.name, Message: err.Error()})
			continue
		}
		*f.dst = color
	}
	return out, errors.Join(errs...)
}

// CellKind names the element a cell holds
type CellKind string

const (
	CellButton CellKind = "button"
	CellText   CellKind = "text"
	CellGrid   CellKind = "grid"
)

// CellNode places one element. Exactly one of Button, Text and Grid is set.
type CellNode struct {
	Column     int         `yaml:"column"`
	Row        int         `yaml:"row"`
	Button     *string     `yaml:"button,omitempty"`
	Text       *string     `yaml:"text,omitempty"`
	Grid       *GridNode   `yaml:"grid,omitempty"`
	Parameter  string      `yaml:"parameter,omitempty"`
	ColumnSpan int         `yaml:"columnSpan,omitempty"`
	RowSpan    int         `yaml:"rowSpan,omitempty"`
	Colors     *ColorsNode `yaml:"colors,omitempty"`
}

// Kind reports which element the cell holds, or "" when none or several are set
func (c *CellNode) Kind() CellKind {
	var kind CellKind
	n := 0
	if c.Button != nil {
		kind = CellButton
		n++
	}
	if c.Text != nil {
		kind = CellText
		n++
	}
	if c.Grid != nil {
		kind = CellGrid
		n++
	}
	if n != 1 {
		return ""
	}
	return kind
}

// Caption returns the button or text label
func (c *CellNode) Caption() string {
	switch {
	case c.Button != nil:
		return *c.Button
	case c.Text != nil:
		return *c.Text
	case c.Grid != nil:
		return c.Grid.Label
	}
	return ""
}

// ValidationError locates a problem in the layout tree by its YAML path
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidLayout
}

func invalid(path, format string, args ...any) error {
	return &ValidationError{Path: path, Message: fmt.Sprintf(format, args...)}
}

// validateGrid checks node and its nested grids
func validateGrid(path string, node *GridNode) error {
	var errs []error

	if node.Width <= 0 {
		errs = append(errs, invalid(path+".width", "must be positive, got %d", node.Width))
	}
	if node.Height <= 0 {
		errs = append(errs, invalid(path+".height", "must be positive, got %d", node.Height))
	}
	if m := node.Margins(); m.Width < 0 || m.Height < 0 {
		errs = append(errs, invalid(path+".margin", "must not be negative, got %dx%d", m.Width, m.Height))
	}
	errs = append(errs, validateColors(path+".colors", node.Colors)...)

	for i := range node.Cells {
		cell := &node.Cells[i]
		cellPath := fmt.Sprintf("%s.cells[%d]", path, i)

		if cell.Column < 0 || (node.Width > 0 && cell.Column >= node.Width) {
			errs = append(errs, invalid(cellPath+".column", "%d is outside 0..%d", cell.Column, node.Width-1))
		}
		if cell.Row < 0 || (node.Height > 0 && cell.Row >= node.Height) {
			errs = append(errs, invalid(cellPath+".row", "%d is outside 0..%d", cell.Row, node.Height-1))
		}
		if cell.ColumnSpan < 0 {
			errs = append(errs, invalid(cellPath+".columnSpan", "must not be negative"))
		}
		if cell.RowSpan < 0 {
			errs = append(errs, invalid(cellPath+".rowSpan", "must not be negative"))
		}
		errs = append(errs, validateColors(cellPath+".colors", cell.Colors)...)

		if cell.Kind() == "" {
			errs = append(errs, invalid(cellPath, "exactly one of button, text or grid is required"))
			continue
		}
		if cell.Grid != nil {
			if err := validateGrid(cellPath+".grid", cell.Grid); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

func validateColors(path string, c *ColorsNode) []error {
	if c == nil {
		return nil
	}
	_, err := c.Resolve(DefaultPalette())
	if err == nil {
		return nil
	}
	var errs []error
	for _, e := range unwrapJoined(err) {
		var ve *ValidationError
		if errors.As(e, &ve) {
			errs = append(errs, invalid(path+"."+ve.Path, "%s", ve.Message))
		}
	}
	return errs
}

// unwrapJoined flattens an errors.Join result
func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// Problems flattens a validation error into its individual failures
func Problems(err error) []*ValidationError {
	var out []*ValidationError
	var walk func(error)
	walk = func(e error) {
		switch v := e.(type) {
		case nil:
		case *ValidationError:
			out = append(out, v)
		case interface{ Unwrap() []error }:
			for _, inner := range v.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(v.Unwrap())
		}
	}
	walk(err)
	return out
}
