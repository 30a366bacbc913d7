package grid

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/young1lin/gridconsole/console"
)

// maxNavigationAttempts bounds the search for the next selectable cell so a
// grid with nothing to select cannot spin forever
const maxNavigationAttempts = 10

// Direction is a focus movement direction
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns a human-readable name for the direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// delta returns the unit cell offset of d
func (d Direction) delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// DirectionOf maps an arrow key to its direction
func DirectionOf(k console.Key) (Direction, bool) {
	switch k {
	case console.KeyUp:
		return Up, true
	case console.KeyDown:
		return Down, true
	case console.KeyLeft:
		return Left, true
	case console.KeyRight:
		return Right, true
	}
	return 0, false
}

// HandleInput reads one key from the target surface and handles it.
// It blocks for as long as the surface's ReadKey does.
func (g *Grid) HandleInput() error {
	return g.HandleKey(g.target.ReadKey())
}

// HandleKey applies k to the active grid of the drill-down chain starting at
// g. Arrow keys move focus, Enter activates the focused element and drills
// into it when it is a grid, Backspace returns to the parent grid. Other
// keys are ignored.
func (g *Grid) HandleKey(k console.Key) error {
	if child := g.ActiveChild(); child != nil {
		return child.HandleKey(k)
	}

	if d, ok := DirectionOf(k); ok {
		return g.Navigate(d)
	}
	switch k {
	case console.KeyEnter:
		return g.activateSelected()
	case console.KeyBackspace:
		g.popToParent()
	}
	return nil
}

// Selected returns the focused element, or nil
func (g *Grid) Selected() Element {
	return g.selected
}

// Select focuses e, which must be a selectable element of g
func (g *Grid) Select(e Element) error {
	if e == nil || !g.contains(e) {
		return fmt.Errorf("select %v: %w", e, ErrNotInGrid)
	}
	if !e.CanBeSelected() {
		return fmt.Errorf("select %v: %w", e, ErrNotSelectable)
	}
	g.focus(e)
	return nil
}

// Navigate moves focus one step in d.
//
// Without a focused element the first selectable element in column-major
// order is focused. Otherwise the cell position is stepped in d, wrapping at
// the edges, until a selectable element other than the focused one is found
// or the attempts run out, in which case focus stays where it is.
func (g *Grid) Navigate(d Direction) error {
	if g.selected == nil {
		if first := g.firstSelectable(); first != nil {
			g.focus(first)
		}
		return nil
	}

	x, y, ok := g.locate(g.selected)
	if !ok {
		g.log.Error("focused element missing from grid",
			zap.Stringer("grid", g), zap.Stringer("direction", d))
		return fmt.Errorf("%w: focused element not found in %dx%d grid", ErrInternalInconsistency, g.width, g.height)
	}

	dx, dy := d.delta()
	for attempt := 0; attempt < maxNavigationAttempts; attempt++ {
		x, y = g.wrap(x+dx, y+dy)
		e := g.cells[x][y].element
		if e == nil || e == g.selected || !e.CanBeSelected() {
			continue
		}
		g.log.Debug("focus moved",
			zap.Stringer("direction", d), zap.Int("column", x), zap.Int("row", y))
		g.focus(e)
		return nil
	}
	return nil
}

// wrap folds a position that stepped one cell past an edge onto the
// opposite edge
func (g *Grid) wrap(x, y int) (int, int) {
	if x < 0 {
		x = g.width - 1
	}
	if x >= g.width {
		x = 0
	}
	if y < 0 {
		y = g.height - 1
	}
	if y >= g.height {
		y = 0
	}
	return x, y
}

func (g *Grid) firstSelectable() Element {
	for c := range g.cells {
		for r := range g.cells[c] {
			if e := g.cells[c][r].element; e != nil && e.CanBeSelected() {
				return e
			}
		}
	}
	return nil
}

func (g *Grid) focus(e Element) {
	if g.selected != nil {
		g.selected.SetSelected(false)
	}
	g.selected = e
	e.SetSelected(true)
}

func (g *Grid) clearSelection() {
	if g.selected != nil {
		g.selected.SetSelected(false)
	}
	g.selected = nil
}

// activateSelected runs the focused element's callback and, for a nested
// grid, makes it the active child
func (g *Grid) activateSelected() error {
	e := g.selected
	if e == nil {
		return nil
	}
	x, y, ok := g.locate(e)
	if !ok {
		g.log.Error("focused element missing from grid", zap.Stringer("grid", g))
		return fmt.Errorf("%w: focused element not found in %dx%d grid", ErrInternalInconsistency, g.width, g.height)
	}

	e.Activate()

	switch e.Kind() {
	case KindContainer:
		// the callback may have changed the cell
		s := g.cells[x][y]
		if s.element != e || s.child == noHandle {
			return nil
		}
		g.activeChild = s.child
		g.clearPending = true
		g.log.Debug("drilled down", zap.Stringer("grid", g), zap.Stringer("child", g.ActiveChild()))
	case KindLeaf:
	}
	return nil
}

// popToParent ends the drill-down into g
func (g *Grid) popToParent() {
	parent := g.Parent()
	if parent == nil || parent.activeChild != g.id {
		return
	}
	parent.activeChild = noHandle
	parent.clearPending = true
	g.log.Debug("popped to parent", zap.Stringer("grid", parent))
}
