package grid

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/young1lin/gridconsole/console"
)

// Config describes a grid. Width and Height are cell counts; margins are the
// gaps between columns and rows in character cells.
type Config struct {
	Width        int
	Height       int
	MarginWidth  int
	MarginHeight int

	// Target is the surface this grid draws on and reads keys from
	Target console.Surface

	// Label, Colors, OnActivate, Parameter and the spans describe the grid
	// as an element inside a parent grid
	Label      string
	Colors     *Colors
	OnActivate ActivateFunc
	Parameter  any
	ColumnSpan int
	RowSpan    int

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// DefaultConfig returns a width x height grid with one column of margin
// between columns and none between rows
func DefaultConfig(target console.Surface, width, height int) Config {
	return Config{
		Width:       width,
		Height:      height,
		MarginWidth: 1,
		Target:      target,
	}
}

// slot is one cell. child is the arena handle when the element is a grid.
type slot struct {
	element Element
	child   handle
}

var emptySlot = slot{child: noHandle}

// Grid is a rectangular cell container and itself an Element
type Grid struct {
	width        int
	height       int
	marginWidth  int
	marginHeight int
	target       console.Surface
	log          *zap.Logger

	// cells is indexed [column][row]
	cells [][]slot

	columnWidths []int
	rowHeights   []int
	columnX      []int
	rowY         []int

	selected     Element
	clearPending bool

	tree        *arena
	id          handle
	parent      handle
	activeChild handle

	// element side
	label      string
	colors     Colors
	isSelected bool
	onActivate ActivateFunc
	parameter  any
	columnSpan int
	rowSpan    int
}

// New validates cfg and creates an empty grid
func New(cfg Config) (*Grid, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfiguration, cfg.Width, cfg.Height)
	}
	if cfg.MarginWidth < 0 || cfg.MarginHeight < 0 {
		return nil, fmt.Errorf("%w: margins %dx%d must not be negative", ErrInvalidConfiguration, cfg.MarginWidth, cfg.MarginHeight)
	}
	if cfg.Target == nil {
		return nil, fmt.Errorf("%w: no target surface", ErrInvalidConfiguration)
	}

	g := &Grid{
		marginWidth:  cfg.MarginWidth,
		marginHeight: cfg.MarginHeight,
		target:       cfg.Target,
		log:          cfg.Logger,
		parent:       noHandle,
		activeChild:  noHandle,
		label:        cfg.Label,
		colors:       DefaultColors(),
		onActivate:   cfg.OnActivate,
		parameter:    cfg.Parameter,
		columnSpan:   normaliseSpan(cfg.ColumnSpan),
		rowSpan:      normaliseSpan(cfg.RowSpan),
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	if cfg.Colors != nil {
		g.colors = *cfg.Colors
	}
	newArena(g)
	g.allocate(cfg.Width, cfg.Height)
	return g, nil
}

func (g *Grid) allocate(width, height int) {
	g.width = width
	g.height = height
	g.cells = make([][]slot, width)
	for c := range g.cells {
		g.cells[c] = make([]slot, height)
		for r := range g.cells[c] {
			g.cells[c][r] = emptySlot
		}
	}
	g.layout()
}

// GridSize returns the number of columns and rows
func (g *Grid) GridSize() (columns, rows int) {
	return g.width, g.height
}

// Margins returns the gaps between columns and between rows
func (g *Grid) Margins() (width, height int) {
	return g.marginWidth, g.marginHeight
}

// Resize changes the cell dimensions. All contents, the selection and any
// drill-down below this grid are discarded. Non-positive sizes are ignored.
func (g *Grid) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		g.log.Warn("ignoring resize to non-positive size",
			zap.Int("width", width), zap.Int("height", height))
		return
	}
	old := g.Elements()
	g.allocate(width, height)
	for _, e := range old {
		g.release(e)
	}
	g.clearSelection()
	g.activeChild = noHandle
	g.clearPending = true
}

// Add places e at (column, row). The same element is also stored in the
// following e.ColumnSpan()-1 cells of the row, clipped at the grid edge.
// Placing a grid sets its parent to g. Invalid insertions are logged and
// ignored: nil elements, out-of-range cells, the grid itself, one of its
// ancestors, or a grid that already belongs to another parent.
func (g *Grid) Add(column, row int, e Element) {
	if e == nil {
		g.log.Warn("ignoring nil element", zap.Int("column", column), zap.Int("row", row))
		return
	}
	if !g.inBounds(column, row) {
		g.log.Warn("ignoring element outside grid",
			zap.Int("column", column), zap.Int("row", row),
			zap.Int("columns", g.width), zap.Int("rows", g.height))
		return
	}

	s := slot{element: e, child: noHandle}
	if child, ok := e.(*Grid); ok {
		h, ok := g.adoptChild(child)
		if !ok {
			return
		}
		s.child = h
	}

	span := g.columnSpanAt(column, e)
	var displaced []Element
	for i := 0; i < span; i++ {
		if prev := g.cells[column+i][row].element; prev != nil && prev != e {
			displaced = append(displaced, prev)
		}
		g.cells[column+i][row] = s
	}
	for _, prev := range displaced {
		g.release(prev)
	}

	g.layout()
}

// Remove clears every cell holding the element found at (column, row)
func (g *Grid) Remove(column, row int) {
	if !g.inBounds(column, row) {
		return
	}
	e := g.cells[column][row].element
	if e == nil {
		return
	}
	for c := range g.cells {
		for r := range g.cells[c] {
			if g.cells[c][r].element == e {
				g.cells[c][r] = emptySlot
			}
		}
	}
	g.release(e)
	g.clearPending = true
	g.layout()
}

// At returns the element at (column, row), or nil
func (g *Grid) At(column, row int) Element {
	if !g.inBounds(column, row) {
		return nil
	}
	return g.cells[column][row].element
}

// Elements returns every element once, in column-major order
func (g *Grid) Elements() []Element {
	var out []Element
	seen := make(map[Element]struct{})
	for c := range g.cells {
		for r := range g.cells[c] {
			e := g.cells[c][r].element
			if e == nil {
				continue
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// Parent returns the grid this grid was inserted into, or nil
func (g *Grid) Parent() *Grid {
	return g.tree.get(g.parent)
}

// ActiveChild returns the nested grid currently drilled into, or nil
func (g *Grid) ActiveChild() *Grid {
	return g.tree.get(g.activeChild)
}

// Active returns the grid at the end of the drill-down chain starting at g
func (g *Grid) Active() *Grid {
	cur := g
	for child := cur.ActiveChild(); child != nil; child = cur.ActiveChild() {
		cur = child
	}
	return cur
}

// Depth returns how many drill-downs separate g from its active grid
func (g *Grid) Depth() int {
	depth := 0
	for cur := g.ActiveChild(); cur != nil; cur = cur.ActiveChild() {
		depth++
	}
	return depth
}

// Invalidate schedules a full clear of the target before the next render
func (g *Grid) Invalidate() {
	g.clearPending = true
}

func (g *Grid) inBounds(column, row int) bool {
	return column >= 0 && row >= 0 && column < g.width && row < g.height
}

// contains reports whether e occupies any cell
func (g *Grid) contains(e Element) bool {
	_, _, ok := g.locate(e)
	return ok
}

// locate returns the first cell holding e in column-major order, which is
// the top-left cell of its footprint
func (g *Grid) locate(e Element) (column, row int, ok bool) {
	for c := range g.cells {
		for r := range g.cells[c] {
			if g.cells[c][r].element == e {
				return c, r, true
			}
		}
	}
	return 0, 0, false
}

// isOrigin reports whether (column, row) is the first cell of the element it
// holds rather than a span copy
func (g *Grid) isOrigin(column, row int) bool {
	e := g.cells[column][row].element
	return e != nil && (column == 0 || g.cells[column-1][row].element != e)
}

func (g *Grid) columnSpanAt(column int, e Element) int {
	return clampSpan(e.ColumnSpan(), column, g.width)
}

func (g *Grid) rowSpanAt(row int, e Element) int {
	return clampSpan(e.RowSpan(), row, g.height)
}

func clampSpan(span, start, limit int) int {
	if span < 1 {
		span = 1
	}
	if start+span > limit {
		span = limit - start
	}
	return span
}

// adoptChild links child below g and returns its handle in g's arena
func (g *Grid) adoptChild(child *Grid) (handle, bool) {
	if child == g {
		g.log.Warn("ignoring insertion of a grid into itself")
		return noHandle, false
	}
	for p := g; p != nil; p = p.Parent() {
		if p == child {
			g.log.Warn("ignoring insertion of an ancestor grid", zap.String("label", child.label))
			return noHandle, false
		}
	}
	if p := child.Parent(); p != nil {
		if p != g {
			g.log.Warn("ignoring grid that already has a parent", zap.String("label", child.label))
			return noHandle, false
		}
		return child.id, true
	}
	g.tree.adopt(child)
	child.parent = g.id
	return child.id, true
}

// release drops the bookkeeping for an element that no longer occupies
// any cell
func (g *Grid) release(e Element) {
	if g.contains(e) {
		return
	}
	if g.selected == e {
		g.clearSelection()
	}
	if child, ok := e.(*Grid); ok && child.tree == g.tree && child.parent == g.id {
		if g.activeChild == child.id {
			g.activeChild = noHandle
			g.clearPending = true
		}
		child.parent = noHandle
		(&arena{}).adopt(child)
	}
}

// Element implementation: a nested grid is shown in its parent as its label

func (g *Grid) Kind() Kind { return KindContainer }

func (g *Grid) Width() int { return console.StringWidth(g.label) }

func (g *Grid) Height() int { return 1 }

func (g *Grid) RowSpan() int    { return g.rowSpan }
func (g *Grid) ColumnSpan() int { return g.columnSpan }

func (g *Grid) CanBeSelected() bool { return true }

func (g *Grid) IsSelected() bool          { return g.isSelected }
func (g *Grid) SetSelected(selected bool) { g.isSelected = selected }

// Label returns the text shown for this grid inside its parent
func (g *Grid) Label() string { return g.label }

// SetLabel replaces the label
func (g *Grid) SetLabel(label string) { g.label = label }

// Draw renders the label at (x, y) on s
func (g *Grid) Draw(s console.Surface, x, y int) {
	if g.isSelected {
		drawText(s, x, y, g.label, g.colors.HighlightForeground, g.colors.HighlightBackground)
		return
	}
	drawText(s, x, y, g.label, g.colors.Foreground, g.colors.Background)
}

// Activate runs the grid's own callback. Drilling down is done by the
// containing grid.
func (g *Grid) Activate() {
	if g.onActivate != nil {
		g.onActivate(g, g.parameter)
	}
}

func (g *Grid) String() string {
	if g.label != "" {
		return "Grid " + g.label
	}
	return fmt.Sprintf("Grid %dx%d", g.width, g.height)
}
