package grid

import "github.com/young1lin/gridconsole/console"

// Render draws the active grid of the drill-down chain starting at g.
//
// A pending clear resets the background and clears the target first. When a
// child grid is active, it renders instead of g. Otherwise each element is
// drawn exactly once at the origin of its first cell, however many cells its
// span covers.
func (g *Grid) Render() {
	if g.clearPending {
		g.target.SetBackground(console.Black)
		g.target.Clear()
		g.clearPending = false
	}

	if child := g.ActiveChild(); child != nil {
		child.Render()
		return
	}

	// element sizes may have changed since the last insertion
	g.layout()

	drawn := make(map[Element]struct{})
	for c := range g.cells {
		for r := range g.cells[c] {
			e := g.cells[c][r].element
			if e == nil {
				continue
			}
			if _, ok := drawn[e]; ok {
				continue
			}
			drawn[e] = struct{}{}
			e.Draw(g.target, g.columnX[c], g.rowY[r])
		}
	}
}
