package grid

// layout recomputes column widths, row heights and their draw origins.
//
// Columns and rows take the size of their largest single-span element.
// An element spanning several columns that does not fit in the sum of those
// columns plus the margins between them grows the last column of its span
// by the deficit; row spans are handled the same way.
func (g *Grid) layout() {
	widths := make([]int, g.width)
	heights := make([]int, g.height)

	for c := range g.cells {
		for r := range g.cells[c] {
			if !g.isOrigin(c, r) {
				continue
			}
			e := g.cells[c][r].element
			if g.columnSpanAt(c, e) == 1 && e.Width() > widths[c] {
				widths[c] = e.Width()
			}
			if g.rowSpanAt(r, e) == 1 && e.Height() > heights[r] {
				heights[r] = e.Height()
			}
		}
	}

	for c := range g.cells {
		for r := range g.cells[c] {
			if !g.isOrigin(c, r) {
				continue
			}
			e := g.cells[c][r].element
			if span := g.columnSpanAt(c, e); span > 1 {
				growLast(widths[c:c+span], g.marginWidth, e.Width())
			}
			if span := g.rowSpanAt(r, e); span > 1 {
				growLast(heights[r:r+span], g.marginHeight, e.Height())
			}
		}
	}

	g.columnWidths = widths
	g.rowHeights = heights
	g.columnX = origins(widths, g.marginWidth)
	g.rowY = origins(heights, g.marginHeight)
}

// growLast widens the last entry of sizes so that the span covers need
func growLast(sizes []int, margin, need int) {
	available := (len(sizes) - 1) * margin
	for _, s := range sizes {
		available += s
	}
	if available < need {
		sizes[len(sizes)-1] += need - available
	}
}

// origins turns sizes into start offsets separated by margin
func origins(sizes []int, margin int) []int {
	out := make([]int, len(sizes))
	for i := 1; i < len(sizes); i++ {
		out[i] = out[i-1] + sizes[i-1] + margin
	}
	return out
}

// ColumnWidths returns a copy of the computed column widths
func (g *Grid) ColumnWidths() []int {
	return append([]int(nil), g.columnWidths...)
}

// RowHeights returns a copy of the computed row heights
func (g *Grid) RowHeights() []int {
	return append([]int(nil), g.rowHeights...)
}

// ColumnX returns a copy of the x origin of every column
func (g *Grid) ColumnX() []int {
	return append([]int(nil), g.columnX...)
}

// RowY returns a copy of the y origin of every row
func (g *Grid) RowY() []int {
	return append([]int(nil), g.rowY...)
}

// Bounds returns the extent covered by the laid-out cells
func (g *Grid) Bounds() (width, height int) {
	if n := len(g.columnX); n > 0 {
		width = g.columnX[n-1] + g.columnWidths[n-1]
	}
	if n := len(g.rowY); n > 0 {
		height = g.rowY[n-1] + g.rowHeights[n-1]
	}
	return width, height
}
