package grid

// handle identifies a grid inside its tree's arena
type handle int

const noHandle handle = -1

// arena is the flat table of every grid in one tree. Parent and active-child
// links are handles into it, so a grid never holds a pointer to its parent.
// Slots of grids that moved to another tree are left nil; handles are never
// reused within an arena.
type arena struct {
	grids []*Grid
}

func newArena(root *Grid) *arena {
	a := &arena{}
	root.tree = a
	root.id = 0
	a.grids = append(a.grids, root)
	return a
}

func (a *arena) get(h handle) *Grid {
	if h < 0 || int(h) >= len(a.grids) {
		return nil
	}
	return a.grids[h]
}

// subtree returns root and every grid below it, in handle order
func (a *arena) subtree(root *Grid) []*Grid {
	var members []*Grid
	for _, g := range a.grids {
		if g == nil {
			continue
		}
		for p := g; p != nil; p = a.get(p.parent) {
			if p == root {
				members = append(members, g)
				break
			}
		}
	}
	return members
}

// adopt moves root's subtree from its current arena into a, re-mapping the
// handles of every moved grid. root must not have a parent.
func (a *arena) adopt(root *Grid) {
	old := root.tree
	if old == a {
		return
	}
	members := old.subtree(root)

	remap := make(map[handle]handle, len(members))
	for _, g := range members {
		remap[g.id] = handle(len(a.grids))
		a.grids = append(a.grids, g)
	}

	translate := func(h handle) handle {
		if n, ok := remap[h]; ok {
			return n
		}
		return noHandle
	}

	for _, g := range members {
		old.grids[g.id] = nil
		g.id = remap[g.id]
		g.parent = translate(g.parent)
		g.activeChild = translate(g.activeChild)
		for c := range g.cells {
			for r := range g.cells[c] {
				if g.cells[c][r].child != noHandle {
					g.cells[c][r].child = translate(g.cells[c][r].child)
				}
			}
		}
		g.tree = a
	}
}

// size returns the number of live grids
func (a *arena) size() int {
	n := 0
	for _, g := range a.grids {
		if g != nil {
			n++
		}
	}
	return n
}
