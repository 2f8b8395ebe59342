package voxel

import "fmt"

// Grid is a dense 3D array of Cell indexed by Int3, with bounds (X, Y, Z)
// from the level (spec §4.1).
type Grid struct {
	bounds Int3
	cells  []Cell
}

// NewGrid creates an all-Empty grid of the given size. Panics if any
// dimension is non-positive — constructing a degenerate grid is a
// programmer error, not a recoverable runtime condition.
func NewGrid(size Int3) *Grid {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		panic(fmt.Sprintf("voxel: grid size must be positive in all dimensions, got %+v", size))
	}
	return &Grid{
		bounds: size,
		cells:  make([]Cell, size.X*size.Y*size.Z),
	}
}

// Size returns the grid's (X, Y, Z) bounds.
func (g *Grid) Size() Int3 {
	return g.bounds
}

// InBounds reports whether c is within [0,X) x [0,Y) x [0,Z).
func (g *Grid) InBounds(c Int3) bool {
	return c.X >= 0 && c.X < g.bounds.X &&
		c.Y >= 0 && c.Y < g.bounds.Y &&
		c.Z >= 0 && c.Z < g.bounds.Z
}

func (g *Grid) index(c Int3) int {
	return (c.Y*g.bounds.Z+c.Z)*g.bounds.X + c.X
}

// Get returns the cell at c. Out-of-bounds access is a programmer error
// (spec §7 "runtime state errors") and panics.
func (g *Grid) Get(c Int3) Cell {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("voxel: out-of-bounds Get at %+v (bounds %+v)", c, g.bounds))
	}
	return g.cells[g.index(c)]
}

// Set writes v at c. Out-of-bounds access is a programmer error and panics.
func (g *Grid) Set(c Int3, v Cell) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("voxel: out-of-bounds Set at %+v (bounds %+v)", c, g.bounds))
	}
	g.cells[g.index(c)] = v
}

// TryGet returns the cell at c and true, or a zero Cell and false if c is
// out of bounds — the sentinel-free optional form spec §4.1 requires for
// boundary-tolerant callers (movement validity, settler drop-distance
// scans, water passability).
func (g *Grid) TryGet(c Int3) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.cells[g.index(c)], true
}

// Clone returns a deep copy of the grid. Used for tilt snapshot/rollback
// (spec §4.3, §5): the cost is linear in cell count, acceptable because
// tilts are rare and discrete.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		bounds: g.bounds,
		cells:  make([]Cell, len(g.cells)),
	}
	copy(cp.cells, g.cells)
	return cp
}

// CopyFrom overwrites g's contents with src's, in place. src must have the
// same bounds. Used to restore a snapshot without reallocating.
func (g *Grid) CopyFrom(src *Grid) {
	if g.bounds != src.bounds {
		panic(fmt.Sprintf("voxel: CopyFrom bounds mismatch: %+v vs %+v", g.bounds, src.bounds))
	}
	copy(g.cells, src.cells)
}

// Each calls fn for every in-bounds position with y outermost, then z,
// then x innermost (x varies fastest). This is not the x-major order of
// Int3.Less. Iteration stops early if fn returns false.
func (g *Grid) Each(fn func(pos Int3, cell Cell) bool) {
	for y := 0; y < g.bounds.Y; y++ {
		for z := 0; z < g.bounds.Z; z++ {
			for x := 0; x < g.bounds.X; x++ {
				pos := Int3{x, y, z}
				if !fn(pos, g.cells[g.index(pos)]) {
					return
				}
			}
		}
	}
}

// NonEmptyCells returns every non-Empty cell's position, in Each order.
func (g *Grid) NonEmptyCells() []Int3 {
	var out []Int3
	g.Each(func(pos Int3, cell Cell) bool {
		if cell.Tag != Empty {
			out = append(out, pos)
		}
		return true
	})
	return out
}

// CellsWithTag returns every cell position holding tag, in Each order.
func (g *Grid) CellsWithTag(tag Tag) []Int3 {
	var out []Int3
	g.Each(func(pos Int3, cell Cell) bool {
		if cell.Tag == tag {
			out = append(out, pos)
		}
		return true
	})
	return out
}
