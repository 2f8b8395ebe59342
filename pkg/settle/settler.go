package settle

import (
	"github.com/mental-nv/floodline/pkg/voxel"
)

// Result is the outcome of a settle pass: every cell a solid entered that
// previously held water, recorded as a displaced-water source (spec §4.4).
type Result struct {
	DisplacedWater []voxel.Int3
	Moved          bool
}

// component is a 6-connected group of {Solid, Porous} cells.
type component struct {
	cells       []voxel.Int3
	anyAnchored bool
}

func toSet(cells []voxel.Int3) map[voxel.Int3]bool {
	set := make(map[voxel.Int3]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

// findComponents scans the grid in Grid.Each order and returns
// every 6-connected group of {Solid, Porous} cells.
func findComponents(grid *voxel.Grid) []component {
	visited := map[voxel.Int3]bool{}
	var comps []component

	grid.Each(func(pos voxel.Int3, cell voxel.Cell) bool {
		if visited[pos] || !cell.IsSolidComponentMember() {
			return true
		}
		var comp component
		queue := []voxel.Int3{pos}
		visited[pos] = true
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			cellAt := grid.Get(c)
			comp.cells = append(comp.cells, c)
			if cellAt.Anchored {
				comp.anyAnchored = true
			}
			for _, n := range voxel.Neighbors6 {
				np := c.Add(n)
				if visited[np] {
					continue
				}
				nc, ok := grid.TryGet(np)
				if !ok || !nc.IsSolidComponentMember() {
					continue
				}
				visited[np] = true
				queue = append(queue, np)
			}
		}
		comps = append(comps, comp)
		return true
	})
	return comps
}

// isSupported implements spec §4.4's support rule for an entire component:
// a component containing any anchored voxel is supported outright;
// otherwise it is supported if any member cell's gravity-ward neighbor is
// support-capable, or any member cell is 6-neighbor-adjacent to an
// immovable support (Wall/Bedrock/Ice), a Drain, or an anchored voxel — in
// all cases excluding cells that belong to the component itself.
func isSupported(grid *voxel.Grid, g voxel.Direction, comp component, members map[voxel.Int3]bool) bool {
	if comp.anyAnchored {
		return true
	}
	gv := g.Vector()
	for _, c := range comp.cells {
		below := c.Add(gv)
		if !members[below] {
			if cell, ok := grid.TryGet(below); ok && cell.IsSupportCapable() {
				return true
			}
		}
		for _, n := range voxel.Neighbors6 {
			np := c.Add(n)
			if members[np] {
				continue
			}
			cell, ok := grid.TryGet(np)
			if !ok {
				continue
			}
			if cell.IsImmovableSupport() || cell.Tag == voxel.Drain || cell.Anchored {
				return true
			}
		}
	}
	return false
}

// transparentToFall reports whether a non-member cell is transparent to a
// falling component (Water or Empty — spec §4.4 drop-distance rule).
func transparentToFall(cell voxel.Cell) bool {
	return cell.Tag == voxel.Empty || cell.Tag == voxel.Water
}

// dropDistance returns the largest d >= 1 such that every translated cell
// at each offset 1..d is in bounds and either belongs to the component
// itself or is transparent (spec §4.4). Checking offsets incrementally
// from 1 guarantees the component never passes through an intervening
// obstacle to reach a clear cell beyond it.
func dropDistance(grid *voxel.Grid, g voxel.Direction, comp component, members map[voxel.Int3]bool) int {
	gv := g.Vector()
	d := 0
	for {
		next := d + 1
		ok := true
		for _, c := range comp.cells {
			t := c.Add(gv.Scale(next))
			if !grid.InBounds(t) {
				ok = false
				break
			}
			if members[t] {
				continue
			}
			if !transparentToFall(grid.Get(t)) {
				ok = false
				break
			}
		}
		if !ok {
			return d
		}
		d = next
	}
}

// minKey returns the smallest canonical-order key among a component's
// cells under gravity g, used to pick the "lowest-and-earliest" component
// to process next (spec §4.4 "Processing order").
func minKey(cells []voxel.Int3, g voxel.Direction) voxel.Key {
	best := voxel.KeyOf(cells[0], g)
	for _, c := range cells[1:] {
		k := voxel.KeyOf(c, g)
		if k.Less(best) {
			best = k
		}
	}
	return best
}

// moveComponent translates every cell of comp by delta, atomically: all
// original cells are cleared, then every translated cell is written with
// the source cell's original content. Returns every translated cell that
// held Water immediately before the move (spec §4.4).
func moveComponent(grid *voxel.Grid, comp component, delta voxel.Int3) []voxel.Int3 {
	type move struct {
		to   voxel.Int3
		cell voxel.Cell
	}
	moves := make([]move, len(comp.cells))
	var displaced []voxel.Int3
	for i, c := range comp.cells {
		to := c.Add(delta)
		if prev := grid.Get(to); prev.Tag == voxel.Water {
			displaced = append(displaced, to)
		}
		moves[i] = move{to: to, cell: grid.Get(c)}
	}
	for _, c := range comp.cells {
		grid.Set(c, voxel.Cell{})
	}
	for _, m := range moves {
		grid.Set(m.to, m.cell)
	}
	return displaced
}

// candidate bundles a movable, unsupported component with its precomputed
// sort key and drop distance.
type candidate struct {
	comp    component
	members map[voxel.Int3]bool
	key     voxel.Key
	dist    int
}

// nextCandidate re-scans the grid and returns the lowest-and-earliest
// unsupported movable component, or ok=false if none remain.
func nextCandidate(grid *voxel.Grid, g voxel.Direction) (candidate, bool) {
	comps := findComponents(grid)
	var best candidate
	found := false
	for _, comp := range comps {
		members := toSet(comp.cells)
		if isSupported(grid, g, comp, members) {
			continue
		}
		d := dropDistance(grid, g, comp, members)
		if d <= 0 {
			continue
		}
		key := minKey(comp.cells, g)
		if !found || key.Less(best.key) {
			best = candidate{comp: comp, members: members, key: key, dist: d}
			found = true
		}
	}
	return best, found
}

// safetyCap bounds the settle loop's iteration count at X*Y*Z (spec §4.4).
func safetyCap(grid *voxel.Grid) int {
	size := grid.Size()
	cap := size.X * size.Y * size.Z
	if cap <= 0 {
		cap = 1
	}
	return cap
}

// Settle moves every unsupported component along g until stable: the
// lowest-and-earliest unsupported component is found and moved its full
// drop distance, then the grid is re-scanned from scratch, repeating until
// no movable component remains or the safety cap is reached (spec §4.4).
func Settle(grid *voxel.Grid, g voxel.Direction) Result {
	var result Result
	cap := safetyCap(grid)
	for i := 0; i < cap; i++ {
		cand, ok := nextCandidate(grid, g)
		if !ok {
			break
		}
		displaced := moveComponent(grid, cand.comp, g.Vector().Scale(cand.dist))
		result.DisplacedWater = append(result.DisplacedWater, displaced...)
		result.Moved = true
	}
	return result
}

// TrySettle behaves like Settle, but if the intended move of the chosen
// component would enter a cell in blocked (and that cell does not belong
// to the moving component), it aborts immediately and reports ok=false.
// Partial progress may have occurred before the abort; the caller is
// responsible for snapshotting the grid beforehand (spec §4.4 "Gated
// variant").
func TrySettle(grid *voxel.Grid, g voxel.Direction, blocked map[voxel.Int3]bool) (Result, bool) {
	var result Result
	iterCap := safetyCap(grid)
	gv := g.Vector()
	for i := 0; i < iterCap; i++ {
		cand, ok := nextCandidate(grid, g)
		if !ok {
			break
		}
		for step := 1; step <= cand.dist; step++ {
			for _, c := range cand.comp.cells {
				t := c.Add(gv.Scale(step))
				if cand.members[t] {
					continue
				}
				if blocked[t] {
					return result, false
				}
			}
		}
		displaced := moveComponent(grid, cand.comp, gv.Scale(cand.dist))
		result.DisplacedWater = append(result.DisplacedWater, displaced...)
		result.Moved = true
	}
	return result, true
}
