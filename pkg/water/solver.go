package water

import (
	"container/heap"
	"sort"

	"github.com/mental-nv/floodline/pkg/voxel"
)

// Result is the outcome of one equilibrium solve pass.
type Result struct {
	// Overflow is N - |C| when there are more water units than fillable
	// cells; zero when every unit found a resting cell (spec §4.5 step 4).
	Overflow int
}

// node is one entry in the minimax-flood priority queue.
type node struct {
	pos   voxel.Int3
	req   int
	key   voxel.Key
	index int
}

// nodeHeap implements heap.Interface, ordered lexicographically on
// (req, gravElev, tieCoord) — the canonical order spec §4.5 requires so the
// solve is independent of traversal order.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].req != h[j].req {
		return h[i].req < h[j].req
	}
	return h[i].key.Less(h[j].key)
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	popped := old[n-1]
	old[n-1] = nil
	popped.index = -1
	*h = old[:n-1]
	return popped
}

// dedupeSources merges the current water cells with the displaced-water
// source list, dropping duplicates while preserving first-seen order.
func dedupeSources(waterCells, displaced []voxel.Int3) []voxel.Int3 {
	seen := make(map[voxel.Int3]bool, len(waterCells)+len(displaced))
	out := make([]voxel.Int3, 0, len(waterCells)+len(displaced))
	for _, lists := range [][]voxel.Int3{waterCells, displaced} {
		for _, c := range lists {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// minimaxFlood computes req[c] for every cell reachable from sources: the
// minimum over all paths of the maximum gravElev crossed along that path
// (spec §4.5 step 2). Only Empty, Water, or Porous cells are passable;
// sources that are not passable are dropped rather than seeded.
func minimaxFlood(grid *voxel.Grid, g voxel.Direction, sources []voxel.Int3) map[voxel.Int3]int {
	req := make(map[voxel.Int3]int)
	pq := &nodeHeap{}

	for _, s := range sources {
		cell, ok := grid.TryGet(s)
		if !ok || !cell.Passable() {
			continue
		}
		if _, already := req[s]; already {
			continue
		}
		elev := voxel.GravElev(s, g)
		req[s] = elev
		heap.Push(pq, &node{pos: s, req: elev, key: voxel.KeyOf(s, g)})
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*node)
		if cur.req > req[cur.pos] {
			continue // a cheaper path already relaxed this cell; stale entry
		}
		for _, off := range voxel.Neighbors6 {
			next := cur.pos.Add(off)
			cell, ok := grid.TryGet(next)
			if !ok || !cell.Passable() {
				continue
			}
			elevNext := voxel.GravElev(next, g)
			cand := cur.req
			if elevNext > cand {
				cand = elevNext
			}
			if old, exists := req[next]; !exists || cand < old {
				req[next] = cand
				heap.Push(pq, &node{pos: next, req: cand, key: voxel.KeyOf(next, g)})
			}
		}
	}
	return req
}

// fillOrder sorts a set of candidate cells ascending by (req, gravElev,
// tieCoord) for the final fill assignment (spec §4.5 step 4).
type fillOrder struct {
	cells []voxel.Int3
	req   map[voxel.Int3]int
	g     voxel.Direction
}

func (f fillOrder) Len() int      { return len(f.cells) }
func (f fillOrder) Swap(i, j int) { f.cells[i], f.cells[j] = f.cells[j], f.cells[i] }
func (f fillOrder) Less(i, j int) bool {
	a, b := f.cells[i], f.cells[j]
	if f.req[a] != f.req[b] {
		return f.req[a] < f.req[b]
	}
	return voxel.KeyOf(a, f.g).Less(voxel.KeyOf(b, f.g))
}

// Solve computes the stable distribution of water under gravity g,
// absorbing any displaced-water sources (spec §4.5). It mutates grid in
// place: every existing Water cell is cleared, and the lowest-req
// occupiable cells (up to the conserved unit count) are filled with Water.
//
// The conserved unit count N is the number of distinct positions across
// the current Water cells and the displaced-source list: a displaced
// source is a cell a solid just entered that used to hold Water, so the
// unit it held still needs a resting place even though the cell itself no
// longer carries the Water tag (spec §8's conservation invariant: total
// water units plus cumulative drained equals initial water plus total
// displaced).
func Solve(grid *voxel.Grid, g voxel.Direction, displaced []voxel.Int3) Result {
	waterCells := grid.CellsWithTag(voxel.Water)
	sources := dedupeSources(waterCells, displaced)
	n := len(sources)

	for _, c := range waterCells {
		grid.Set(c, voxel.Cell{})
	}

	req := minimaxFlood(grid, g, sources)

	candidates := make([]voxel.Int3, 0, len(req))
	for pos := range req {
		if grid.Get(pos).Occupiable() {
			candidates = append(candidates, pos)
		}
	}
	sort.Stable(fillOrder{cells: candidates, req: req, g: g})

	fillCount := n
	if fillCount > len(candidates) {
		fillCount = len(candidates)
	}
	for i := 0; i < fillCount; i++ {
		grid.Set(candidates[i], voxel.Cell{Tag: voxel.Water})
	}

	overflow := 0
	if n > len(candidates) {
		overflow = n - len(candidates)
	}
	return Result{Overflow: overflow}
}
