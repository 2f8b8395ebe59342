package objective

import "github.com/mental-nv/floodline/pkg/voxel"

// Kind identifies one of the five objective types (spec §4.8). All are
// integer-parameterized.
type Kind int

const (
	DrainWater Kind = iota
	ReachHeight
	BuildPlateau
	StayUnderWeight
	SurviveRotations
)

// Objective is one integer-parameterized win condition. WorldLevel is only
// consulted by BuildPlateau.
type Objective struct {
	Kind       Kind
	Target     int
	WorldLevel int
}

// Metrics bundles the cumulative counters an objective's progress may
// depend on, beyond what's directly readable from the grid.
type Metrics struct {
	WaterRemovedTotal int
	RotationsExecuted int
}

// noVoxelHeight is returned by ReachHeight's current() when the grid holds
// no non-Empty, non-Water voxel at all; always short of any non-negative
// target.
const noVoxelHeight = -1

// Current computes an objective's progress value (spec §4.8).
func Current(o Objective, grid *voxel.Grid, m Metrics) int {
	switch o.Kind {
	case DrainWater:
		return m.WaterRemovedTotal
	case ReachHeight:
		return maxHeight(grid)
	case BuildPlateau:
		return largestPlateau(grid, o.WorldLevel)
	case StayUnderWeight:
		return totalMass(grid)
	case SurviveRotations:
		return m.RotationsExecuted
	default:
		return 0
	}
}

// Complete reports whether o's progress satisfies its target: current >=
// target for every kind except StayUnderWeight, which instead requires
// current <= target (spec §4.8).
func Complete(o Objective, grid *voxel.Grid, m Metrics) bool {
	cur := Current(o, grid, m)
	if o.Kind == StayUnderWeight {
		return cur <= o.Target
	}
	return cur >= o.Target
}

// AllComplete reports whether every objective in the set is complete. The
// simulation transitions to Won the first tick this holds with no fail
// state triggered (spec §4.8).
func AllComplete(objectives []Objective, grid *voxel.Grid, m Metrics) bool {
	for _, o := range objectives {
		if !Complete(o, grid, m) {
			return false
		}
	}
	return true
}

func maxHeight(grid *voxel.Grid) int {
	best := noVoxelHeight
	grid.Each(func(pos voxel.Int3, cell voxel.Cell) bool {
		if cell.Tag != voxel.Empty && cell.Tag != voxel.Water && pos.Y > best {
			best = pos.Y
		}
		return true
	})
	return best
}

func totalMass(grid *voxel.Grid) int {
	total := 0
	grid.Each(func(_ voxel.Int3, cell voxel.Cell) bool {
		if cell.Tag == voxel.Solid {
			total += cell.Material.Mass()
		}
		return true
	})
	return total
}

// largestPlateau returns the size of the largest 4-connected (X,Z) region
// of support-capable cells at the given Y level (spec §4.8 BuildPlateau).
func largestPlateau(grid *voxel.Grid, worldLevel int) int {
	size := grid.Size()
	visited := make(map[voxel.Int3]bool)
	best := 0

	for z := 0; z < size.Z; z++ {
		for x := 0; x < size.X; x++ {
			start := voxel.Int3{X: x, Y: worldLevel, Z: z}
			if visited[start] {
				continue
			}
			cell, ok := grid.TryGet(start)
			if !ok || !cell.IsSupportCapable() {
				visited[start] = true
				continue
			}
			count := floodPlateau(grid, worldLevel, start, visited)
			if count > best {
				best = count
			}
		}
	}
	return best
}

func floodPlateau(grid *voxel.Grid, worldLevel int, start voxel.Int3, visited map[voxel.Int3]bool) int {
	offsets := []voxel.Int3{{X: 1}, {X: -1}, {Z: 1}, {Z: -1}}
	stack := []voxel.Int3{start}
	visited[start] = true
	count := 0

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		for _, off := range offsets {
			next := cur.Add(off)
			next.Y = worldLevel
			if visited[next] {
				continue
			}
			visited[next] = true
			cell, ok := grid.TryGet(next)
			if ok && cell.IsSupportCapable() {
				stack = append(stack, next)
			}
		}
	}
	return count
}
