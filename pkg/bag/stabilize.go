package bag

import "github.com/mental-nv/floodline/pkg/voxel"

// DefaultStabilizeDecayRotations is the default number of subsequent
// successful world rotations a stabilize-armed lock's anchor survives
// before decaying (spec §4.7).
const DefaultStabilizeDecayRotations = 2

// StabilizeTimers tracks, per grid position, the number of further
// successful world rotations before a stabilize-anchored voxel reverts to
// a plain (non-anchored) Solid. Positions anchored by Reinforced material
// are never entered here and so never decay.
type StabilizeTimers map[voxel.Int3]int

// Arm records decay timers for the voxels a stabilize-armed piece just
// merged as anchored Solid (spec §4.7), called once at lock-commit.
func (t StabilizeTimers) Arm(positions []voxel.Int3, decayRotations int) {
	for _, p := range positions {
		t[p] = decayRotations
	}
}

// DecayOnRotation ticks every timer down by one following a successful
// world rotation, reverting any voxel whose timer reaches zero from
// anchored back to plain Solid in place (spec §4.7 "the anchor decays").
func (t StabilizeTimers) DecayOnRotation(grid *voxel.Grid) {
	for pos, remaining := range t {
		remaining--
		if remaining > 0 {
			t[pos] = remaining
			continue
		}
		delete(t, pos)
		cell := grid.Get(pos)
		if cell.Tag == voxel.Solid && cell.Anchored {
			cell.Anchored = false
			grid.Set(pos, cell)
		}
	}
}
