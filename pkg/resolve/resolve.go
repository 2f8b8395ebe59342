package resolve

import (
	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// LockResolve runs the full resolve pipeline triggered by an active piece
// locking (spec §4.6): arm-and-merge, freeze, then steps 3-7 via Run.
func LockResolve(
	grid *voxel.Grid,
	g voxel.Direction,
	p piece.ActivePiece,
	lock piece.LockState,
	drainCfg DrainPlacementConfig,
	freezeCfg FreezeConfig,
	timers IceTimers,
	resolveCounter int,
	counters *Counters,
) Result {
	merge := LockMerge(grid, p, lock, drainCfg, freezeCfg, timers, resolveCounter)
	return Run(grid, g, merge.Displaced, timers, resolveCounter, counters)
}

// ThawResolve runs the resolve pipeline triggered by an ice timer
// expiring outside of any lock or tilt: steps 3-7 only, no merge or
// freeze (spec §4.6 "Tilt Resolve and thaw-only resolves skip step 1 ...
// and step 2").
func ThawResolve(grid *voxel.Grid, g voxel.Direction, timers IceTimers, resolveCounter int, counters *Counters) Result {
	return Run(grid, g, nil, timers, resolveCounter, counters)
}
