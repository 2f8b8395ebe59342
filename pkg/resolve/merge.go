package resolve

import (
	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// IceTimers maps a frozen cell's position to the resolve count at which it
// thaws back to Water (spec §4.6 step 7).
type IceTimers map[voxel.Int3]int

// positionsInScope returns the cells a freeze or drain effect covers,
// centered on center (spec §4.5 step 6, §4.6 step 2): the center cell
// itself, plus its 6- or 26-neighborhood for Adj6/Adj26.
func positionsInScope(center voxel.Int3, scope voxel.Scope) []voxel.Int3 {
	switch scope {
	case voxel.ScopeAdj6:
		out := make([]voxel.Int3, 0, 7)
		out = append(out, center)
		for _, n := range voxel.Neighbors6 {
			out = append(out, center.Add(n))
		}
		return out
	case voxel.ScopeAdj26:
		out := make([]voxel.Int3, 0, 27)
		out = append(out, center)
		for _, n := range voxel.Neighbors26 {
			out = append(out, center.Add(n))
		}
		return out
	default: // voxel.ScopeSelf
		return []voxel.Int3{center}
	}
}

// MergeResult bundles the displaced-water positions produced by
// arm-and-merge, to be fed into the settle/water phases of Run.
type MergeResult struct {
	Displaced []voxel.Int3
}

// DrainPlacementConfig is the level's drain-placement ability config,
// applied to the locking piece's pivot voxel when armed.
type DrainPlacementConfig struct {
	Rate  int
	Scope voxel.Scope
}

// FreezeConfig is the level's freeze ability config.
type FreezeConfig struct {
	Scope            voxel.Scope
	DurationResolves int
}

// LockMerge writes the locking piece's voxels into grid (arm-and-merge,
// spec §4.6 step 1) and applies any armed freeze (step 2). Write priority
// per voxel: the pivot voxel writes a Drain if drain-placement is armed;
// otherwise a Reinforced-material voxel or a stabilize-armed piece writes
// an anchored Solid; otherwise a plain Solid of the piece's material. Any
// cell that held Water immediately before the write is recorded as a
// displaced-water source.
func LockMerge(
	grid *voxel.Grid,
	p piece.ActivePiece,
	lock piece.LockState,
	drainCfg DrainPlacementConfig,
	freezeCfg FreezeConfig,
	timers IceTimers,
	resolveCounter int,
) MergeResult {
	offsets := p.Piece.Offsets()
	var displaced []voxel.Int3

	for _, off := range offsets {
		pos := p.Origin.Add(off)
		if grid.Get(pos).Tag == voxel.Water {
			displaced = append(displaced, pos)
		}

		isPivot := off == (voxel.Int3{})
		switch {
		case isPivot && lock.DrainPlacementArmed:
			cfg := voxel.DrainConfig{Rate: drainCfg.Rate, Scope: drainCfg.Scope}
			grid.Set(pos, voxel.Cell{Tag: voxel.Drain, Drain: &cfg})
		case p.Material == voxel.Reinforced || lock.StabilizeArmed:
			grid.Set(pos, voxel.Cell{Tag: voxel.Solid, Material: p.Material, Anchored: true})
		default:
			grid.Set(pos, voxel.Cell{Tag: voxel.Solid, Material: p.Material})
		}
	}

	if lock.FreezeArmed {
		frozen := make(map[voxel.Int3]bool)
		for _, off := range offsets {
			center := p.Origin.Add(off)
			for _, pos := range positionsInScope(center, freezeCfg.Scope) {
				if frozen[pos] {
					continue
				}
				cell, ok := grid.TryGet(pos)
				if !ok || cell.Tag != voxel.Water {
					continue
				}
				frozen[pos] = true
				grid.Set(pos, voxel.Cell{Tag: voxel.Ice})
				expiry := resolveCounter + freezeCfg.DurationResolves
				if existing, has := timers[pos]; !has || expiry > existing {
					timers[pos] = expiry
				}
			}
		}
	}

	return MergeResult{Displaced: displaced}
}
