package resolve

import (
	"github.com/mental-nv/floodline/pkg/settle"
	"github.com/mental-nv/floodline/pkg/voxel"
	"github.com/mental-nv/floodline/pkg/water"
)

// Counters accumulates the global resolve-driven totals owned by the
// simulation (spec §3 SimulationState).
type Counters struct {
	WaterRemovedTotal int
}

// Result summarizes one resolve pass's settle/water/drain/thaw effects.
type Result struct {
	SolidMoved      bool
	WaterOverflow   int
	ThawedPositions []voxel.Int3
}

// applyDrains implements spec §4.6 step 6's drain half: enumerate Drain
// cells in canonical order, and for each remove up to its configured rate
// of water units from its scope (also sorted canonically), incrementing
// counters.WaterRemovedTotal.
func applyDrains(grid *voxel.Grid, g voxel.Direction, counters *Counters) {
	drains := grid.CellsWithTag(voxel.Drain)
	voxel.SortCellsByKey(drains, g)

	for _, dpos := range drains {
		cell := grid.Get(dpos)
		if cell.Drain == nil || cell.Drain.Rate <= 0 {
			continue
		}
		var waterHere []voxel.Int3
		for _, pos := range positionsInScope(dpos, cell.Drain.Scope) {
			c, ok := grid.TryGet(pos)
			if ok && c.Tag == voxel.Water {
				waterHere = append(waterHere, pos)
			}
		}
		voxel.SortCellsByKey(waterHere, g)

		removed := cell.Drain.Rate
		if removed > len(waterHere) {
			removed = len(waterHere)
		}
		for i := 0; i < removed; i++ {
			grid.Set(waterHere[i], voxel.Cell{})
		}
		counters.WaterRemovedTotal += removed
	}
}

// advanceIceTimers implements spec §4.6 step 7: each timer holds the
// resolve count at which its cell thaws. Every timer whose expiry is at or
// below resolveCounter is removed, and if its cell is still Ice the cell
// thaws back to Water and is returned as a newly-added source for the
// final reflow.
func advanceIceTimers(grid *voxel.Grid, timers IceTimers, resolveCounter int) []voxel.Int3 {
	var thawed []voxel.Int3
	for pos, expiry := range timers {
		if resolveCounter < expiry {
			continue
		}
		delete(timers, pos)
		if grid.Get(pos).Tag == voxel.Ice {
			grid.Set(pos, voxel.Cell{Tag: voxel.Water})
			thawed = append(thawed, pos)
		}
	}
	return thawed
}

// Run executes resolve steps 3-7 (settle solids, settle water, re-settle
// solids, apply drains plus reflow, advance ice timers plus reflow) —
// spec §4.6. displaced seeds the first water solve. The solid-settle
// safety cap is structural: settle runs exactly twice, matching the
// spec's "bounded to 2 cycles" note.
func Run(grid *voxel.Grid, g voxel.Direction, displaced []voxel.Int3, timers IceTimers, resolveCounter int, counters *Counters) Result {
	var result Result

	first := settle.Settle(grid, g)
	result.SolidMoved = first.Moved
	firstSources := append(append([]voxel.Int3{}, displaced...), first.DisplacedWater...)
	water.Solve(grid, g, firstSources)

	second := settle.Settle(grid, g)
	result.SolidMoved = result.SolidMoved || second.Moved

	applyDrains(grid, g, counters)
	drainWR := water.Solve(grid, g, second.DisplacedWater)
	result.WaterOverflow = drainWR.Overflow

	thawed := advanceIceTimers(grid, timers, resolveCounter)
	result.ThawedPositions = thawed
	thawWR := water.Solve(grid, g, thawed)
	result.WaterOverflow = thawWR.Overflow

	return result
}

// TryRun behaves like Run, but uses the gated solid-settle variant: if any
// intended solid move would enter a cell in blocked, it aborts
// immediately and returns ok=false. Partial mutation may already have
// occurred (to the grid, to timers, and to counters); the caller — world
// tilt handling — is responsible for snapshotting all three before
// calling TryRun and restoring them on ok=false (spec §4.3, §4.4 "Gated
// variant").
func TryRun(grid *voxel.Grid, g voxel.Direction, displaced []voxel.Int3, blocked map[voxel.Int3]bool, timers IceTimers, resolveCounter int, counters *Counters) (Result, bool) {
	var result Result

	first, ok := settle.TrySettle(grid, g, blocked)
	if !ok {
		return result, false
	}
	result.SolidMoved = first.Moved
	firstSources := append(append([]voxel.Int3{}, displaced...), first.DisplacedWater...)
	water.Solve(grid, g, firstSources)

	second, ok := settle.TrySettle(grid, g, blocked)
	if !ok {
		return result, false
	}
	result.SolidMoved = result.SolidMoved || second.Moved

	applyDrains(grid, g, counters)
	drainWR := water.Solve(grid, g, second.DisplacedWater)
	result.WaterOverflow = drainWR.Overflow

	thawed := advanceIceTimers(grid, timers, resolveCounter)
	result.ThawedPositions = thawed
	thawWR := water.Solve(grid, g, thawed)
	result.WaterOverflow = thawWR.Overflow

	return result, true
}
