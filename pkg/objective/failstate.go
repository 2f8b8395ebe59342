package objective

import "github.com/mental-nv/floodline/pkg/voxel"

// FailState identifies which fail condition triggered, or NoFail.
type FailState int

const (
	NoFail FailState = iota
	Overflow
	WeightExceeded
	WaterForbidden
	NoRestingOnWater
	TiltBudgetExceeded
)

func (f FailState) String() string {
	switch f {
	case NoFail:
		return "NoFail"
	case Overflow:
		return "Overflow"
	case WeightExceeded:
		return "WeightExceeded"
	case WaterForbidden:
		return "WaterForbidden"
	case NoRestingOnWater:
		return "NoRestingOnWater"
	case TiltBudgetExceeded:
		return "TiltBudgetExceeded"
	default:
		return "Unknown"
	}
}

// FailConfig carries the level-configured thresholds the fail-state checks
// are evaluated against (spec §4.8). WaterForbidden (with its ForbiddenMinY
// threshold) and NoRestingOnWater are independent toggles: a level may
// configure either, both, or neither.
type FailConfig struct {
	MaxWorldHeight   int
	MaxMass          int
	ForbiddenMinY    int
	WaterForbidden   bool
	NoRestingOnWater bool
}

// CheckFailStates runs the fixed-order fail-state checks at the end of a
// resolve (spec §4.8): Overflow, WeightExceeded, WaterForbidden,
// NoRestingOnWater, TiltBudgetExceeded. The first match wins; tiltBudgetWentNegative
// is supplied by the caller since the counter itself is owned by pkg/world.
func CheckFailStates(grid *voxel.Grid, g voxel.Direction, cfg FailConfig, tiltBudgetWentNegative bool) FailState {
	if hasOverflow(grid, cfg.MaxWorldHeight) {
		return Overflow
	}
	if totalMass(grid) > cfg.MaxMass {
		return WeightExceeded
	}
	if cfg.WaterForbidden && hasWaterForbidden(grid, cfg.ForbiddenMinY) {
		return WaterForbidden
	}
	if cfg.NoRestingOnWater && hasNoRestingOnWater(grid, g) {
		return NoRestingOnWater
	}
	if tiltBudgetWentNegative {
		return TiltBudgetExceeded
	}
	return NoFail
}

func hasOverflow(grid *voxel.Grid, maxWorldHeight int) bool {
	found := false
	grid.Each(func(pos voxel.Int3, cell voxel.Cell) bool {
		if cell.Tag == voxel.Solid && pos.Y > maxWorldHeight {
			found = true
			return false
		}
		return true
	})
	return found
}

func hasWaterForbidden(grid *voxel.Grid, forbiddenMinY int) bool {
	found := false
	grid.Each(func(pos voxel.Int3, cell voxel.Cell) bool {
		if cell.Tag == voxel.Water && pos.Y >= forbiddenMinY {
			found = true
			return false
		}
		return true
	})
	return found
}

// hasNoRestingOnWater reports whether any non-anchored Solid voxel has
// Water in the cell one gravity-step away (spec §4.8: "whose c + g is
// Water").
func hasNoRestingOnWater(grid *voxel.Grid, g voxel.Direction) bool {
	gv := g.Vector()
	found := false
	grid.Each(func(pos voxel.Int3, cell voxel.Cell) bool {
		if cell.Tag != voxel.Solid || cell.Anchored {
			return true
		}
		below, ok := grid.TryGet(pos.Add(gv))
		if ok && below.Tag == voxel.Water {
			found = true
			return false
		}
		return true
	})
	return found
}
