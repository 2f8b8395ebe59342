// Package export renders a simulation's grid and outcome to the formats a
// host or debugging tool consumes: JSON snapshots and SVG cross-sections.
package export

import (
	"encoding/json"
	"os"

	"github.com/mental-nv/floodline/pkg/engine"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// CellSnapshot is one non-empty grid cell, positioned explicitly since JSON
// has no native sparse-3D-array representation.
type CellSnapshot struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Z        int    `json:"z"`
	Tag      string `json:"tag"`
	Material string `json:"material,omitempty"`
	Anchored bool   `json:"anchored,omitempty"`
}

// Snapshot is the exported view of a Simulation at a single tick boundary.
type Snapshot struct {
	Tick              int            `json:"tick"`
	Status            string         `json:"status"`
	FailedOn          string         `json:"failedOn,omitempty"`
	Gravity           string         `json:"gravity"`
	PiecesLocked      int            `json:"piecesLocked"`
	WaterRemovedTotal int            `json:"waterRemovedTotal"`
	RotationsExecuted int            `json:"rotationsExecuted"`
	DeterminismHash   string         `json:"determinismHash"`
	Bounds            [3]int         `json:"bounds"`
	Cells             []CellSnapshot `json:"cells"`
}

// BuildSnapshot captures sim's current state as a Snapshot.
func BuildSnapshot(sim *engine.Simulation) Snapshot {
	size := sim.Grid.Size()
	snap := Snapshot{
		Tick:              sim.Counters.Tick,
		Status:            sim.Status.String(),
		Gravity:           sim.Gravity.String(),
		PiecesLocked:      sim.Counters.PiecesLocked,
		WaterRemovedTotal: sim.Counters.WaterRemovedTotal,
		RotationsExecuted: sim.Counters.RotationsExecuted,
		DeterminismHash:   sim.DeterminismHash(),
		Bounds:            [3]int{size.X, size.Y, size.Z},
	}
	if sim.Status == engine.Lost {
		snap.FailedOn = sim.FailedOn.String()
	}
	for _, pos := range sim.Grid.NonEmptyCells() {
		cell := sim.Grid.Get(pos)
		cs := CellSnapshot{X: pos.X, Y: pos.Y, Z: pos.Z, Tag: cell.Tag.String(), Anchored: cell.Anchored}
		if cell.Material != voxel.NoMaterial {
			cs.Material = materialName(cell.Material)
		}
		snap.Cells = append(snap.Cells, cs)
	}
	return snap
}

func materialName(m voxel.Material) string {
	switch m {
	case voxel.Standard:
		return "Standard"
	case voxel.Heavy:
		return "Heavy"
	case voxel.Reinforced:
		return "Reinforced"
	default:
		return ""
	}
}

// JSON serializes the snapshot with 2-space indentation.
func JSON(snap Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// JSONCompact serializes the snapshot without indentation.
func JSONCompact(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// SaveJSON writes snap to path as indented JSON, 0644 permissions.
func SaveJSON(snap Snapshot, path string) error {
	data, err := JSON(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
