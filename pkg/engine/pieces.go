package engine

import (
	"fmt"

	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// builtinCatalog is the fixed set of named polycube shapes a level's bag
// draws from by ID. Levels never define shapes themselves (spec §6 Level
// JSON has no piece-geometry field); they only reference this catalog's
// IDs in bag.sequence / bag.weights. Shapes are the classic flat tetromino
// set, laid out in the Y=0 plane relative to their pivot.
var builtinCatalog = map[string]*piece.Definition{
	"I": piece.NewDefinition("I", []voxel.Int3{{X: -1}, {}, {X: 1}, {X: 2}}),
	"O": piece.NewDefinition("O", []voxel.Int3{{}, {X: 1}, {Z: 1}, {X: 1, Z: 1}}),
	"T": piece.NewDefinition("T", []voxel.Int3{{X: -1}, {}, {X: 1}, {Z: 1}}),
	"L": piece.NewDefinition("L", []voxel.Int3{{X: -1}, {}, {X: 1}, {X: 1, Z: 1}}),
	"J": piece.NewDefinition("J", []voxel.Int3{{X: -1}, {}, {X: 1}, {X: -1, Z: 1}}),
	"S": piece.NewDefinition("S", []voxel.Int3{{}, {X: 1}, {X: 1, Z: 1}, {X: 2, Z: 1}}),
	"Z": piece.NewDefinition("Z", []voxel.Int3{{X: 1}, {X: 2}, {Z: 1}, {X: 1, Z: 1}}),
}

// PieceDefinition looks up a catalog shape by ID.
func PieceDefinition(id string) (*piece.Definition, error) {
	def, ok := builtinCatalog[id]
	if !ok {
		return nil, fmt.Errorf("engine: unknown piece id %q", id)
	}
	return def, nil
}
