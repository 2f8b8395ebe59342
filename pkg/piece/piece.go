package piece

import "github.com/mental-nv/floodline/pkg/voxel"

// Definition is a piece's identity plus its deduplicated orientation set,
// generated once by EnumerateOrientations and indexed thereafter (spec §3).
type Definition struct {
	ID           string
	Orientations [][]voxel.Int3
}

// NewDefinition builds a Definition from a base voxel-offset shape.
func NewDefinition(id string, baseOffsets []voxel.Int3) *Definition {
	return &Definition{
		ID:           id,
		Orientations: EnumerateOrientations(baseOffsets),
	}
}

// OrientedPiece is a piece identifier, a reference to its Definition, and
// an orientation index into the Definition's deduplicated orientation set
// (spec §3).
type OrientedPiece struct {
	Def   *Definition
	Index int
}

// Offsets returns the voxel offsets for the current orientation, relative
// to the pivot at (0,0,0).
func (p OrientedPiece) Offsets() []voxel.Int3 {
	return p.Def.Orientations[p.Index]
}

// WithOrientation returns a copy of p at the given orientation index,
// wrapping modulo the orientation count.
func (p OrientedPiece) WithOrientation(index int) OrientedPiece {
	n := len(p.Def.Orientations)
	idx := index % n
	if idx < 0 {
		idx += n
	}
	return OrientedPiece{Def: p.Def, Index: idx}
}

// NumOrientations returns the number of distinct orientations for p's piece.
func (p OrientedPiece) NumOrientations() int {
	return len(p.Def.Orientations)
}
