package piece

import "github.com/mental-nv/floodline/pkg/voxel"

// KickOffsets is the exact kick-test order for local rotation (spec §4.2).
// The first valid placement wins; if none are valid the rotation is
// rejected with no side effects.
var KickOffsets = []voxel.Int3{
	{0, 0, 0},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 0, 1},
	{0, 0, -1},
	{0, 1, 0},
	{1, 0, 1},
	{1, 0, -1},
	{-1, 0, 1},
	{-1, 0, -1},
}

// Valid reports whether placing piece at its current origin/orientation is
// legal: every cell must be in bounds and Empty or Water (water is
// passable for the active piece; spec §4.2).
func Valid(grid *voxel.Grid, p ActivePiece) bool {
	for _, v := range p.WorldVoxels() {
		cell, ok := grid.TryGet(v)
		if !ok {
			return false
		}
		if cell.Tag != voxel.Empty && cell.Tag != voxel.Water {
			return false
		}
	}
	return true
}

// TryTranslate attempts to move p by delta, atomically: either every cell
// of the result is valid or the move is rejected entirely with p
// unchanged (spec §4.2 "partial moves never occur").
func TryTranslate(grid *voxel.Grid, p ActivePiece, delta voxel.Int3) (ActivePiece, bool) {
	candidate := p
	candidate.Origin = p.Origin.Add(delta)
	if !Valid(grid, candidate) {
		return p, false
	}
	return candidate, true
}

// CanAdvance reports whether p can move one cell along g without leaving
// bounds or colliding with a non-{Empty, Water} cell (spec §4.2 "Lock
// condition").
func CanAdvance(grid *voxel.Grid, p ActivePiece, g voxel.Int3) bool {
	candidate := p
	candidate.Origin = p.Origin.Add(g)
	return Valid(grid, candidate)
}

// TryRotate places rotated at p's origin plus each kick offset in
// KickOffsets order and returns the first valid placement; if none is
// valid it returns p unchanged and false. If rotation is
// disallowed by the level's configured axes, the caller must not invoke
// this function for that axis in the first place.
//
// rotated is the fully-formed OrientedPiece after applying matrix to the
// current orientation's voxel offsets (see RotateOrientation); this
// function only resolves kick placement, not the orientation algebra.
func TryRotate(grid *voxel.Grid, p ActivePiece, rotated OrientedPiece) (ActivePiece, bool) {
	for _, kick := range KickOffsets {
		candidate := ActivePiece{
			Piece:    rotated,
			Origin:   p.Origin.Add(kick),
			Material: p.Material,
		}
		if Valid(grid, candidate) {
			return candidate, true
		}
	}
	return p, false
}

// RotateOrientation applies matrix to p's current voxel offsets and
// returns the OrientedPiece whose orientation's voxel set matches the
// rotated result. The matrix is applied at call time; the result is then
// normalized and matched by voxel-set equality against the orientations
// EnumerateOrientations precomputed, to recover the orientation index.
func RotateOrientation(p OrientedPiece, matrix Matrix3) OrientedPiece {
	current := p.Offsets()
	rotated := make([]voxel.Int3, len(current))
	for i, o := range current {
		rotated[i] = matrix.Apply(o)
	}
	rotated = normalizeOffsets(rotated)
	for i, orientation := range p.Def.Orientations {
		if offsetsEqual(orientation, rotated) {
			return OrientedPiece{Def: p.Def, Index: i}
		}
	}
	// The orientation set is closed under the 24 proper rotations by
	// construction (EnumerateOrientations applies all of them), so a
	// rotated shape must match one of the precomputed entries.
	panic("piece: rotated orientation not found in precomputed set")
}

// AdvanceGravityStep attempts one gravity-directed step. It returns the
// advanced piece and true if the step succeeded, or p unchanged and false
// if the piece cannot advance (the caller should treat this as a grounded
// tick).
func AdvanceGravityStep(grid *voxel.Grid, p ActivePiece, g voxel.Int3) (ActivePiece, bool) {
	return TryTranslate(grid, p, g)
}

// HardDrop repeats the g-step until placement is invalid, returning the
// final resting piece and the number of cells it descended.
func HardDrop(grid *voxel.Grid, p ActivePiece, g voxel.Int3) (ActivePiece, int) {
	cur := p
	steps := 0
	for {
		next, ok := TryTranslate(grid, cur, g)
		if !ok {
			return cur, steps
		}
		cur = next
		steps++
	}
}
