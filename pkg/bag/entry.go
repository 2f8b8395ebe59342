package bag

import (
	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// Entry is one drawable piece: its canonical key (piece identifier,
// optionally suffixed with a material name, e.g. "I" or "I:Heavy"), its
// shape definition, and the material it spawns with.
type Entry struct {
	Key      string
	Def      *piece.Definition
	Material voxel.Material
	// Weight is only consulted by weighted bags; fixed-sequence bags
	// ignore it.
	Weight int
}

// Source draws pieces in some deterministic order (spec §4.7). PeekNext
// must never advance the draw order the caller will actually consume.
type Source interface {
	Next() Entry
	PeekNext(k int) []Entry
}
