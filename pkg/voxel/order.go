package voxel

import "sort"

// Key is the total order (gravElev, tieCoord) used by every component
// where iteration order would otherwise introduce nondeterminism (spec
// §3 "Canonical ordering").
type Key struct {
	Elev       int
	U, R, F    int
}

// KeyOf computes the canonical ordering key for cell c under gravity d.
func KeyOf(c Int3, d Direction) Key {
	u, r, f := TieCoord(c, d)
	return Key{Elev: GravElev(c, d), U: u, R: r, F: f}
}

// Less implements the total order: ascending by Elev, then U, then R, then F.
func (k Key) Less(o Key) bool {
	if k.Elev != o.Elev {
		return k.Elev < o.Elev
	}
	if k.U != o.U {
		return k.U < o.U
	}
	if k.R != o.R {
		return k.R < o.R
	}
	return k.F < o.F
}

// SortCellsByKey sorts positions ascending by (gravElev, tieCoord) under
// gravity d. The sort is stable so equal-key inputs preserve their
// original relative order, which callers that pre-sort by a secondary
// criterion (e.g. drain-cell enumeration order) rely on.
func SortCellsByKey(cells []Int3, d Direction) {
	sort.SliceStable(cells, func(i, j int) bool {
		return KeyOf(cells[i], d).Less(KeyOf(cells[j], d))
	})
}
