package voxel

import (
	"testing"

	"pgregory.net/rapid"
)

// TestCanonicalOrderIsTotalAndDeterministic exercises spec §8's quantified
// invariant that the (gravElev, tieCoord) order is a stable total order,
// independent of input order, for any set of distinct cells under any
// gravity direction.
func TestCanonicalOrderIsTotalAndDeterministic(t *testing.T) {
	dirs := []Direction{Down, North, South, East, West}

	rapid.Check(t, func(t *rapid.T) {
		d := dirs[rapid.IntRange(0, len(dirs)-1).Draw(t, "dir")]
		n := rapid.IntRange(1, 30).Draw(t, "n")

		seen := map[Int3]bool{}
		var cells []Int3
		for len(cells) < n {
			c := Int3{
				X: rapid.IntRange(-10, 10).Draw(t, "x"),
				Y: rapid.IntRange(-10, 10).Draw(t, "y"),
				Z: rapid.IntRange(-10, 10).Draw(t, "z"),
			}
			if seen[c] {
				continue
			}
			seen[c] = true
			cells = append(cells, c)
		}

		a := append([]Int3(nil), cells...)
		b := append([]Int3(nil), cells...)
		// Reverse b before sorting to confirm input order never affects
		// the produced order.
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}

		SortCellsByKey(a, d)
		SortCellsByKey(b, d)

		if len(a) != len(b) {
			t.Fatalf("length mismatch")
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("order depends on input order at index %d: %+v vs %+v", i, a[i], b[i])
			}
		}

		// Monotonic ascending by key.
		for i := 1; i < len(a); i++ {
			if KeyOf(a[i], d).Less(KeyOf(a[i-1], d)) {
				t.Fatalf("not ascending at index %d", i)
			}
		}
	})
}
