package voxel

import "testing"

func TestGridGetSetTryGet(t *testing.T) {
	g := NewGrid(Int3{4, 2, 1})
	pos := Int3{1, 0, 0}
	g.Set(pos, Cell{Tag: Bedrock})

	if got := g.Get(pos); got.Tag != Bedrock {
		t.Errorf("Get = %+v, want Bedrock", got)
	}
	if c, ok := g.TryGet(pos); !ok || c.Tag != Bedrock {
		t.Errorf("TryGet = (%+v, %v), want (Bedrock, true)", c, ok)
	}
	if _, ok := g.TryGet(Int3{10, 10, 10}); ok {
		t.Errorf("TryGet out-of-bounds should report ok=false")
	}
	if g.InBounds(Int3{4, 0, 0}) {
		t.Errorf("InBounds should exclude the upper boundary")
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewGrid(Int3{2, 2, 2})
	defer func() {
		if recover() == nil {
			t.Errorf("Get out of bounds should panic")
		}
	}()
	g.Get(Int3{5, 5, 5})
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(Int3{2, 2, 2})
	g.Set(Int3{0, 0, 0}, Cell{Tag: Solid})

	clone := g.Clone()
	clone.Set(Int3{0, 0, 0}, Cell{Tag: Empty})

	if g.Get(Int3{0, 0, 0}).Tag != Solid {
		t.Errorf("mutating a clone must not affect the original")
	}
	if clone.Get(Int3{0, 0, 0}).Tag != Empty {
		t.Errorf("clone mutation did not apply")
	}
}

func TestGridCopyFromRestoresSnapshot(t *testing.T) {
	g := NewGrid(Int3{2, 2, 2})
	snapshot := g.Clone()

	g.Set(Int3{1, 1, 1}, Cell{Tag: Wall})
	g.CopyFrom(snapshot)

	if g.Get(Int3{1, 1, 1}).Tag != Empty {
		t.Errorf("CopyFrom did not restore the snapshot")
	}
}

func TestGridEachOrderVariesXFastest(t *testing.T) {
	g := NewGrid(Int3{2, 2, 2})
	var seen []Int3
	g.Each(func(pos Int3, _ Cell) bool {
		seen = append(seen, pos)
		return true
	})

	for i := 1; i < len(seen); i++ {
		prevKey := seen[i-1].Y*100 + seen[i-1].Z*10 + seen[i-1].X
		key := seen[i].Y*100 + seen[i].Z*10 + seen[i].X
		if key <= prevKey {
			t.Errorf("Each not in y-then-z-then-x order at index %d: %+v then %+v", i, seen[i-1], seen[i])
		}
	}
}

func TestNonEmptyCellsAndCellsWithTag(t *testing.T) {
	g := NewGrid(Int3{3, 1, 1})
	g.Set(Int3{0, 0, 0}, Cell{Tag: Water})
	g.Set(Int3{2, 0, 0}, Cell{Tag: Bedrock})

	nonEmpty := g.NonEmptyCells()
	if len(nonEmpty) != 2 {
		t.Fatalf("NonEmptyCells = %v, want 2 entries", nonEmpty)
	}

	water := g.CellsWithTag(Water)
	if len(water) != 1 || water[0] != (Int3{0, 0, 0}) {
		t.Errorf("CellsWithTag(Water) = %v, want [{0 0 0}]", water)
	}
}
