package settle

import (
	"testing"

	"github.com/mental-nv/floodline/pkg/voxel"
)

func TestSettleSingleFallToBedrock(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 5, 1})
	g.Set(voxel.Int3{0, 0, 0}, voxel.Cell{Tag: voxel.Bedrock})
	g.Set(voxel.Int3{0, 4, 0}, voxel.Cell{Tag: voxel.Solid, Material: voxel.Standard})

	result := Settle(g, voxel.Down)
	if !result.Moved {
		t.Fatalf("expected the solid to fall")
	}
	if g.Get(voxel.Int3{0, 1, 0}).Tag != voxel.Solid {
		t.Errorf("solid should have settled to rest on bedrock at y=1")
	}
	if g.Get(voxel.Int3{0, 4, 0}).Tag != voxel.Empty {
		t.Errorf("original position should be empty after settling")
	}
}

func TestSettleAnchoredNeverMoves(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 5, 1})
	g.Set(voxel.Int3{0, 3, 0}, voxel.Cell{Tag: voxel.Solid, Anchored: true})

	Settle(g, voxel.Down)
	if g.Get(voxel.Int3{0, 3, 0}).Tag != voxel.Solid {
		t.Fatalf("anchored voxel must not move")
	}
}

func TestSettleAnchoredKeepsWholeComponentInPlace(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 5, 1})
	g.Set(voxel.Int3{0, 3, 0}, voxel.Cell{Tag: voxel.Solid, Anchored: true})
	g.Set(voxel.Int3{0, 2, 0}, voxel.Cell{Tag: voxel.Solid})

	Settle(g, voxel.Down)
	if g.Get(voxel.Int3{0, 2, 0}).Tag != voxel.Solid {
		t.Fatalf("a component containing an anchored voxel must not fall")
	}
}

func TestSettleDisplacesWater(t *testing.T) {
	// 3x3x3 box scenario from spec §8 scenario 3 (simplified to the
	// settle-only portion): Solid at (1,2,1) falls to rest on bedrock at
	// (1,0,1), displacing the water unit at (1,1,1).
	g := voxel.NewGrid(voxel.Int3{3, 3, 3})
	g.Set(voxel.Int3{1, 0, 1}, voxel.Cell{Tag: voxel.Bedrock})
	g.Set(voxel.Int3{1, 1, 1}, voxel.Cell{Tag: voxel.Water})
	g.Set(voxel.Int3{1, 2, 1}, voxel.Cell{Tag: voxel.Solid})

	result := Settle(g, voxel.Down)
	if len(result.DisplacedWater) != 1 || result.DisplacedWater[0] != (voxel.Int3{1, 1, 1}) {
		t.Fatalf("expected displaced water at {1 1 1}, got %v", result.DisplacedWater)
	}
	if g.Get(voxel.Int3{1, 1, 1}).Tag != voxel.Solid {
		t.Errorf("solid should now occupy {1 1 1}")
	}
}

func TestSettleIndependentColumnsBothRest(t *testing.T) {
	// Two independent falling columns; both fall to the floor regardless
	// of processing order, but we exercise that both converge correctly.
	g := voxel.NewGrid(voxel.Int3{3, 5, 1})
	g.Set(voxel.Int3{0, 0, 0}, voxel.Cell{Tag: voxel.Bedrock})
	g.Set(voxel.Int3{2, 0, 0}, voxel.Cell{Tag: voxel.Bedrock})
	g.Set(voxel.Int3{0, 3, 0}, voxel.Cell{Tag: voxel.Solid})
	g.Set(voxel.Int3{2, 1, 0}, voxel.Cell{Tag: voxel.Solid})

	Settle(g, voxel.Down)
	if g.Get(voxel.Int3{0, 1, 0}).Tag != voxel.Solid {
		t.Errorf("left column should rest at y=1")
	}
	if g.Get(voxel.Int3{2, 1, 0}).Tag != voxel.Solid {
		t.Errorf("right column should remain at y=1 (already resting)")
	}
}

func TestSettleDoesNotSkipOverObstacle(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 6, 1})
	g.Set(voxel.Int3{0, 0, 0}, voxel.Cell{Tag: voxel.Bedrock})
	g.Set(voxel.Int3{0, 2, 0}, voxel.Cell{Tag: voxel.Wall})
	g.Set(voxel.Int3{0, 5, 0}, voxel.Cell{Tag: voxel.Solid})

	Settle(g, voxel.Down)
	if g.Get(voxel.Int3{0, 3, 0}).Tag != voxel.Solid {
		t.Fatalf("solid should rest directly above the wall at y=3, got tag at y=3: %v, y=5: %v",
			g.Get(voxel.Int3{0, 3, 0}).Tag, g.Get(voxel.Int3{0, 5, 0}).Tag)
	}
}

func TestTrySettleAbortsOnBlockedCell(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 5, 1})
	g.Set(voxel.Int3{0, 0, 0}, voxel.Cell{Tag: voxel.Bedrock})
	g.Set(voxel.Int3{0, 3, 0}, voxel.Cell{Tag: voxel.Solid})

	blocked := map[voxel.Int3]bool{{0, 1, 0}: true}
	_, ok := TrySettle(g, voxel.Down, blocked)
	if ok {
		t.Fatalf("expected TrySettle to abort when the landing cell is blocked")
	}
}

func TestTrySettleSucceedsWhenUnblocked(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 5, 1})
	g.Set(voxel.Int3{0, 0, 0}, voxel.Cell{Tag: voxel.Bedrock})
	g.Set(voxel.Int3{0, 3, 0}, voxel.Cell{Tag: voxel.Solid})

	result, ok := TrySettle(g, voxel.Down, map[voxel.Int3]bool{{5, 5, 5}: true})
	if !ok {
		t.Fatalf("expected TrySettle to succeed when blocked set is irrelevant")
	}
	if !result.Moved {
		t.Errorf("expected the solid to move")
	}
}

func TestPorousSupportsRestingSolid(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 3, 1})
	g.Set(voxel.Int3{0, 0, 0}, voxel.Cell{Tag: voxel.Porous})
	g.Set(voxel.Int3{0, 1, 0}, voxel.Cell{Tag: voxel.Solid})

	Settle(g, voxel.Down)
	if g.Get(voxel.Int3{0, 1, 0}).Tag != voxel.Solid {
		t.Errorf("Porous should support a resting solid directly above it")
	}
}
