package objective

import (
	"testing"

	"github.com/mental-nv/floodline/pkg/voxel"
)

func TestDrainWaterCurrentReadsMetrics(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 1, 1})
	o := Objective{Kind: DrainWater, Target: 5}
	if Current(o, g, Metrics{WaterRemovedTotal: 3}) != 3 {
		t.Fatalf("expected current to mirror WaterRemovedTotal")
	}
	if Complete(o, g, Metrics{WaterRemovedTotal: 5}) != true {
		t.Fatalf("expected DrainWater complete once removed total reaches target")
	}
}

func TestReachHeightUsesMaxNonEmptyNonWaterY(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 5, 1})
	g.Set(voxel.Int3{0, 1, 0}, voxel.Cell{Tag: voxel.Solid})
	g.Set(voxel.Int3{0, 3, 0}, voxel.Cell{Tag: voxel.Water})
	g.Set(voxel.Int3{0, 2, 0}, voxel.Cell{Tag: voxel.Bedrock})

	o := Objective{Kind: ReachHeight, Target: 2}
	if got := Current(o, g, Metrics{}); got != 2 {
		t.Fatalf("expected max non-empty non-water y of 2, got %d (water at y=3 must be excluded)", got)
	}
}

func TestReachHeightEmptyGridNeverCompletes(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 3, 1})
	o := Objective{Kind: ReachHeight, Target: 0}
	if Complete(o, g, Metrics{}) {
		t.Fatalf("expected an empty grid to never satisfy ReachHeight, even target 0")
	}
}

func TestStayUnderWeightSumsSolidMass(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{3, 1, 1})
	g.Set(voxel.Int3{0, 0, 0}, voxel.Cell{Tag: voxel.Solid, Material: voxel.Standard})
	g.Set(voxel.Int3{1, 0, 0}, voxel.Cell{Tag: voxel.Solid, Material: voxel.Heavy})
	g.Set(voxel.Int3{2, 0, 0}, voxel.Cell{Tag: voxel.Solid, Material: voxel.Reinforced})

	o := Objective{Kind: StayUnderWeight, Target: 4}
	if got := Current(o, g, Metrics{}); got != 4 {
		t.Fatalf("expected mass 1+2+1=4, got %d", got)
	}
	if !Complete(o, g, Metrics{}) {
		t.Fatalf("expected StayUnderWeight complete when mass == target")
	}

	g.Set(voxel.Int3{0, 0, 0}, voxel.Cell{Tag: voxel.Solid, Material: voxel.Heavy})
	if Complete(o, g, Metrics{}) {
		t.Fatalf("expected StayUnderWeight to fail completion once mass exceeds target")
	}
}

func TestSurviveRotationsReadsMetrics(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 1, 1})
	o := Objective{Kind: SurviveRotations, Target: 10}
	if !Complete(o, g, Metrics{RotationsExecuted: 10}) {
		t.Fatalf("expected SurviveRotations complete once rotations reach target")
	}
}

func TestBuildPlateauFindsLargest4ConnectedRegion(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{4, 2, 1})
	for x := 0; x < 3; x++ {
		g.Set(voxel.Int3{x, 1, 0}, voxel.Cell{Tag: voxel.Solid})
	}
	g.Set(voxel.Int3{3, 1, 0}, voxel.Cell{Tag: voxel.Water})

	o := Objective{Kind: BuildPlateau, Target: 3, WorldLevel: 1}
	if got := Current(o, g, Metrics{}); got != 3 {
		t.Fatalf("expected plateau size 3, got %d", got)
	}
	if !Complete(o, g, Metrics{}) {
		t.Fatalf("expected BuildPlateau complete once the largest region reaches target")
	}
}

func TestBuildPlateauIgnoresCellsAtOtherLevels(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{3, 2, 1})
	g.Set(voxel.Int3{0, 0, 0}, voxel.Cell{Tag: voxel.Bedrock})
	g.Set(voxel.Int3{1, 0, 0}, voxel.Cell{Tag: voxel.Bedrock})
	g.Set(voxel.Int3{2, 0, 0}, voxel.Cell{Tag: voxel.Bedrock})

	o := Objective{Kind: BuildPlateau, Target: 1, WorldLevel: 1}
	if got := Current(o, g, Metrics{}); got != 0 {
		t.Fatalf("expected 0 at world level 1 since all support is at level 0, got %d", got)
	}
}

func TestAllCompleteRequiresEveryObjective(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{1, 1, 1})
	objs := []Objective{
		{Kind: DrainWater, Target: 5},
		{Kind: SurviveRotations, Target: 3},
	}
	if AllComplete(objs, g, Metrics{WaterRemovedTotal: 5, RotationsExecuted: 2}) {
		t.Fatalf("expected incomplete: rotations short of target")
	}
	if !AllComplete(objs, g, Metrics{WaterRemovedTotal: 5, RotationsExecuted: 3}) {
		t.Fatalf("expected complete once both objectives are satisfied")
	}
}
