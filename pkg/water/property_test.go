package water

import (
	"testing"

	"github.com/mental-nv/floodline/pkg/voxel"
	"pgregory.net/rapid"
)

func buildRandomPool(t *rapid.T) (*voxel.Grid, int) {
	size := voxel.Int3{
		X: rapid.IntRange(2, 4).Draw(t, "x"),
		Y: rapid.IntRange(2, 4).Draw(t, "y"),
		Z: rapid.IntRange(1, 3).Draw(t, "z"),
	}
	g := voxel.NewGrid(size)
	waterCount := 0
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			for z := 0; z < size.Z; z++ {
				pick := rapid.IntRange(0, 4).Draw(t, "cell")
				pos := voxel.Int3{x, y, z}
				switch pick {
				case 0:
					g.Set(pos, voxel.Cell{Tag: voxel.Water})
					waterCount++
				case 1:
					g.Set(pos, voxel.Cell{Tag: voxel.Wall})
				case 2:
					g.Set(pos, voxel.Cell{Tag: voxel.Porous})
				default:
					// leave Empty
				}
			}
		}
	}
	return g, waterCount
}

func TestSolveNeverExceedsConservedUnits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, waterBefore := buildRandomPool(t)
		result := Solve(g, voxel.Down, nil)
		after := len(g.CellsWithTag(voxel.Water))
		if after+result.Overflow != waterBefore {
			t.Fatalf("conservation violated: before=%d after=%d overflow=%d", waterBefore, after, result.Overflow)
		}
	})
}

func TestSolveNeverPlacesWaterInPorous(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, _ := buildRandomPool(t)
		Solve(g, voxel.Down, nil)
		for _, pos := range g.CellsWithTag(voxel.Porous) {
			if g.Get(pos).Tag == voxel.Water {
				t.Fatalf("Porous cell at %+v was overwritten with Water", pos)
			}
		}
	})
}

func TestSolveIsIdempotentWithNoNewSources(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g, _ := buildRandomPool(t)
		Solve(g, voxel.Down, nil)
		before := g.Clone()
		Solve(g, voxel.Down, nil)
		g.Each(func(pos voxel.Int3, cell voxel.Cell) bool {
			if cell != before.Get(pos) {
				t.Fatalf("re-solving with no new sources changed cell %+v", pos)
			}
			return true
		})
	})
}
