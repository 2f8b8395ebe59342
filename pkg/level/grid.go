package level

import "github.com/mental-nv/floodline/pkg/voxel"

// ToGrid builds the initial voxel.Grid described by Bounds and
// InitialVoxels. Later entries for the same position overwrite earlier
// ones, matching straightforward array-order application.
func (l *Level) ToGrid() (*voxel.Grid, error) {
	g := voxel.NewGrid(voxel.Int3{X: l.Bounds.X, Y: l.Bounds.Y, Z: l.Bounds.Z})
	for _, iv := range l.InitialVoxels {
		tag, err := TagFromString(iv.Type)
		if err != nil {
			return nil, err
		}
		mat, err := MaterialFromString(iv.MaterialID)
		if err != nil {
			return nil, err
		}
		cell := voxel.Cell{Tag: tag, Material: mat}
		if iv.Drain != nil {
			scope, err := ScopeFromString(iv.Drain.Scope)
			if err != nil {
				return nil, err
			}
			cell.Drain = &voxel.DrainConfig{Rate: iv.Drain.Rate, Scope: scope}
		}
		pos := voxel.Int3{X: iv.Pos.X, Y: iv.Pos.Y, Z: iv.Pos.Z}
		if !g.InBounds(pos) {
			return nil, errOutOfBounds(pos)
		}
		g.Set(pos, cell)
	}
	return g, nil
}
