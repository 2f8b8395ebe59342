package piece

import (
	"sort"
	"sync"

	"github.com/mental-nv/floodline/pkg/voxel"
)

// Matrix3 is a 3x3 integer rotation matrix.
type Matrix3 [3][3]int

// Apply returns M * v.
func (m Matrix3) Apply(v voxel.Int3) voxel.Int3 {
	return voxel.Int3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (m Matrix3) mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

func (m Matrix3) det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (m Matrix3) orthogonal() bool {
	// Columns of an orthogonal integer matrix with entries in {-1,0,1} are
	// pairwise-orthogonal unit vectors: each row/column dotted with itself
	// is 1, and distinct rows are orthogonal.
	rows := [3]voxel.Int3{
		{X: m[0][0], Y: m[0][1], Z: m[0][2]},
		{X: m[1][0], Y: m[1][1], Z: m[1][2]},
		{X: m[2][0], Y: m[2][1], Z: m[2][2]},
	}
	for i := 0; i < 3; i++ {
		if rows[i].Dot(rows[i]) != 1 {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if rows[i].Dot(rows[j]) != 0 {
				return false
			}
		}
	}
	return true
}

var (
	properRotationsOnce sync.Once
	properRotations     []Matrix3
)

// ProperRotations returns the 24 proper (determinant +1) cube rotation
// matrices, generated once by enumerating {-1,0,1}^9 and filtering by
// determinant and orthogonality (spec §4, Design Notes §9), then cached.
func ProperRotations() []Matrix3 {
	properRotationsOnce.Do(func() {
		vals := []int{-1, 0, 1}
		var out []Matrix3
		for _, a := range vals {
			for _, b := range vals {
				for _, c := range vals {
					for _, d := range vals {
						for _, e := range vals {
							for _, f := range vals {
								for _, g := range vals {
									for _, h := range vals {
										for _, i := range vals {
											m := Matrix3{{a, b, c}, {d, e, f}, {g, h, i}}
											if m.det() == 1 && m.orthogonal() {
												out = append(out, m)
											}
										}
									}
								}
							}
						}
					}
				}
			}
		}
		properRotations = out
	})
	return properRotations
}

// Identity is the identity rotation matrix.
var Identity = Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Canonical 90-degree rotation generators used for local piece rotation
// (spec §4.2) and world tilt (spec §4.3).
var (
	YawCW   = Matrix3{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
	YawCCW  = Matrix3{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}}
	PitchCW = Matrix3{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	PitchCCW = Matrix3{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}}
	RollCW  = Matrix3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	RollCCW = Matrix3{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}
)

// normalizeOffsets translates a voxel offset set so its minimum corner sits
// at the origin, then returns them sorted in (x,y,z) ascending order. This
// is the canonical form used to deduplicate orientations by voxel-set
// equality (spec §3).
func normalizeOffsets(offsets []voxel.Int3) []voxel.Int3 {
	if len(offsets) == 0 {
		return nil
	}
	min := offsets[0]
	for _, o := range offsets[1:] {
		if o.X < min.X {
			min.X = o.X
		}
		if o.Y < min.Y {
			min.Y = o.Y
		}
		if o.Z < min.Z {
			min.Z = o.Z
		}
	}
	out := make([]voxel.Int3, len(offsets))
	for i, o := range offsets {
		out[i] = o.Sub(min)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func offsetsEqual(a, b []voxel.Int3) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EnumerateOrientations applies every proper rotation to baseOffsets
// (translated to the pivot at (0,0,0)), normalizes each result, and
// deduplicates by sorted-normalized voxel-set equality, returning the
// distinct orientation voxel sets in the order their generating rotation
// first produced them (spec §3).
func EnumerateOrientations(baseOffsets []voxel.Int3) [][]voxel.Int3 {
	base := normalizeOffsets(baseOffsets)
	var unique [][]voxel.Int3
	for _, m := range ProperRotations() {
		rotated := make([]voxel.Int3, len(base))
		for i, o := range base {
			rotated[i] = m.Apply(o)
		}
		rotated = normalizeOffsets(rotated)
		dup := false
		for _, u := range unique {
			if offsetsEqual(u, rotated) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, rotated)
		}
	}
	return unique
}
