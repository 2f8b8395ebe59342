package voxel

// Int3 is a signed integer 3D coordinate or vector. It is used for cell
// positions, piece offsets, and gravity/orientation vectors alike; the
// engine never distinguishes "point" from "vector" at the type level.
type Int3 struct {
	X, Y, Z int
}

// Add returns the component-wise sum of a and b.
func (a Int3) Add(b Int3) Int3 {
	return Int3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the component-wise difference a - b.
func (a Int3) Sub(b Int3) Int3 {
	return Int3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by the integer k.
func (a Int3) Scale(k int) Int3 {
	return Int3{a.X * k, a.Y * k, a.Z * k}
}

// Dot returns the integer dot product of a and b.
func (a Int3) Dot(b Int3) int {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Neg returns the additive inverse of a.
func (a Int3) Neg() Int3 {
	return Int3{-a.X, -a.Y, -a.Z}
}

// Less reports whether a sorts before b under plain (X, Y, Z) lexicographic
// order. This is distinct from the gravity-relative canonical order in
// order.go and is only used where no gravity context applies (e.g. the
// canonical sort of normalized piece offsets in pkg/piece).
func (a Int3) Less(b Int3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// Neighbors6 returns the six axis-aligned unit offsets, in a fixed order
// (±X, ±Y, ±Z). Every 6-connected traversal in the engine (solid components,
// water passability, support adjacency) iterates this exact slice so that
// traversal order is reproducible across platforms.
var Neighbors6 = [6]Int3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Neighbors26 returns every offset in the {-1,0,1}^3 cube except the zero
// offset, in a fixed (x,y,z) ascending order. Used for ScopeAdj26 freeze
// and drain effects (spec §4.6).
var Neighbors26 = func() [26]Int3 {
	var out [26]Int3
	i := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				out[i] = Int3{x, y, z}
				i++
			}
		}
	}
	return out
}()
