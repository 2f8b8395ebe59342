// Package settle implements the connected-component gravity settler (spec
// §4.4): it finds 6-connected groups of {Solid, Porous} voxels, determines
// which are unsupported, and moves each the maximal distance gravity
// allows, recording every cell a solid enters that previously held water
// as a displaced-water source for the water equilibrium solver.
package settle
