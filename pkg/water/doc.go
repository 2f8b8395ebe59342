// Package water implements the discrete water equilibrium solver (spec
// §4.5): a minimax flood fill that computes, for every passable cell, the
// minimum over all paths from a water or displaced-water source of the
// maximum gravity-elevation crossed along that path, then fills the
// lowest-req cells first up to the conserved unit count.
package water
