// Package voxel provides the grid and coordinate primitives shared by every
// Floodline subsystem: integer 3D coordinates, the occupancy model for a
// single cell, the dense bounded grid that stores them, and the canonical
// gravity-relative ordering used everywhere iteration order would otherwise
// introduce nondeterminism.
//
// No float ever enters this package. Every comparator, every projection, and
// every stored field is an integer, matching the engine-wide rule that
// gameplay state and gameplay math stay integer-only.
package voxel
