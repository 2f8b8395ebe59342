// Package engine ties the grid, piece, bag, resolve, world, hazard, and
// objective packages into the host-facing Simulation contract (spec §6):
// construct from a level and a seed, call Tick once per input, and inspect
// status, state, and the determinism hash at any boundary.
package engine
