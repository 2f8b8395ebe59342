// Package world implements the world-rotation (tilt) handler (spec §4.3):
// validating a tilt request against the level's rotation policy, rotating
// the gravity vector via one of the canonical 90-degree matrices, and
// running a gated Tilt Resolve that rolls the whole attempt back if any
// settling solid would need to displace the active piece.
package world
