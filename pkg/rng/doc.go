// Package rng provides the deterministic, integer-only PRNG streams used by
// Floodline's gameplay decisions: piece-bag draws and hazard direction
// selection (spec §5, §9 Open Questions).
//
// # PCG32
//
// Stream implements the PCG32 algorithm (O'Neill, "PCG: A Family of Simple
// Fast Space-Efficient Statistically Good Algorithms for Random Number
// Generation"): a 64-bit linear congruential state advanced each step, with
// a 32-bit output permutation (xorshift + variable rotation). Every
// operation is unsigned 64/32-bit integer arithmetic — no float ever
// appears, matching the engine-wide non-goal against floating point in any
// gameplay path or serialized gameplay data.
//
// # Named sub-streams
//
// Gameplay reads from two independent streams, "bag" and "hazard", each
// derived from the level's master seed by:
//
//	seed_stream = H(masterSeed, streamName, configHash)[0:8]  (big-endian uint64)
//	inc_stream  = H(masterSeed, streamName, configHash)[8:16] (big-endian uint64)
//
// where H is SHA-256. This is "rng sub-stream derivation v1": pinned and
// reflected in the determinism hash version (pkg/replay). Deriving streams
// this way means adding a future named stream never perturbs the output of
// "bag" or "hazard" — each is a pure function of (masterSeed, name,
// configHash), never of stream-creation order.
//
// No gameplay decision reads any randomness outside these two streams
// (spec §3 invariant).
package rng
