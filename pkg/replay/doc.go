// Package replay implements the determinism hash (spec §4.9) and the
// replay JSON format (spec §6): a header plus a contiguous, per-tick input
// log that can be replayed against a level to reproduce the same hash.
package replay
