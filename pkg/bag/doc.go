// Package bag implements the piece supply (spec §4.7): fixed-sequence and
// weighted draw bags, the hold slot, and the freeze/drain-placement/
// stabilize abilities gated by per-run integer charges.
package bag
