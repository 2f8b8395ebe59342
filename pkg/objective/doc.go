// Package objective implements objective progress tracking and fail-state
// evaluation (spec §4.8): the five integer-parameterized objective kinds,
// win-condition completion, and the fixed-order fail-state checks run at
// the end of every resolve.
package objective
