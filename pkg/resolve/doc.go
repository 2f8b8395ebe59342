// Package resolve implements the atomic multi-phase reconciliation run
// after a piece lock, a successful world rotation, or an ice timer
// expiring (spec §4.6): arm-and-merge, freeze, settle solids, settle
// water, re-settle solids, apply drains, reflow water, and advance ice
// timers.
package resolve
