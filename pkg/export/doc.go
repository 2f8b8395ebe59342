// Package export renders a running Simulation to host- and debug-facing
// formats: a JSON state snapshot and an SVG cross-section image.
package export
