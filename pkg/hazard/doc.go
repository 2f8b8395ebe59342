// Package hazard implements the wind scheduler (spec §4.10): a fixed
// offset/interval firing schedule that, on each firing, attempts to push
// the active piece some number of single-cell steps along a gust
// direction chosen by the level's configured direction mode.
package hazard
