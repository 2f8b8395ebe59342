// Package piece models polycube pieces: their deduplicated orientation set
// (spec §3 "OrientedPiece"), the active piece in play, its per-drop lock
// state, and the movement/rotation/collision rules that advance it one tick
// at a time (spec §4.2).
package piece
