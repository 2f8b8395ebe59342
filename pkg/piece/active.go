package piece

import "github.com/mental-nv/floodline/pkg/voxel"

// LockDelayTicks is the tick budget a piece is granted on first grounding
// (spec §3 "LockState").
const LockDelayTicks = 12

// MaxLockResets is the number of lock-delay resets consumed before the
// 5th grounded tick commits the lock unconditionally (spec §4.2).
const MaxLockResets = 4

// ActivePiece is an OrientedPiece at a world origin, carrying an optional
// material identifier (spec §3).
type ActivePiece struct {
	Piece    OrientedPiece
	Origin   voxel.Int3
	Material voxel.Material
}

// WorldVoxels returns the world-space cells this piece currently occupies.
func (a ActivePiece) WorldVoxels() []voxel.Int3 {
	offsets := a.Piece.Offsets()
	out := make([]voxel.Int3, len(offsets))
	for i, o := range offsets {
		out[i] = a.Origin.Add(o)
	}
	return out
}

// LockState tracks per-active-piece counters across a single drop (spec §3).
type LockState struct {
	Grounded             bool
	LockDelayRemaining    int
	ResetsConsumed        int
	FreezeArmed           bool
	DrainPlacementArmed   bool
	StabilizeArmed        bool
	HoldUsedThisDrop      bool
}

// NewLockState returns a fresh LockState for a newly spawned piece.
func NewLockState() LockState {
	return LockState{}
}

// OnGrounded transitions the lock state into "grounded", starting the
// lock-delay budget the first time this is called after a drop begins
// (spec §3, §4.2). Re-grounding after the piece was briefly ungrounded
// keeps the remaining budget instead of starting a new one.
func (l *LockState) OnGrounded() {
	if !l.Grounded {
		l.Grounded = true
		if l.LockDelayRemaining <= 0 {
			l.LockDelayRemaining = LockDelayTicks
		}
	}
}

// OnUngrounded clears the grounded flag. The lock-delay counter and the
// number of consumed resets are left unchanged.
func (l *LockState) OnUngrounded() {
	l.Grounded = false
}

// ResetDelay resets the lock-delay counter after a successful move,
// rotation or tilt that leaves the piece grounded, up to MaxLockResets
// consumed resets per drop.
// The 5th grounded-after-ungrounded transition does not reset the counter
// (spec §8 boundary behavior).
func (l *LockState) ResetDelay() {
	if l.ResetsConsumed >= MaxLockResets {
		return
	}
	l.ResetsConsumed++
	l.LockDelayRemaining = LockDelayTicks
}

// TickLockDelay advances the lock-delay counter by one tick while grounded,
// returning true if the delay is now exhausted (lock must commit).
func (l *LockState) TickLockDelay() bool {
	if !l.Grounded {
		return false
	}
	l.LockDelayRemaining--
	return l.LockDelayRemaining <= 0
}
