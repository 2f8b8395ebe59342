package bag

import (
	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// Slot is the hold buffer: at most one stashed piece definition and
// material, empty until the first successful hold swap.
type Slot struct {
	Def      *piece.Definition
	Material voxel.Material
	Has      bool
}

// SwapResult is the outcome of attempting a hold swap.
type SwapResult struct {
	// NewActive is the piece that should become active, at orientation
	// index 0 with a fresh LockState, when NeedsDraw is false.
	NewActive piece.ActivePiece
	// NeedsDraw is true when the hold slot was empty: the caller must
	// draw the next active piece from the bag instead of swapping, then
	// still stash the outgoing piece into hold.
	NeedsDraw bool
}

// Swap implements hold (spec §4.7): at most once per drop. On success the
// active piece's definition and material are stashed into slot (replacing
// whatever was there), lock is reset to a fresh LockState with
// HoldUsedThisDrop set so a second hold this drop is rejected, and the
// piece previously in slot (if any) becomes active at orientation 0 with
// its own fresh LockState. Returns ok=false with no changes if hold was
// already used this drop.
func Swap(active piece.ActivePiece, lock *piece.LockState, slot *Slot) (SwapResult, bool) {
	if lock.HoldUsedThisDrop {
		return SwapResult{}, false
	}

	outgoingDef, outgoingMaterial := active.Piece.Def, active.Material
	var result SwapResult
	if slot.Has {
		result.NewActive = piece.ActivePiece{
			Piece:    piece.OrientedPiece{Def: slot.Def, Index: 0},
			Origin:   active.Origin,
			Material: slot.Material,
		}
	} else {
		result.NeedsDraw = true
	}

	*slot = Slot{Def: outgoingDef, Material: outgoingMaterial, Has: true}
	*lock = piece.LockState{HoldUsedThisDrop: true}

	return result, true
}
