package bag

import (
	"testing"

	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/voxel"
)

func activePieceWithDef(id string, mat voxel.Material) piece.ActivePiece {
	def := piece.NewDefinition(id, []voxel.Int3{{0, 0, 0}})
	return piece.ActivePiece{Piece: piece.OrientedPiece{Def: def, Index: 0}, Origin: voxel.Int3{1, 1, 1}, Material: mat}
}

func TestSwapNeedsDrawWhenHoldEmpty(t *testing.T) {
	active := activePieceWithDef("I", voxel.Standard)
	lock := piece.LockState{FreezeArmed: true}
	slot := Slot{}

	res, ok := Swap(active, &lock, &slot)
	if !ok {
		t.Fatalf("expected swap to be accepted on first use")
	}
	if !res.NeedsDraw {
		t.Fatalf("expected NeedsDraw when hold slot starts empty")
	}
	if !slot.Has || slot.Def.ID != "I" {
		t.Fatalf("expected outgoing piece stashed into hold, got %+v", slot)
	}
	if !lock.HoldUsedThisDrop {
		t.Fatalf("expected HoldUsedThisDrop set after a swap")
	}
	if lock.FreezeArmed {
		t.Fatalf("expected armed-ability flags cleared by the fresh LockState")
	}
}

func TestSwapReturnsPreviousHoldPieceAtOrientationZero(t *testing.T) {
	active := activePieceWithDef("I", voxel.Standard)
	lock := piece.LockState{}
	oDef := piece.NewDefinition("O", []voxel.Int3{{0, 0, 0}})
	slot := Slot{Def: oDef, Material: voxel.Heavy, Has: true}

	res, ok := Swap(active, &lock, &slot)
	if !ok || res.NeedsDraw {
		t.Fatalf("expected a real swap when hold was occupied")
	}
	if res.NewActive.Piece.Def.ID != "O" || res.NewActive.Piece.Index != 0 {
		t.Fatalf("expected the held piece back at orientation 0, got %+v", res.NewActive.Piece)
	}
	if res.NewActive.Material != voxel.Heavy {
		t.Fatalf("expected the held piece's material preserved, got %v", res.NewActive.Material)
	}
	if slot.Def.ID != "I" {
		t.Fatalf("expected the outgoing piece now stashed in hold, got %s", slot.Def.ID)
	}
}

func TestSwapRejectedWhenAlreadyUsedThisDrop(t *testing.T) {
	active := activePieceWithDef("I", voxel.Standard)
	lock := piece.LockState{HoldUsedThisDrop: true}
	slot := Slot{}

	_, ok := Swap(active, &lock, &slot)
	if ok {
		t.Fatalf("expected a second hold this drop to be rejected")
	}
}
