package bag

import (
	"testing"

	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/voxel"
)

func defEntry(id string, mat voxel.Material) Entry {
	return Entry{Key: id, Def: piece.NewDefinition(id, []voxel.Int3{{0, 0, 0}}), Material: mat}
}

func TestFixedBagWrapsOnOverflow(t *testing.T) {
	seq := []Entry{defEntry("I", voxel.Standard), defEntry("O", voxel.Standard), defEntry("T", voxel.Standard)}
	f := NewFixed(seq)

	var drawn []string
	for i := 0; i < 7; i++ {
		drawn = append(drawn, f.Next().Key)
	}
	want := []string{"I", "O", "T", "I", "O", "T", "I"}
	for i, k := range want {
		if drawn[i] != k {
			t.Fatalf("draw %d: want %s got %s", i, k, drawn[i])
		}
	}
}

func TestFixedBagPeekNextDoesNotAdvance(t *testing.T) {
	seq := []Entry{defEntry("I", voxel.Standard), defEntry("O", voxel.Standard)}
	f := NewFixed(seq)

	peeked := f.PeekNext(3)
	if peeked[0].Key != "I" || peeked[1].Key != "O" || peeked[2].Key != "I" {
		t.Fatalf("unexpected peek sequence: %v", peeked)
	}
	if f.Next().Key != "I" {
		t.Fatalf("peek must not advance the cursor")
	}
}
