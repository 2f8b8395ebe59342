package bag

import (
	"testing"

	"github.com/mental-nv/floodline/pkg/rng"
	"github.com/mental-nv/floodline/pkg/voxel"
)

func newBagStream(seed uint64) *rng.Stream {
	return rng.NewStreams(seed, []byte("test-config")).Bag
}

func TestWeightedBagOrdersEntriesByKey(t *testing.T) {
	entries := []Entry{
		{Key: "T", Weight: 1},
		{Key: "I", Weight: 1},
		{Key: "O", Weight: 1},
	}
	w := NewWeighted(entries, newBagStream(1))
	if w.entries[0].Key != "I" || w.entries[1].Key != "O" || w.entries[2].Key != "T" {
		t.Fatalf("expected entries sorted lexicographically, got %v", w.entries)
	}
}

func TestWeightedBagNextConsumesExactlyOneDraw(t *testing.T) {
	entries := []Entry{{Key: "A", Weight: 1}, {Key: "B", Weight: 1}}
	s1 := newBagStream(42)
	s2 := newBagStream(42)
	w := NewWeighted(entries, s1)

	w.Next()
	state1, inc1 := s1.State()
	s2.Uint32()
	state2, inc2 := s2.State()
	if state1 != state2 || inc1 != inc2 {
		t.Fatalf("expected Next to consume exactly one Uint32 draw from the stream")
	}
}

func TestWeightedBagPeekNextDoesNotAdvanceRealStream(t *testing.T) {
	entries := []Entry{{Key: "A", Weight: 1}, {Key: "B", Weight: 3}}
	s := newBagStream(7)
	w := NewWeighted(entries, s)

	stateBefore, incBefore := s.State()
	peeked := w.PeekNext(5)
	stateAfter, incAfter := s.State()
	if stateBefore != stateAfter || incBefore != incAfter {
		t.Fatalf("PeekNext must not advance the real stream")
	}
	if len(peeked) != 5 {
		t.Fatalf("expected 5 peeked entries, got %d", len(peeked))
	}

	next := w.Next()
	if next.Key != peeked[0].Key {
		t.Fatalf("first real draw should match the first peeked entry: got %s want %s", next.Key, peeked[0].Key)
	}
}

func TestWeightedBagZeroWeightNeverDrawn(t *testing.T) {
	entries := []Entry{{Key: "A", Weight: 0}, {Key: "B", Weight: 1}}
	w := NewWeighted(entries, newBagStream(99))

	for i := 0; i < 50; i++ {
		if e := w.Next(); e.Key != "B" {
			t.Fatalf("zero-weight entry A should never be drawn, got %s", e.Key)
		}
	}
}

func TestWeightedBagMaterialSuffixKeysAreDistinctEntries(t *testing.T) {
	entries := []Entry{
		{Key: "I", Weight: 1, Material: voxel.Standard},
		{Key: "I:Heavy", Weight: 1, Material: voxel.Heavy},
	}
	w := NewWeighted(entries, newBagStream(3))
	if len(w.entries) != 2 {
		t.Fatalf("expected both material-suffixed keys to remain distinct entries")
	}
}
