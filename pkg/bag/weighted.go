package bag

import (
	"sort"

	"github.com/mental-nv/floodline/pkg/rng"
)

// Weighted is a bag that draws from an integer-weighted set keyed by piece
// identifier with an optional material suffix (spec §4.7). Entries are
// pinned in ascending lexicographic key order once at construction, so a
// weighted draw always iterates weights in the same stable order regardless
// of the order the level file listed them in.
type Weighted struct {
	entries []Entry
	stream  *rng.Stream
}

// NewWeighted builds a Weighted bag. entries is sorted by Key; stream is
// the "bag" PRNG sub-stream the level's Streams owns.
func NewWeighted(entries []Entry, stream *rng.Stream) *Weighted {
	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return &Weighted{entries: sorted, stream: stream}
}

func (w *Weighted) weights() []int {
	out := make([]int, len(w.entries))
	for i, e := range w.entries {
		out[i] = e.Weight
	}
	return out
}

// Next draws one entry, consuming exactly one PRNG call (spec §4.7).
func (w *Weighted) Next() Entry {
	idx := w.stream.WeightedChoice(w.weights())
	if idx < 0 {
		idx = 0
	}
	return w.entries[idx]
}

// PeekNext previews the next k draws on a cloned stream snapshot, leaving
// the real stream unadvanced (spec §4.7).
func (w *Weighted) PeekNext(k int) []Entry {
	clone := w.stream.Clone()
	weights := w.weights()
	out := make([]Entry, k)
	for i := 0; i < k; i++ {
		idx := clone.WeightedChoice(weights)
		if idx < 0 {
			idx = 0
		}
		out[i] = w.entries[idx]
	}
	return out
}
