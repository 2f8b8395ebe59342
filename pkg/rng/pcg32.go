package rng

const (
	pcgMultiplier uint64 = 6364136223846793005
)

// Stream is a single PCG32 generator: a named, deterministically-seeded
// sub-stream of a level's master seed.
type Stream struct {
	name  string
	state uint64
	inc   uint64
}

// newStream constructs a PCG32 stream from an explicit (seed, seq) pair,
// following the reference initialization sequence.
func newStream(name string, seed, seq uint64) *Stream {
	s := &Stream{name: name, inc: (seq << 1) | 1}
	s.step()
	s.state += seed
	s.step()
	return s
}

func (s *Stream) step() {
	s.state = s.state*pcgMultiplier + s.inc
}

// Uint32 returns the next pseudo-random 32-bit value in the stream.
func (s *Stream) Uint32() uint32 {
	old := s.state
	s.step()
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Uint64 returns the next 64 pseudo-random bits, assembled from two Uint32
// draws (high word first).
func (s *Stream) Uint64() uint64 {
	hi := uint64(s.Uint32())
	lo := uint64(s.Uint32())
	return hi<<32 | lo
}

// IntN returns a pseudo-random integer in [0, n). Panics if n <= 0.
// Uses Lemire's bounded-rejection method to avoid modulo bias.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		panic("rng: IntN argument must be positive")
	}
	bound := uint32(n)
	// threshold is 2^32 mod bound. The result is the high 32 bits of
	// v*bound; a draw is rejected when the low 32 bits fall below
	// threshold, which leaves the same number of accepted draws for every
	// result.
	threshold := -bound % bound
	for {
		m := uint64(s.Uint32()) * uint64(bound)
		if uint32(m) >= threshold {
			return int(m >> 32)
		}
	}
}

// IntRange returns a pseudo-random integer in [lo, hi] inclusive. Panics if
// lo > hi.
func (s *Stream) IntRange(lo, hi int) int {
	if lo > hi {
		panic("rng: IntRange lo must be <= hi")
	}
	if lo == hi {
		return lo
	}
	return lo + s.IntN(hi-lo+1)
}

// Bool returns a pseudo-random boolean.
func (s *Stream) Bool() bool {
	return s.Uint32()&1 == 1
}

// WeightedChoice selects an index from non-negative integer weights,
// consuming exactly one draw from the stream regardless of the number of
// weights (spec §4.7: "Weighted draws consume one PRNG call per draw").
// Returns -1 if weights is empty or every weight is zero. Iteration must
// be performed by the caller in canonical (lexicographic) key order before
// calling this, per spec §4.7.
func (s *Stream) WeightedChoice(weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0
	for _, w := range weights {
		if w < 0 {
			panic("rng: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}
	target := s.IntN(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Name returns the stream's name ("bag" or "hazard").
func (s *Stream) Name() string {
	return s.name
}

// Clone returns an independent copy of the stream's current state. Used by
// bag.PeekNext, which must not advance the real stream (spec §4.7).
func (s *Stream) Clone() *Stream {
	return &Stream{name: s.name, state: s.state, inc: s.inc}
}

// State returns the stream's raw (state, inc) pair, for determinism-hash
// serialization (spec §4.9 step 5).
func (s *Stream) State() (state, inc uint64) {
	return s.state, s.inc
}

// SetState restores a previously captured (state, inc) pair. Used when
// reconstructing a Simulation from a snapshot.
func (s *Stream) SetState(state, inc uint64) {
	s.state = state
	s.inc = inc
}
