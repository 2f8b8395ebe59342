package rng

import (
	"crypto/sha256"
	"encoding/binary"
)

// Streams bundles the two named PRNG streams a running Simulation owns.
type Streams struct {
	Bag    *Stream
	Hazard *Stream
}

// NewStreams derives the "bag" and "hazard" sub-streams from masterSeed and
// configHash, per the "rng sub-stream derivation v1" scheme (see doc.go).
func NewStreams(masterSeed uint64, configHash []byte) *Streams {
	return &Streams{
		Bag:    derive(masterSeed, "bag", configHash),
		Hazard: derive(masterSeed, "hazard", configHash),
	}
}

func derive(masterSeed uint64, name string, configHash []byte) *Stream {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(name))
	h.Write(configHash)
	sum := h.Sum(nil)
	seed := binary.BigEndian.Uint64(sum[0:8])
	seq := binary.BigEndian.Uint64(sum[8:16])
	return newStream(name, seed, seq)
}

// Snapshot captures both streams' raw state for determinism-hash
// serialization, in a fixed (bag, hazard) order.
type Snapshot struct {
	BagState, BagInc       uint64
	HazardState, HazardInc uint64
}

// Snapshot returns the current raw state of both streams.
func (s *Streams) Snapshot() Snapshot {
	bs, bi := s.Bag.State()
	hs, hi := s.Hazard.State()
	return Snapshot{BagState: bs, BagInc: bi, HazardState: hs, HazardInc: hi}
}

// Restore overwrites both streams' state from a previously captured
// Snapshot.
func (s *Streams) Restore(snap Snapshot) {
	s.Bag.SetState(snap.BagState, snap.BagInc)
	s.Hazard.SetState(snap.HazardState, snap.HazardInc)
}

// Clone returns an independent deep copy of both streams.
func (s *Streams) Clone() *Streams {
	return &Streams{Bag: s.Bag.Clone(), Hazard: s.Hazard.Clone()}
}
