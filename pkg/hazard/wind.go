package hazard

import (
	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/rng"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// DirectionMode selects how a gust's direction is chosen (spec §4.10).
type DirectionMode int

const (
	AlternateEW DirectionMode = iota
	Fixed
	RandomSeeded
)

// Config is a level's wind hazard configuration.
type Config struct {
	// Offset is the tick of the first firing; negative means "derive one
	// draw from the hazard-PRNG stream in [0, Interval)" (spec §4.10).
	Offset         int
	Interval       int
	Mode           DirectionMode
	FixedDirection voxel.Direction
	// RandomSet is the candidate direction set for RandomSeeded; defaults
	// to {East, West} when empty.
	RandomSet    []voxel.Direction
	PushStrength int
}

// Scheduler tracks the wind hazard's resolved firing offset and
// cumulative gust count across a simulation run.
type Scheduler struct {
	cfg         Config
	offset      int
	gustCounter int
}

// NewScheduler resolves cfg.Offset (deriving it from hazardStream if
// negative) and returns a fresh Scheduler.
func NewScheduler(cfg Config, hazardStream *rng.Stream) *Scheduler {
	offset := cfg.Offset
	if offset < 0 {
		offset = hazardStream.IntN(cfg.Interval)
	}
	return &Scheduler{cfg: cfg, offset: offset}
}

// Offset returns the scheduler's resolved firing offset.
func (s *Scheduler) Offset() int { return s.offset }

// GustCount returns the number of gusts fired so far.
func (s *Scheduler) GustCount() int { return s.gustCounter }

func (s *Scheduler) firesAt(tick int) bool {
	if tick < s.offset {
		return false
	}
	return (tick-s.offset)%s.cfg.Interval == 0
}

func (s *Scheduler) direction(hazardStream *rng.Stream) voxel.Direction {
	switch s.cfg.Mode {
	case Fixed:
		return s.cfg.FixedDirection
	case RandomSeeded:
		set := s.cfg.RandomSet
		if len(set) == 0 {
			set = []voxel.Direction{voxel.East, voxel.West}
		}
		return set[hazardStream.IntN(len(set))]
	default: // AlternateEW
		if s.gustCounter%2 == 0 {
			return voxel.East
		}
		return voxel.West
	}
}

func massFactor(m voxel.Material) int {
	if m == voxel.Heavy {
		return 2
	}
	return 1
}

// Result summarizes the outcome of one call to Fire.
type Result struct {
	Fired       bool
	Direction   voxel.Direction
	CellsPushed int
}

// Fire checks whether tick is a scheduled firing and, if so, resolves a
// gust direction and pushes the active piece's origin up to
// floor(push_strength / mass_factor) single-cell steps along it, stopping
// at the first step that would make any of the piece's voxels leave
// bounds or enter any cell other than Empty or Water — Water does not
// block (spec §4.10). A scheduled firing always advances the gust counter, even
// with no active piece to push.
func Fire(s *Scheduler, tick int, grid *voxel.Grid, active *piece.ActivePiece, hazardStream *rng.Stream) Result {
	if !s.firesAt(tick) {
		return Result{}
	}
	dir := s.direction(hazardStream)
	s.gustCounter++

	if active == nil {
		return Result{Fired: true, Direction: dir}
	}

	effectivePush := s.cfg.PushStrength / massFactor(active.Material)
	gv := dir.Vector()
	pushed := 0
	for i := 0; i < effectivePush; i++ {
		candidate := active.Origin.Add(gv)
		if !validPlacement(grid, *active, candidate) {
			break
		}
		active.Origin = candidate
		pushed++
	}
	return Result{Fired: true, Direction: dir, CellsPushed: pushed}
}

func validPlacement(grid *voxel.Grid, p piece.ActivePiece, origin voxel.Int3) bool {
	for _, off := range p.Piece.Offsets() {
		cell, ok := grid.TryGet(origin.Add(off))
		if !ok || (cell.Tag != voxel.Empty && cell.Tag != voxel.Water) {
			return false
		}
	}
	return true
}
