package engine

import "github.com/mental-nv/floodline/pkg/replay"

// DeterminismHash assembles the current live state into a replay.HashInput
// and returns the hex-encoded determinism hash (spec §4.9).
func (s *Simulation) DeterminismHash() string {
	return replay.ComputeHash(s.hashInput())
}

func (s *Simulation) hashInput() replay.HashInput {
	in := replay.HashInput{
		Grid:    s.Grid,
		Gravity: s.Gravity,
		PRNG:    s.streams.Snapshot(),
		Counters: replay.Counters{
			Tick:              s.Counters.Tick,
			PiecesLocked:      s.Counters.PiecesLocked,
			WaterRemovedTotal: s.resolveCounters.WaterRemovedTotal,
			ShiftVoxelsTotal:  s.Counters.ShiftVoxelsTotal,
			LostVoxelsTotal:   s.Counters.LostVoxelsTotal,
			RotationsExecuted: s.Counters.RotationsExecuted,
			ResolveCount:      s.Counters.ResolveCount,
		},
		HazardNextFireTick: s.hazardNextFireTick(),
		HazardGustCounter:  s.hazardGustCounter(),
		AbilityCharges:     s.charges,
	}

	if s.ActivePiece != nil {
		p := s.ActivePiece
		in.ActivePiece = replay.ActivePieceDescriptor{
			Present:             true,
			PieceID:             p.Piece.Def.ID,
			Orientation:         p.Piece.Index,
			Origin:              p.Origin,
			Material:            p.Material,
			Grounded:            s.lockState.Grounded,
			LockDelayRemaining:  s.lockState.LockDelayRemaining,
			ResetsConsumed:      s.lockState.ResetsConsumed,
			FreezeArmed:         s.lockState.FreezeArmed,
			DrainPlacementArmed: s.lockState.DrainPlacementArmed,
			StabilizeArmed:      s.lockState.StabilizeArmed,
			HoldUsedThisDrop:    s.lockState.HoldUsedThisDrop,
		}
	}

	in.IceTimers = make([]replay.IceTimerEntry, 0, len(s.iceTimers))
	for pos, ticks := range s.iceTimers {
		in.IceTimers = append(in.IceTimers, replay.IceTimerEntry{Pos: pos, Ticks: ticks})
	}

	return in
}

func (s *Simulation) hazardNextFireTick() int {
	if !s.hazardEnabled {
		return 0
	}
	offset := s.hazardScheduler.Offset()
	if s.Counters.Tick <= offset {
		return offset
	}
	elapsed := s.Counters.Tick - offset
	remainder := elapsed % s.hazardCfg.Interval
	if remainder == 0 {
		return s.Counters.Tick
	}
	return s.Counters.Tick + (s.hazardCfg.Interval - remainder)
}

func (s *Simulation) hazardGustCounter() int {
	if !s.hazardEnabled {
		return 0
	}
	return s.hazardScheduler.GustCount()
}
