package engine

import (
	"fmt"

	"github.com/mental-nv/floodline/pkg/bag"
	"github.com/mental-nv/floodline/pkg/hazard"
	"github.com/mental-nv/floodline/pkg/objective"
	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/replay"
	"github.com/mental-nv/floodline/pkg/resolve"
	"github.com/mental-nv/floodline/pkg/voxel"
	"github.com/mental-nv/floodline/pkg/world"
)

var moveDeltas = map[replay.Command]voxel.Int3{
	replay.MoveLeft:    {X: -1},
	replay.MoveRight:   {X: 1},
	replay.MoveForward: {Z: 1},
	replay.MoveBack:    {Z: -1},
}

var pieceRotations = map[replay.Command]struct {
	axis   string
	matrix piece.Matrix3
}{
	replay.RotateYawCW:     {"Yaw", piece.YawCW},
	replay.RotateYawCCW:    {"Yaw", piece.YawCCW},
	replay.RotatePitchCW:   {"Pitch", piece.PitchCW},
	replay.RotatePitchCCW:  {"Pitch", piece.PitchCCW},
	replay.RotateRollCW:    {"Roll", piece.RollCW},
	replay.RotateRollCCW:   {"Roll", piece.RollCCW},
}

var worldTilts = map[replay.Command]world.TiltInput{
	replay.RotateWorldForward: world.TiltForward,
	replay.RotateWorldBack:    world.TiltBack,
	replay.RotateWorldLeft:    world.TiltLeft,
	replay.RotateWorldRight:   world.TiltRight,
}

// Tick advances the simulation by one command (spec §6 "Tick(input)").
// It is a no-op beyond bookkeeping once Status is no longer Running.
func (s *Simulation) Tick(cmd replay.Command) error {
	if !cmd.Valid() {
		return fmt.Errorf("engine: unknown command %q", cmd)
	}
	if s.Status != Running {
		s.Counters.Tick++
		return nil
	}

	s.tiltState.Tick()

	moved := false
	switch {
	case cmd == replay.None:
		// No-op beyond the bookkeeping already applied above.
	case cmd == replay.SoftDrop:
		moved = s.softDrop()
	case cmd == replay.HardDrop:
		s.hardDrop()
	case cmd == replay.Hold:
		s.hold()
	case cmd == replay.FreezeAbility:
		bag.ToggleFreeze(&s.lockState, s.charges)
	case cmd == replay.DrainPlacementAbility:
		bag.ToggleDrainPlacement(&s.lockState, s.charges)
	case cmd == replay.StabilizeAbility:
		bag.ToggleStabilize(&s.lockState, s.charges)
	default:
		if delta, ok := moveDeltas[cmd]; ok {
			moved = s.move(delta)
		} else if rot, ok := pieceRotations[cmd]; ok {
			if s.allowedPieceAxes == nil || s.allowedPieceAxes[rot.axis] {
				moved = s.rotatePiece(rot.matrix)
			}
		} else if tilt, ok := worldTilts[cmd]; ok {
			moved = s.tiltWorld(tilt)
		}
	}

	if s.ActivePiece != nil {
		s.naturalGravityStep()
		s.updateGrounding(moved)
		if s.lockState.Grounded && s.lockState.TickLockDelay() {
			s.lockPiece()
		}
	}

	s.fireHazard()
	s.evaluateOutcome()

	s.Counters.Tick++
	return nil
}

func (s *Simulation) move(delta voxel.Int3) bool {
	if s.ActivePiece == nil {
		return false
	}
	next, ok := piece.TryTranslate(s.Grid, *s.ActivePiece, delta)
	if !ok {
		return false
	}
	*s.ActivePiece = next
	return true
}

func (s *Simulation) rotatePiece(matrix piece.Matrix3) bool {
	if s.ActivePiece == nil {
		return false
	}
	rotated := piece.RotateOrientation(s.ActivePiece.Piece, matrix)
	next, ok := piece.TryRotate(s.Grid, *s.ActivePiece, rotated)
	if !ok {
		return false
	}
	*s.ActivePiece = next
	return true
}

func (s *Simulation) softDrop() bool {
	if s.ActivePiece == nil {
		return false
	}
	next, ok := piece.AdvanceGravityStep(s.Grid, *s.ActivePiece, s.Gravity.Vector())
	if !ok {
		return false
	}
	*s.ActivePiece = next
	return true
}

// naturalGravityStep is the unconditional per-tick fall spec §2's data flow
// runs after the movement controller, independent of whatever input this
// tick carried. It is the same single-cell advance softDrop() performs on
// request; here it always runs while a piece is active.
func (s *Simulation) naturalGravityStep() bool {
	if s.ActivePiece == nil {
		return false
	}
	next, ok := piece.AdvanceGravityStep(s.Grid, *s.ActivePiece, s.Gravity.Vector())
	if !ok {
		return false
	}
	*s.ActivePiece = next
	return true
}

func (s *Simulation) hardDrop() {
	if s.ActivePiece == nil {
		return
	}
	next, _ := piece.HardDrop(s.Grid, *s.ActivePiece, s.Gravity.Vector())
	*s.ActivePiece = next
	s.lockPiece()
}

func (s *Simulation) hold() {
	if s.ActivePiece == nil || !s.holdEnabled {
		return
	}
	result, ok := bag.Swap(*s.ActivePiece, &s.lockState, &s.holdSlot)
	if !ok {
		return
	}
	if result.NeedsDraw {
		s.spawnNext()
		s.lockState.HoldUsedThisDrop = true
		return
	}
	s.ActivePiece = &result.NewActive
}

// updateGrounding re-derives the lock state's grounded flag from whether
// the active piece can still advance along gravity. The lock delay resets
// when a successful move, rotation, or world tilt leaves the piece still
// unable to advance while it was already grounded (spec §4.2); a tick
// with no effective action (None, a failed move, a hold, an ability
// toggle) lets the delay keep counting down undisturbed.
func (s *Simulation) updateGrounding(actionSucceeded bool) {
	canAdvance := piece.CanAdvance(s.Grid, *s.ActivePiece, s.Gravity.Vector())
	wasGrounded := s.lockState.Grounded
	if canAdvance {
		if wasGrounded {
			s.lockState.OnUngrounded()
		}
		return
	}
	if !wasGrounded {
		s.lockState.OnGrounded()
		return
	}
	if actionSucceeded {
		s.lockState.ResetDelay()
	}
}

func (s *Simulation) tiltWorld(t world.TiltInput) bool {
	if s.ActivePiece == nil {
		return false
	}
	result := world.Attempt(s.Grid, s.Gravity, t, s.tiltCfg, &s.tiltState, *s.ActivePiece, s.iceTimers, s.Counters.ResolveCount, &s.resolveCounters)
	if !result.Accepted {
		return false
	}
	s.Gravity = result.NewGravity
	s.Counters.RotationsExecuted++
	s.Counters.ResolveCount++
	s.Counters.WaterRemovedTotal = s.resolveCounters.WaterRemovedTotal
	s.stabilize.DecayOnRotation(s.Grid)
	return true
}

// lockPiece runs the lock-resolve pipeline and spawns the next piece.
func (s *Simulation) lockPiece() {
	anchoredPositions := anchoredByStabilize(s.ActivePiece, s.lockState)

	_ = resolve.LockResolve(
		s.Grid,
		s.Gravity,
		*s.ActivePiece,
		s.lockState,
		s.drainPlacementCfg,
		s.freezeCfg,
		s.iceTimers,
		s.Counters.ResolveCount,
		&s.resolveCounters,
	)

	if len(anchoredPositions) > 0 {
		s.stabilize.Arm(anchoredPositions, s.stabilizeDecay)
	}

	bag.CommitCharges(s.lockState, &s.charges)

	s.Counters.PiecesLocked++
	s.Counters.ResolveCount++
	s.Counters.WaterRemovedTotal = s.resolveCounters.WaterRemovedTotal
	s.ActivePiece = nil
	s.spawnNext()
}

func anchoredByStabilize(p *piece.ActivePiece, lock piece.LockState) []voxel.Int3 {
	if !lock.StabilizeArmed {
		return nil
	}
	return p.WorldVoxels()
}

func (s *Simulation) fireHazard() {
	if !s.hazardEnabled {
		return
	}
	result := hazard.Fire(s.hazardScheduler, s.Counters.Tick, s.Grid, s.ActivePiece, s.hazardStream())
	_ = result
}

// evaluateOutcome checks win/fail conditions in the order the spec fixes
// fail-states, then objective completion (spec §4.8).
func (s *Simulation) evaluateOutcome() {
	tiltBudgetWentNegative := s.tiltBudgetFinite && s.tiltState.TiltsRemaining < 0
	fail := objective.CheckFailStates(s.Grid, s.Gravity, s.failCfg, tiltBudgetWentNegative)
	if fail != objective.NoFail {
		s.Status = Lost
		s.FailedOn = fail
		return
	}
	metrics := objective.Metrics{
		WaterRemovedTotal: s.resolveCounters.WaterRemovedTotal,
		RotationsExecuted: s.Counters.RotationsExecuted,
	}
	if objective.AllComplete(s.objectives, s.Grid, metrics) {
		s.Status = Won
	}
}
