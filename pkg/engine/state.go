package engine

import (
	"fmt"
	"sort"

	"github.com/mental-nv/floodline/pkg/bag"
	"github.com/mental-nv/floodline/pkg/hazard"
	"github.com/mental-nv/floodline/pkg/level"
	"github.com/mental-nv/floodline/pkg/objective"
	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/resolve"
	"github.com/mental-nv/floodline/pkg/rng"
	"github.com/mental-nv/floodline/pkg/voxel"
	"github.com/mental-nv/floodline/pkg/world"
)

// Status is the simulation's terminal/non-terminal outcome.
type Status int

const (
	Running Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Counters bundles every cumulative counter the determinism hash and the
// host-facing state inspect (spec §4.9 step 6).
type Counters struct {
	Tick              int
	PiecesLocked      int
	WaterRemovedTotal int
	ShiftVoxelsTotal  int
	LostVoxelsTotal   int
	RotationsExecuted int

	// ResolveCount is the number of resolve passes run so far (lock,
	// accepted tilt, or thaw-only), the counter ice-timer expiry and
	// freeze duration are measured against (spec §4.6 step 7). Distinct
	// from PiecesLocked, which only advances on lock.
	ResolveCount int
}

// Simulation is the full runtime state machine constructed from a level
// (spec §6 "construct Simulation(level, seeded_prng)").
type Simulation struct {
	Level   *level.Level
	Grid    *voxel.Grid
	Gravity voxel.Direction

	streams *rng.Streams

	bagSource   bag.Source
	holdSlot    bag.Slot
	holdEnabled bool
	charges     bag.Charges
	stabilize   bag.StabilizeTimers

	ActivePiece *piece.ActivePiece
	lockState   piece.LockState

	iceTimers resolve.IceTimers

	tiltCfg          world.Config
	tiltState        world.State
	tiltBudgetFinite bool

	// allowedPieceAxes restricts which local-rotation axes commands may
	// use (spec §6 "rotation.allowedPieceRotationAxes"); nil means all
	// three axes are allowed.
	allowedPieceAxes map[string]bool

	hazardCfg       hazard.Config
	hazardScheduler *hazard.Scheduler
	hazardEnabled   bool

	objectives []objective.Objective
	failCfg    objective.FailConfig

	drainPlacementCfg resolve.DrainPlacementConfig
	freezeCfg         resolve.FreezeConfig
	stabilizeDecay    int

	resolveCounters resolve.Counters

	Counters Counters
	Status   Status
	FailedOn objective.FailState
}

func (s *Simulation) hazardStream() *rng.Stream {
	return s.streams.Hazard
}

// New constructs a Simulation from lvl: builds the grid, derives the PRNG
// streams from the level's seed and canonical-JSON config hash, builds the
// bag source, and spawns the first active piece.
func New(lvl *level.Level) (*Simulation, error) {
	grid, err := lvl.ToGrid()
	if err != nil {
		return nil, err
	}
	configHash, err := level.CanonicalJSON(lvl)
	if err != nil {
		return nil, err
	}

	sim := &Simulation{
		Level:     lvl,
		Grid:      grid,
		Gravity:   voxel.Down,
		streams:   rng.NewStreams(lvl.Meta.Seed, configHash),
		iceTimers: resolve.IceTimers{},
		stabilize: bag.StabilizeTimers{},
		tiltCfg:          tiltConfigFromLevel(lvl),
		tiltState:        world.NewState(tiltBudgetFromLevel(lvl)),
		tiltBudgetFinite: lvl.Rotation.TiltBudget > 0 || lvl.Rotation.MaxRotations > 0,
		allowedPieceAxes: allowedAxesFromLevel(lvl),
	}

	sim.bagSource, err = buildBagSource(lvl.Bag, sim.streams.Bag)
	if err != nil {
		return nil, err
	}

	sim.charges = bag.Charges{
		Freeze:    chargeOrUnlimited(lvl.Abilities.FreezeCharges),
		Drain:     chargeOrUnlimited(lvl.Abilities.DrainPlacementCharges),
		Stabilize: chargeOrUnlimited(lvl.Abilities.StabilizeCharges),
	}
	sim.stabilizeDecay = bag.DefaultStabilizeDecayRotations
	sim.holdEnabled = lvl.Abilities.HoldEnabled

	if lvl.Abilities.DrainPlacement != nil {
		scope, err := level.ScopeFromString(lvl.Abilities.DrainPlacement.Scope)
		if err != nil {
			return nil, err
		}
		sim.drainPlacementCfg = resolve.DrainPlacementConfig{Rate: lvl.Abilities.DrainPlacement.Rate, Scope: scope}
	}
	freezeScope, err := level.ScopeFromString(lvl.Abilities.FreezeScope)
	if err != nil {
		return nil, err
	}
	sim.freezeCfg = resolve.FreezeConfig{Scope: freezeScope, DurationResolves: lvl.Abilities.FreezeDurationResolves}

	sim.objectives = make([]objective.Objective, len(lvl.Objectives))
	for i, spec := range lvl.Objectives {
		o, err := level.ToObjective(spec)
		if err != nil {
			return nil, err
		}
		sim.objectives[i] = o
	}
	sim.failCfg = objective.FailConfig{
		MaxWorldHeight:   unlimitedOr(lvl.Constraints.MaxWorldHeight),
		MaxMass:          unlimitedOr(lvl.Constraints.MaxMass),
		ForbiddenMinY:    lvl.Constraints.WaterForbiddenWorldHeightMin,
		WaterForbidden:   lvl.Constraints.WaterForbiddenWorldHeightMin != 0,
		NoRestingOnWater: lvl.Constraints.NoRestingOnWater,
	}

	for _, h := range lvl.Hazards {
		if h.Type == "wind" && h.Enabled {
			sim.hazardEnabled = true
			sim.hazardCfg = hazardConfigFromSpec(h)
			sim.hazardScheduler = hazard.NewScheduler(sim.hazardCfg, sim.streams.Hazard)
			break
		}
	}

	sim.spawnNext()
	return sim, nil
}

func chargeOrUnlimited(configured int) int {
	if configured == 0 {
		return -1
	}
	return configured
}

// unlimitedConstraint stands in for an unconfigured (optional, zero-value)
// constraint field: large enough that no real level can trip it.
const unlimitedConstraint = 1 << 30

func unlimitedOr(configured int) int {
	if configured == 0 {
		return unlimitedConstraint
	}
	return configured
}

func tiltConfigFromLevel(lvl *level.Level) world.Config {
	cfg := world.Config{CooldownTicks: lvl.Rotation.CooldownTicks}
	for _, d := range lvl.Rotation.AllowedDirections {
		dir, err := level.DirectionFromString(d)
		if err == nil {
			cfg.AllowedDirections = append(cfg.AllowedDirections, dir)
		}
	}
	return cfg
}

// tiltBudgetFromLevel resolves the level's tilt budget. tiltBudget is the
// field spec.md's overview names ("rotation config ... tilt budget");
// maxRotations is accepted as a fallback alias when tiltBudget is unset,
// since the schema lists both but only one governing counter exists in
// world.State. Zero/unset on both means unlimited.
func tiltBudgetFromLevel(lvl *level.Level) int {
	if lvl.Rotation.TiltBudget != 0 {
		return lvl.Rotation.TiltBudget
	}
	if lvl.Rotation.MaxRotations != 0 {
		return lvl.Rotation.MaxRotations
	}
	return -1
}

// allowedAxesFromLevel returns nil (meaning "all axes allowed") when the
// level does not restrict allowedPieceRotationAxes.
func allowedAxesFromLevel(lvl *level.Level) map[string]bool {
	if len(lvl.Rotation.AllowedPieceRotationAxes) == 0 {
		return nil
	}
	out := make(map[string]bool, len(lvl.Rotation.AllowedPieceRotationAxes))
	for _, a := range lvl.Rotation.AllowedPieceRotationAxes {
		out[a] = true
	}
	return out
}

func hazardConfigFromSpec(h level.HazardSpec) hazard.Config {
	cfg := hazard.Config{
		Offset:       -1,
		Interval:     1,
		PushStrength: 1,
	}
	if v, ok := h.Params["offset"]; ok {
		cfg.Offset = v
	}
	if v, ok := h.Params["interval"]; ok && v > 0 {
		cfg.Interval = v
	}
	if v, ok := h.Params["pushStrength"]; ok {
		cfg.PushStrength = v
	}
	if v, ok := h.Params["mode"]; ok {
		switch v {
		case 1:
			cfg.Mode = hazard.Fixed
		case 2:
			cfg.Mode = hazard.RandomSeeded
		default:
			cfg.Mode = hazard.AlternateEW
		}
	}
	return cfg
}

func buildBagSource(spec level.BagSpec, stream *rng.Stream) (bag.Source, error) {
	switch spec.Type {
	case "fixed":
		entries := make([]bag.Entry, len(spec.Sequence))
		for i, id := range spec.Sequence {
			def, err := PieceDefinition(id)
			if err != nil {
				return nil, err
			}
			entries[i] = bag.Entry{Key: id, Def: def, Material: voxel.Standard}
		}
		return bag.NewFixed(entries), nil
	case "weighted":
		ids := make([]string, 0, len(spec.Weights))
		for id := range spec.Weights {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		entries := make([]bag.Entry, len(ids))
		for i, id := range ids {
			def, err := PieceDefinition(id)
			if err != nil {
				return nil, err
			}
			entries[i] = bag.Entry{Key: id, Def: def, Material: voxel.Standard, Weight: spec.Weights[id]}
		}
		return bag.NewWeighted(entries, stream), nil
	default:
		return nil, fmt.Errorf("engine: unknown bag type %q", spec.Type)
	}
}

// spawnOrigin is the fixed spawn point: centered in X and Z, at the top
// layer of the grid (Y = size.Y-1). The current gravity does not change it.
func (s *Simulation) spawnOrigin() voxel.Int3 {
	size := s.Grid.Size()
	return voxel.Int3{X: size.X / 2, Y: size.Y - 1, Z: size.Z / 2}
}

func (s *Simulation) spawnNext() {
	entry := s.bagSource.Next()
	s.ActivePiece = &piece.ActivePiece{
		Piece:    piece.OrientedPiece{Def: entry.Def, Index: 0},
		Origin:   s.spawnOrigin(),
		Material: entry.Material,
	}
	s.lockState = piece.NewLockState()
}
