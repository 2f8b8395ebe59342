package world

import (
	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/resolve"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// TiltInput identifies one of the four directional tilt commands (spec
// §4.3). Each maps to one of the six canonical 90-degree rotation
// matrices also used for local piece rotation (spec §4.2); Yaw is never a
// tilt input because it leaves the Down gravity vector unchanged.
type TiltInput int

const (
	TiltForward TiltInput = iota
	TiltBack
	TiltLeft
	TiltRight
)

func (t TiltInput) matrix() piece.Matrix3 {
	switch t {
	case TiltForward:
		return piece.PitchCW
	case TiltBack:
		return piece.PitchCCW
	case TiltLeft:
		return piece.RollCCW
	case TiltRight:
		return piece.RollCW
	default:
		panic("world: unknown tilt input")
	}
}

// Config carries a level's rotation policy (spec §6 "rotation").
type Config struct {
	// AllowedDirections restricts which gravity directions a tilt may
	// land on. An empty slice means all five cardinal directions are
	// allowed.
	AllowedDirections []voxel.Direction
	CooldownTicks     int
	// TiltBudget is the number of tilts remaining; negative means
	// unlimited.
	TiltBudget int
}

func (c Config) allows(d voxel.Direction) bool {
	if len(c.AllowedDirections) == 0 {
		return true
	}
	for _, a := range c.AllowedDirections {
		if a == d {
			return true
		}
	}
	return false
}

// State tracks the rotation-policy counters that persist across tilts
// within one simulation run.
type State struct {
	TicksSinceLastTilt int
	// TiltsRemaining is the tilt budget remaining; negative means
	// unlimited.
	TiltsRemaining int
}

// NewState builds the initial rotation state from a level's tilt budget.
func NewState(tiltBudget int) State {
	return State{TicksSinceLastTilt: 0, TiltsRemaining: tiltBudget}
}

// Tick advances the cooldown counter. Call once per engine tick
// regardless of whether a tilt is attempted that tick.
func (st *State) Tick() {
	st.TicksSinceLastTilt++
}

// Result is the outcome of an attempted tilt.
type Result struct {
	Accepted   bool
	NewGravity voxel.Direction
	Resolve    resolve.Result
}

func cloneTimers(t resolve.IceTimers) resolve.IceTimers {
	out := make(resolve.IceTimers, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

func restoreTimers(dst, src resolve.IceTimers) {
	for k := range dst {
		delete(dst, k)
	}
	for k, v := range src {
		dst[k] = v
	}
}

// Attempt tries to rotate gravity from g via tilt t, validating against
// cfg and st. If the rotated direction is the Up sentinel, is not in
// cfg.AllowedDirections, the cooldown has not elapsed, or the tilt budget
// is exhausted, the attempt is rejected with no state change (spec §4.3).
// Otherwise a gated Tilt Resolve runs with the active piece's occupied
// cells as the blocked set; if that resolve would displace a solid into
// an active-piece cell, the entire attempt is rejected and rolled back —
// grid, timers, and counters are restored to their pre-attempt values.
// On acceptance, st's cooldown and budget counters update.
func Attempt(
	grid *voxel.Grid,
	g voxel.Direction,
	t TiltInput,
	cfg Config,
	st *State,
	activePiece piece.ActivePiece,
	timers resolve.IceTimers,
	resolveCounter int,
	counters *resolve.Counters,
) Result {
	reject := Result{Accepted: false, NewGravity: g}

	if st.TicksSinceLastTilt < cfg.CooldownTicks {
		return reject
	}
	if st.TiltsRemaining == 0 {
		return reject
	}

	rotatedVec := t.matrix().Apply(g.Vector())
	newDir, ok := voxel.DirectionFromVector(rotatedVec)
	if !ok || !cfg.allows(newDir) {
		return reject
	}

	blocked := make(map[voxel.Int3]bool)
	for _, c := range activePiece.WorldVoxels() {
		blocked[c] = true
	}

	gridSnapshot := grid.Clone()
	timersSnapshot := cloneTimers(timers)
	countersSnapshot := *counters

	result, committed := resolve.TryRun(grid, newDir, nil, blocked, timers, resolveCounter, counters)
	if !committed {
		grid.CopyFrom(gridSnapshot)
		restoreTimers(timers, timersSnapshot)
		*counters = countersSnapshot
		return reject
	}

	st.TicksSinceLastTilt = 0
	if st.TiltsRemaining > 0 {
		st.TiltsRemaining--
	}

	return Result{Accepted: true, NewGravity: newDir, Resolve: result}
}
