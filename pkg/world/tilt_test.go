package world

import (
	"testing"

	"github.com/mental-nv/floodline/pkg/piece"
	"github.com/mental-nv/floodline/pkg/resolve"
	"github.com/mental-nv/floodline/pkg/voxel"
)

func plainActivePiece(origin voxel.Int3) piece.ActivePiece {
	def := piece.NewDefinition("O1", []voxel.Int3{{0, 0, 0}})
	return piece.ActivePiece{Piece: piece.OrientedPiece{Def: def, Index: 0}, Origin: origin, Material: voxel.Standard}
}

func TestAttemptRejectsDuringCooldown(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{3, 3, 3})
	st := NewState(-1)
	st.TicksSinceLastTilt = 1
	cfg := Config{CooldownTicks: 5}
	ap := plainActivePiece(voxel.Int3{1, 1, 1})
	timers := resolve.IceTimers{}
	counters := &resolve.Counters{}

	res := Attempt(g, voxel.Down, TiltForward, cfg, &st, ap, timers, 0, counters)
	if res.Accepted {
		t.Fatalf("expected rejection while cooldown has not elapsed")
	}
	if res.NewGravity != voxel.Down {
		t.Fatalf("gravity should stay unchanged on rejection, got %v", res.NewGravity)
	}
}

func TestAttemptRejectsWhenBudgetExhausted(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{3, 3, 3})
	st := NewState(0)
	cfg := Config{}
	ap := plainActivePiece(voxel.Int3{1, 1, 1})
	timers := resolve.IceTimers{}
	counters := &resolve.Counters{}

	res := Attempt(g, voxel.Down, TiltForward, cfg, &st, ap, timers, 0, counters)
	if res.Accepted {
		t.Fatalf("expected rejection with zero tilt budget remaining")
	}
}

func TestAttemptRejectsDisallowedDirection(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{3, 3, 3})
	st := NewState(-1)
	cfg := Config{AllowedDirections: []voxel.Direction{voxel.Down}}
	ap := plainActivePiece(voxel.Int3{1, 1, 1})
	timers := resolve.IceTimers{}
	counters := &resolve.Counters{}

	res := Attempt(g, voxel.Down, TiltForward, cfg, &st, ap, timers, 0, counters)
	if res.Accepted {
		t.Fatalf("expected rejection for a direction not in AllowedDirections")
	}
}

func TestAttemptAcceptsAndUpdatesState(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{3, 3, 3})
	g.Set(voxel.Int3{2, 2, 2}, voxel.Cell{Tag: voxel.Bedrock})
	st := NewState(3)
	st.TicksSinceLastTilt = 10
	cfg := Config{CooldownTicks: 2}
	ap := plainActivePiece(voxel.Int3{0, 0, 0})
	timers := resolve.IceTimers{}
	counters := &resolve.Counters{}

	res := Attempt(g, voxel.Down, TiltForward, cfg, &st, ap, timers, 0, counters)
	if !res.Accepted {
		t.Fatalf("expected tilt to be accepted")
	}
	if res.NewGravity == voxel.Down {
		t.Fatalf("expected gravity to change after a successful tilt")
	}
	if st.TicksSinceLastTilt != 0 {
		t.Fatalf("expected cooldown counter reset, got %d", st.TicksSinceLastTilt)
	}
	if st.TiltsRemaining != 2 {
		t.Fatalf("expected tilt budget decremented to 2, got %d", st.TiltsRemaining)
	}
}

// A solid voxel is perched such that, once gravity rotates to North, it
// would settle directly onto the active piece's own cell. The whole
// attempt must be rejected and every piece of state rolled back exactly
// to its pre-attempt values (spec §8 scenario: rotation blocked by the
// active piece).
func TestAttemptRollsBackOnBlockedResolve(t *testing.T) {
	g := voxel.NewGrid(voxel.Int3{3, 3, 3})
	activeCell := voxel.Int3{1, 1, 1}
	ap := plainActivePiece(activeCell)

	blockerRestPos := voxel.Int3{1, 1, 0}
	g.Set(blockerRestPos, voxel.Cell{Tag: voxel.Bedrock})
	fallingSolid := voxel.Int3{1, 1, 2}
	g.Set(fallingSolid, voxel.Cell{Tag: voxel.Solid})

	gridBefore := g.Clone()
	st := NewState(-1)
	cfg := Config{}
	timers := resolve.IceTimers{voxel.Int3{0, 0, 0}: 7}
	timersBefore := resolve.IceTimers{voxel.Int3{0, 0, 0}: 7}
	counters := &resolve.Counters{WaterRemovedTotal: 4}
	countersBefore := resolve.Counters{WaterRemovedTotal: 4}

	res := Attempt(g, voxel.Down, TiltForward, cfg, &st, ap, timers, 0, counters)

	if res.Accepted {
		t.Fatalf("expected rejection: falling solid would settle onto the active piece's cell")
	}
	if res.NewGravity != voxel.Down {
		t.Fatalf("gravity must remain Down on rejection, got %v", res.NewGravity)
	}
	for _, c := range g.NonEmptyCells() {
		before := gridBefore.Get(c)
		after := g.Get(c)
		if before.Tag != after.Tag {
			t.Fatalf("grid cell %v changed on rejected attempt: before %v after %v", c, before, after)
		}
	}
	if len(timers) != len(timersBefore) || timers[voxel.Int3{0, 0, 0}] != timersBefore[voxel.Int3{0, 0, 0}] {
		t.Fatalf("ice timers must be restored on rejection, got %v", timers)
	}
	if *counters != countersBefore {
		t.Fatalf("counters must be restored on rejection, got %+v", counters)
	}
	if st.TicksSinceLastTilt != 0 || st.TiltsRemaining != -1 {
		t.Fatalf("rotation state must not advance on rejection")
	}
}
