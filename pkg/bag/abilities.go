package bag

import "github.com/mental-nv/floodline/pkg/piece"

// Charges tracks the remaining per-run uses of the charge-gated abilities
// (spec §4.7). A negative value means unlimited.
type Charges struct {
	Freeze    int
	Drain     int
	Stabilize int
}

func spend(n int) int {
	if n > 0 {
		return n - 1
	}
	return n
}

// ToggleFreeze arms or disarms freeze on lock.LockState (spec §4.7 "arm on
// input, apply on lock"). Disarming never refunds a charge, because no
// charge has been spent yet — the spend happens at CommitCharges, not
// here. Arming while no charge is available is accepted but has no effect:
// the flag is left false.
func ToggleFreeze(lock *piece.LockState, charges Charges) {
	if lock.FreezeArmed {
		lock.FreezeArmed = false
		return
	}
	if charges.Freeze == 0 {
		return
	}
	lock.FreezeArmed = true
}

// ToggleDrainPlacement is ToggleFreeze's counterpart for the drain-placement
// ability.
func ToggleDrainPlacement(lock *piece.LockState, charges Charges) {
	if lock.DrainPlacementArmed {
		lock.DrainPlacementArmed = false
		return
	}
	if charges.Drain == 0 {
		return
	}
	lock.DrainPlacementArmed = true
}

// ToggleStabilize is ToggleFreeze's counterpart for the stabilize ability.
func ToggleStabilize(lock *piece.LockState, charges Charges) {
	if lock.StabilizeArmed {
		lock.StabilizeArmed = false
		return
	}
	if charges.Stabilize == 0 {
		return
	}
	lock.StabilizeArmed = true
}

// CommitCharges deducts one charge per armed ability flag set on lock,
// called once at lock-commit, after the lock-resolve pipeline has merged
// the piece into the grid (spec §4.7 "a consumed charge is deducted"). Unlimited (negative) charges are left
// untouched.
func CommitCharges(lock piece.LockState, charges *Charges) {
	if lock.FreezeArmed {
		charges.Freeze = spend(charges.Freeze)
	}
	if lock.DrainPlacementArmed {
		charges.Drain = spend(charges.Drain)
	}
	if lock.StabilizeArmed {
		charges.Stabilize = spend(charges.Stabilize)
	}
}
