package level

import (
	"fmt"

	"github.com/mental-nv/floodline/pkg/voxel"
)

func errOutOfBounds(pos voxel.Int3) error {
	return fmt.Errorf("level: initial voxel at %v is out of bounds", pos)
}

// Validate runs the structural checks a level must pass before it can seed
// a simulation (spec §7 "Level validation errors"). It does not attempt to
// re-derive gameplay invariants that pkg/engine enforces at runtime.
func (l *Level) Validate() error {
	if l.Meta.ID == "" {
		return fmt.Errorf("level: meta.id is required")
	}
	if l.Meta.SchemaVersion <= 0 {
		return fmt.Errorf("level: meta.schemaVersion must be positive")
	}
	if l.Bounds.X <= 0 || l.Bounds.Y <= 0 || l.Bounds.Z <= 0 {
		return fmt.Errorf("level: bounds must be positive in every axis, got %+v", l.Bounds)
	}

	for i, iv := range l.InitialVoxels {
		if _, err := TagFromString(iv.Type); err != nil {
			return fmt.Errorf("level: initialVoxels[%d]: %w", i, err)
		}
		if _, err := MaterialFromString(iv.MaterialID); err != nil {
			return fmt.Errorf("level: initialVoxels[%d]: %w", i, err)
		}
		pos := voxel.Int3{X: iv.Pos.X, Y: iv.Pos.Y, Z: iv.Pos.Z}
		if pos.X < 0 || pos.Y < 0 || pos.Z < 0 ||
			pos.X >= l.Bounds.X || pos.Y >= l.Bounds.Y || pos.Z >= l.Bounds.Z {
			return fmt.Errorf("level: initialVoxels[%d]: %w", i, errOutOfBounds(pos))
		}
		if iv.Drain != nil {
			if _, err := ScopeFromString(iv.Drain.Scope); err != nil {
				return fmt.Errorf("level: initialVoxels[%d].drain: %w", i, err)
			}
			if iv.Drain.Rate < 0 {
				return fmt.Errorf("level: initialVoxels[%d].drain.rate must be non-negative", i)
			}
		}
	}

	if len(l.Objectives) == 0 {
		return fmt.Errorf("level: at least one objective is required")
	}
	for i, o := range l.Objectives {
		if _, err := ObjectiveKindFromString(o.Type); err != nil {
			return fmt.Errorf("level: objectives[%d]: %w", i, err)
		}
	}

	if err := l.Rotation.validate(); err != nil {
		return err
	}
	if err := l.Bag.validate(); err != nil {
		return err
	}
	for i, h := range l.Hazards {
		if h.Type != "wind" {
			return fmt.Errorf("level: hazards[%d]: unknown hazard type %q", i, h.Type)
		}
	}
	if err := l.Abilities.validate(); err != nil {
		return err
	}
	return nil
}

func (r RotationSpec) validate() error {
	if r.MaxRotations < 0 {
		return fmt.Errorf("level: rotation.maxRotations must be non-negative")
	}
	if r.CooldownTicks < 0 {
		return fmt.Errorf("level: rotation.cooldownTicks must be non-negative")
	}
	for _, d := range r.AllowedDirections {
		if _, err := DirectionFromString(d); err != nil {
			return fmt.Errorf("level: rotation.allowedDirections: %w", err)
		}
	}
	for _, axis := range r.AllowedPieceRotationAxes {
		switch axis {
		case "Yaw", "Pitch", "Roll":
		default:
			return fmt.Errorf("level: rotation.allowedPieceRotationAxes: unknown axis %q", axis)
		}
	}
	return nil
}

func (b BagSpec) validate() error {
	switch b.Type {
	case "fixed":
		if len(b.Sequence) == 0 {
			return fmt.Errorf("level: bag.sequence is required for a fixed bag")
		}
	case "weighted":
		if len(b.Weights) == 0 {
			return fmt.Errorf("level: bag.weights is required for a weighted bag")
		}
		for id, w := range b.Weights {
			if w < 0 {
				return fmt.Errorf("level: bag.weights[%q] must be non-negative", id)
			}
		}
	default:
		return fmt.Errorf("level: bag.type must be \"fixed\" or \"weighted\", got %q", b.Type)
	}
	return nil
}

func (a AbilitiesSpec) validate() error {
	if a.FreezeScope != "" {
		if _, err := ScopeFromString(a.FreezeScope); err != nil {
			return fmt.Errorf("level: abilities.freezeScope: %w", err)
		}
	}
	if a.FreezeDurationResolves < 0 {
		return fmt.Errorf("level: abilities.freezeDurationResolves must be non-negative")
	}
	if a.DrainPlacement != nil {
		if _, err := ScopeFromString(a.DrainPlacement.Scope); err != nil {
			return fmt.Errorf("level: abilities.drainPlacement: %w", err)
		}
		if a.DrainPlacement.Rate < 0 {
			return fmt.Errorf("level: abilities.drainPlacement.rate must be non-negative")
		}
	}
	return nil
}
