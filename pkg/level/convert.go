package level

import (
	"fmt"

	"github.com/mental-nv/floodline/pkg/objective"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// TagFromString maps a level's "type" string to a voxel.Tag.
func TagFromString(s string) (voxel.Tag, error) {
	switch s {
	case "Empty":
		return voxel.Empty, nil
	case "Solid":
		return voxel.Solid, nil
	case "Wall":
		return voxel.Wall, nil
	case "Bedrock":
		return voxel.Bedrock, nil
	case "Water":
		return voxel.Water, nil
	case "Ice":
		return voxel.Ice, nil
	case "Porous":
		return voxel.Porous, nil
	case "Drain":
		return voxel.Drain, nil
	default:
		return 0, fmt.Errorf("level: unknown voxel type %q", s)
	}
}

// MaterialFromString maps a level's "materialId" string to a
// voxel.Material. An empty string resolves to NoMaterial.
func MaterialFromString(s string) (voxel.Material, error) {
	switch s {
	case "", "None":
		return voxel.NoMaterial, nil
	case "Standard":
		return voxel.Standard, nil
	case "Heavy":
		return voxel.Heavy, nil
	case "Reinforced":
		return voxel.Reinforced, nil
	default:
		return 0, fmt.Errorf("level: unknown material id %q", s)
	}
}

// ScopeFromString maps an ability/drain "scope" string to a voxel.Scope.
func ScopeFromString(s string) (voxel.Scope, error) {
	switch s {
	case "", "Self":
		return voxel.ScopeSelf, nil
	case "Adj6":
		return voxel.ScopeAdj6, nil
	case "Adj26":
		return voxel.ScopeAdj26, nil
	default:
		return 0, fmt.Errorf("level: unknown scope %q", s)
	}
}

// DirectionFromString maps an "allowedDirections" entry to a
// voxel.Direction. Down is never a valid tilt target and is rejected.
func DirectionFromString(s string) (voxel.Direction, error) {
	switch s {
	case "North":
		return voxel.North, nil
	case "South":
		return voxel.South, nil
	case "East":
		return voxel.East, nil
	case "West":
		return voxel.West, nil
	default:
		return 0, fmt.Errorf("level: unknown or disallowed rotation direction %q", s)
	}
}

// ObjectiveKindFromString maps an objective "type" string to an
// objective.Kind.
func ObjectiveKindFromString(s string) (objective.Kind, error) {
	switch s {
	case "DrainWater":
		return objective.DrainWater, nil
	case "ReachHeight":
		return objective.ReachHeight, nil
	case "BuildPlateau":
		return objective.BuildPlateau, nil
	case "StayUnderWeight":
		return objective.StayUnderWeight, nil
	case "SurviveRotations":
		return objective.SurviveRotations, nil
	default:
		return 0, fmt.Errorf("level: unknown objective type %q", s)
	}
}

// ToObjective converts one ObjectiveSpec into a runtime objective.Objective.
// BuildPlateau reads "area" as Target and "worldLevel" as WorldLevel; every
// other kind reads "target".
func ToObjective(spec ObjectiveSpec) (objective.Objective, error) {
	kind, err := ObjectiveKindFromString(spec.Type)
	if err != nil {
		return objective.Objective{}, err
	}
	o := objective.Objective{Kind: kind}
	if kind == objective.BuildPlateau {
		o.Target = spec.Params["area"]
		o.WorldLevel = spec.Params["worldLevel"]
		return o, nil
	}
	o.Target = spec.Params["target"]
	return o, nil
}
