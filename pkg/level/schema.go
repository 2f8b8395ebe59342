package level

// Pos is an integer grid coordinate as it appears in level JSON/YAML.
type Pos struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Meta carries level identity and the master RNG seed.
type Meta struct {
	ID            string `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	SchemaVersion int    `json:"schemaVersion" yaml:"schemaVersion"`
	Seed          uint64 `json:"seed" yaml:"seed"`
}

// Bounds is the fixed grid extent, fixed for the life of a simulation.
type Bounds struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// DrainSpec configures a Drain cell's removal behavior, either as a static
// initial voxel or as the drain-placement ability's per-merge config.
type DrainSpec struct {
	Rate  int    `json:"rate" yaml:"rate"`
	Scope string `json:"scope" yaml:"scope"`
}

// InitialVoxel places one non-Empty cell before tick 0.
type InitialVoxel struct {
	Pos        Pos        `json:"pos" yaml:"pos"`
	Type       string     `json:"type" yaml:"type"`
	MaterialID string     `json:"materialId,omitempty" yaml:"materialId,omitempty"`
	Drain      *DrainSpec `json:"drain,omitempty" yaml:"drain,omitempty"`
}

// ObjectiveSpec is one integer-parameterized win condition.
type ObjectiveSpec struct {
	Type   string         `json:"type" yaml:"type"`
	Params map[string]int `json:"params,omitempty" yaml:"params,omitempty"`
}

// RotationSpec configures world-rotation availability (spec §4.3).
type RotationSpec struct {
	MaxRotations             int      `json:"maxRotations,omitempty" yaml:"maxRotations,omitempty"`
	TiltBudget               int      `json:"tiltBudget,omitempty" yaml:"tiltBudget,omitempty"`
	CooldownTicks            int      `json:"cooldownTicks,omitempty" yaml:"cooldownTicks,omitempty"`
	AllowedDirections        []string `json:"allowedDirections,omitempty" yaml:"allowedDirections,omitempty"`
	AllowedPieceRotationAxes []string `json:"allowedPieceRotationAxes,omitempty" yaml:"allowedPieceRotationAxes,omitempty"`
}

// BagSpec configures the piece bag: either a wrapping fixed sequence of
// piece IDs, or a weighted draw table keyed by piece ID.
type BagSpec struct {
	Type     string         `json:"type" yaml:"type"`
	Sequence []string       `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	Weights  map[string]int `json:"weights,omitempty" yaml:"weights,omitempty"`
}

// HazardSpec is one hazard entry (currently only "wind").
type HazardSpec struct {
	Type    string         `json:"type" yaml:"type"`
	Enabled bool           `json:"enabled" yaml:"enabled"`
	Params  map[string]int `json:"params,omitempty" yaml:"params,omitempty"`
}

// AbilitiesSpec configures hold and the three arm-and-merge abilities
// (spec §4.6, §4.7).
type AbilitiesSpec struct {
	HoldEnabled            bool       `json:"holdEnabled,omitempty" yaml:"holdEnabled,omitempty"`
	StabilizeCharges       int        `json:"stabilizeCharges,omitempty" yaml:"stabilizeCharges,omitempty"`
	FreezeCharges          int        `json:"freezeCharges,omitempty" yaml:"freezeCharges,omitempty"`
	FreezeScope            string     `json:"freezeScope,omitempty" yaml:"freezeScope,omitempty"`
	FreezeDurationResolves int        `json:"freezeDurationResolves,omitempty" yaml:"freezeDurationResolves,omitempty"`
	DrainPlacementCharges  int        `json:"drainPlacementCharges,omitempty" yaml:"drainPlacementCharges,omitempty"`
	DrainPlacement         *DrainSpec `json:"drainPlacement,omitempty" yaml:"drainPlacement,omitempty"`
}

// ConstraintsSpec configures the fail-state thresholds (spec §4.8).
type ConstraintsSpec struct {
	MaxWorldHeight               int  `json:"maxWorldHeight,omitempty" yaml:"maxWorldHeight,omitempty"`
	MaxMass                      int  `json:"maxMass,omitempty" yaml:"maxMass,omitempty"`
	WaterForbiddenWorldHeightMin int  `json:"waterForbiddenWorldHeightMin,omitempty" yaml:"waterForbiddenWorldHeightMin,omitempty"`
	NoRestingOnWater             bool `json:"noRestingOnWater,omitempty" yaml:"noRestingOnWater,omitempty"`
}

// Level is the full level definition (spec §6): everything needed to seed
// a simulation deterministically.
type Level struct {
	Meta          Meta            `json:"meta" yaml:"meta"`
	Bounds        Bounds          `json:"bounds" yaml:"bounds"`
	InitialVoxels []InitialVoxel  `json:"initialVoxels,omitempty" yaml:"initialVoxels,omitempty"`
	Objectives    []ObjectiveSpec `json:"objectives" yaml:"objectives"`
	Rotation      RotationSpec    `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Bag           BagSpec         `json:"bag" yaml:"bag"`
	Hazards       []HazardSpec    `json:"hazards,omitempty" yaml:"hazards,omitempty"`
	Abilities     AbilitiesSpec   `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	Constraints   ConstraintsSpec `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}
