package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mental-nv/floodline/pkg/level"
)

// TickRate is the replay format's pinned simulation rate (spec §6).
const TickRate = 60

// RulesVersion is the pinned gameplay-rules version this package's replay
// format targets. Bumped only when a rule change would alter determinism
// hashes for existing replays.
const RulesVersion = "floodline-rules-v1"

// ReplayVersion is the pinned replay-file format version.
const ReplayVersion = "floodline-replay-v1"

// Meta is a replay's header (spec §6).
type Meta struct {
	ReplayVersion string `json:"replayVersion"`
	RulesVersion  string `json:"rulesVersion"`
	LevelID       string `json:"levelId"`
	LevelHash     string `json:"levelHash"`
	Seed          uint64 `json:"seed"`
	TickRate      int    `json:"tickRate"`
	Platform      string `json:"platform"`
	InputEncoding string `json:"inputEncoding"`
}

// InputEntry is one tick's recorded input.
type InputEntry struct {
	Tick    int     `json:"tick"`
	Command Command `json:"command"`
}

// Replay is a full recorded input log against a level.
type Replay struct {
	Meta   Meta         `json:"meta"`
	Inputs []InputEntry `json:"inputs"`
}

// New builds a replay header for lvl, ready to have inputs appended as a
// simulation runs (spec §6).
func New(lvl *level.Level, platform string) (*Replay, error) {
	h, err := lvl.HashHex()
	if err != nil {
		return nil, fmt.Errorf("replay: hashing level: %w", err)
	}
	return &Replay{
		Meta: Meta{
			ReplayVersion: ReplayVersion,
			RulesVersion:  RulesVersion,
			LevelID:       lvl.Meta.ID,
			LevelHash:     h,
			Seed:          lvl.Meta.Seed,
			TickRate:      TickRate,
			Platform:      platform,
			InputEncoding: InputEncodingV1,
		},
	}, nil
}

// Record appends one tick's input in tick order. Callers must call this
// once per tick, contiguously from tick 0.
func (r *Replay) Record(tick int, cmd Command) {
	r.Inputs = append(r.Inputs, InputEntry{Tick: tick, Command: cmd})
}

// Validate checks a replay's header against lvl and checks the input log's
// internal structure: header versions present, tick rate exactly 60, level
// hash matching lvl's current hash, and inputs contiguous from tick 0
// (spec §6: "A replay is valid only if header versions match exactly and
// the level hash recomputed from the current level JSON matches the
// header").
func (r *Replay) Validate(lvl *level.Level) error {
	if r.Meta.ReplayVersion != ReplayVersion {
		return fmt.Errorf("replay: replayVersion mismatch: got %q, want %q", r.Meta.ReplayVersion, ReplayVersion)
	}
	if r.Meta.RulesVersion != RulesVersion {
		return fmt.Errorf("replay: rulesVersion mismatch: got %q, want %q", r.Meta.RulesVersion, RulesVersion)
	}
	if r.Meta.InputEncoding != InputEncodingV1 {
		return fmt.Errorf("replay: inputEncoding mismatch: got %q, want %q", r.Meta.InputEncoding, InputEncodingV1)
	}
	if r.Meta.TickRate != TickRate {
		return fmt.Errorf("replay: tickRate must be %d, got %d", TickRate, r.Meta.TickRate)
	}
	if r.Meta.LevelID != lvl.Meta.ID {
		return fmt.Errorf("replay: levelId mismatch: got %q, want %q", r.Meta.LevelID, lvl.Meta.ID)
	}
	wantHash, err := lvl.HashHex()
	if err != nil {
		return fmt.Errorf("replay: hashing level: %w", err)
	}
	if r.Meta.LevelHash != wantHash {
		return fmt.Errorf("replay: levelHash mismatch: replay was recorded against a different level")
	}
	if r.Meta.Seed != lvl.Meta.Seed {
		return fmt.Errorf("replay: seed mismatch: got %d, want %d", r.Meta.Seed, lvl.Meta.Seed)
	}

	for i, in := range r.Inputs {
		if in.Tick != i {
			return fmt.Errorf("replay: inputs must be contiguous from tick 0, got tick %d at index %d", in.Tick, i)
		}
		if err := validateCommand(in.Command); err != nil {
			return fmt.Errorf("replay: inputs[%d]: %w", i, err)
		}
	}
	return nil
}

// ToJSON serializes the replay as indented JSON.
func (r *Replay) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ParseJSON decodes a Replay from JSON bytes.
func ParseJSON(data []byte) (*Replay, error) {
	var r Replay
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("replay: decoding JSON: %w", err)
	}
	return &r, nil
}

// Load reads and parses a Replay from a JSON file.
func Load(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: reading %s: %w", path, err)
	}
	return ParseJSON(data)
}

// Save writes the replay to path as indented JSON.
func (r *Replay) Save(path string) error {
	data, err := r.ToJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
