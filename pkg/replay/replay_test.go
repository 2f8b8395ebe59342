package replay

import (
	"testing"

	"github.com/mental-nv/floodline/pkg/level"
)

func testLevel() *level.Level {
	return &level.Level{
		Meta:   level.Meta{ID: "l1", Title: "t", SchemaVersion: 1, Seed: 9},
		Bounds: level.Bounds{X: 4, Y: 4, Z: 4},
		Objectives: []level.ObjectiveSpec{
			{Type: "ReachHeight", Params: map[string]int{"target": 2}},
		},
		Bag: level.BagSpec{Type: "fixed", Sequence: []string{"I"}},
	}
}

func TestNewBuildsHeaderFromLevel(t *testing.T) {
	lvl := testLevel()
	r, err := New(lvl, "test-host")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Meta.LevelID != "l1" || r.Meta.Seed != 9 || r.Meta.TickRate != TickRate {
		t.Fatalf("unexpected header: %+v", r.Meta)
	}
	wantHash, _ := lvl.HashHex()
	if r.Meta.LevelHash != wantHash {
		t.Fatalf("expected header levelHash to match lvl.HashHex()")
	}
}

func TestValidateAcceptsContiguousInputs(t *testing.T) {
	lvl := testLevel()
	r, _ := New(lvl, "test-host")
	r.Record(0, HardDrop)
	r.Record(1, MoveLeft)
	r.Record(2, None)
	if err := r.Validate(lvl); err != nil {
		t.Fatalf("expected valid replay, got %v", err)
	}
}

func TestValidateRejectsNonContiguousInputs(t *testing.T) {
	lvl := testLevel()
	r, _ := New(lvl, "test-host")
	r.Record(0, HardDrop)
	r.Record(2, MoveLeft)
	if err := r.Validate(lvl); err == nil {
		t.Fatalf("expected a gap in tick sequence to be rejected")
	}
}

func TestValidateRejectsUnknownCommand(t *testing.T) {
	lvl := testLevel()
	r, _ := New(lvl, "test-host")
	r.Record(0, Command("Bogus"))
	if err := r.Validate(lvl); err == nil {
		t.Fatalf("expected an unknown command to be rejected")
	}
}

func TestValidateRejectsStaleLevelHash(t *testing.T) {
	lvl := testLevel()
	r, _ := New(lvl, "test-host")
	lvl.Meta.Seed = 10 // changes the level's hash after the replay was recorded
	if err := r.Validate(lvl); err == nil {
		t.Fatalf("expected a level hash mismatch to be rejected")
	}
}

func TestValidateRejectsReplayVersionMismatch(t *testing.T) {
	lvl := testLevel()
	r, _ := New(lvl, "test-host")
	r.Meta.ReplayVersion = "some-other-version"
	if err := r.Validate(lvl); err == nil {
		t.Fatalf("expected a replayVersion mismatch to be rejected")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	lvl := testLevel()
	r, _ := New(lvl, "test-host")
	r.Record(0, HardDrop)

	data, err := r.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	r2, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if r2.Meta != r.Meta || len(r2.Inputs) != 1 || r2.Inputs[0].Command != HardDrop {
		t.Fatalf("round-trip mismatch: %+v", r2)
	}
}
