package replay

import "fmt"

// Command is one host input, named per the stable vocabulary pinned by a
// replay's inputEncoding tag (spec §6).
type Command string

const (
	None         Command = "None"
	MoveLeft     Command = "MoveLeft"
	MoveRight    Command = "MoveRight"
	MoveForward  Command = "MoveForward"
	MoveBack     Command = "MoveBack"
	SoftDrop     Command = "SoftDrop"
	HardDrop     Command = "HardDrop"
	RotateYawCW  Command = "RotatePieceYawCW"
	RotateYawCCW Command = "RotatePieceYawCCW"
	RotatePitchCW  Command = "RotatePiecePitchCW"
	RotatePitchCCW Command = "RotatePiecePitchCCW"
	RotateRollCW   Command = "RotatePieceRollCW"
	RotateRollCCW  Command = "RotatePieceRollCCW"
	RotateWorldForward Command = "RotateWorldForward"
	RotateWorldBack    Command = "RotateWorldBack"
	RotateWorldLeft    Command = "RotateWorldLeft"
	RotateWorldRight   Command = "RotateWorldRight"
	Hold                  Command = "Hold"
	FreezeAbility         Command = "FreezeAbility"
	DrainPlacementAbility Command = "DrainPlacementAbility"
	StabilizeAbility      Command = "StabilizeAbility"
)

// InputEncodingV1 pins the command-name vocabulary a replay's header
// declares itself against (spec §6 "input encoding tag").
const InputEncodingV1 = "floodline-commands-v1"

var knownCommands = map[Command]bool{
	None: true, MoveLeft: true, MoveRight: true, MoveForward: true, MoveBack: true,
	SoftDrop: true, HardDrop: true,
	RotateYawCW: true, RotateYawCCW: true,
	RotatePitchCW: true, RotatePitchCCW: true,
	RotateRollCW: true, RotateRollCCW: true,
	RotateWorldForward: true, RotateWorldBack: true, RotateWorldLeft: true, RotateWorldRight: true,
	Hold: true, FreezeAbility: true, DrainPlacementAbility: true, StabilizeAbility: true,
}

// Valid reports whether c is a recognized command name under InputEncodingV1.
func (c Command) Valid() bool {
	return knownCommands[c]
}

func validateCommand(c Command) error {
	if !c.Valid() {
		return fmt.Errorf("replay: unknown command %q", c)
	}
	return nil
}
