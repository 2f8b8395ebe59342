package replay

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/mental-nv/floodline/pkg/bag"
	"github.com/mental-nv/floodline/pkg/rng"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// HashVersion is the pinned determinism-hash serialization version (spec
// §4.9 step 1). Changing the byte layout below requires bumping this.
const HashVersion = "floodline-hash-v1"

// ActivePieceDescriptor is the active piece's observable state (spec §4.9
// step 7). Present is false when no piece is currently active.
type ActivePieceDescriptor struct {
	Present             bool
	PieceID             string
	Orientation         int
	Origin              voxel.Int3
	Material            voxel.Material
	Grounded            bool
	LockDelayRemaining  int
	ResetsConsumed      int
	FreezeArmed         bool
	DrainPlacementArmed bool
	StabilizeArmed      bool
	HoldUsedThisDrop    bool
}

// IceTimerEntry is one frozen cell's remaining thaw countdown.
type IceTimerEntry struct {
	Pos   voxel.Int3
	Ticks int
}

// Counters bundles the cumulative simulation counters (spec §4.9 step 6).
type Counters struct {
	Tick              int
	PiecesLocked      int
	WaterRemovedTotal int
	ShiftVoxelsTotal  int
	LostVoxelsTotal   int
	RotationsExecuted int
	ResolveCount      int
}

// HashInput bundles every piece of observable state the determinism hash
// covers, assembled by the caller (pkg/engine) from its live Simulation.
type HashInput struct {
	Grid               *voxel.Grid
	Gravity            voxel.Direction
	PRNG               rng.Snapshot
	Counters           Counters
	ActivePiece        ActivePieceDescriptor
	IceTimers          []IceTimerEntry
	HazardNextFireTick int
	HazardGustCounter  int
	AbilityCharges     bag.Charges
}

func writeInt32(buf *bytes.Buffer, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func writeInt64(buf *bytes.Buffer, v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// serialize renders in as the canonical byte stream described by spec
// §4.9's ten serialization steps, all integers little-endian.
func serialize(in HashInput) []byte {
	var buf bytes.Buffer
	buf.WriteString(HashVersion)

	size := in.Grid.Size()
	writeInt32(&buf, int32(size.X))
	writeInt32(&buf, int32(size.Y))
	writeInt32(&buf, int32(size.Z))

	// Non-empty cells in ascending (x, y, z) tuple order: x is the primary
	// sort key, z the tertiary.
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			for z := 0; z < size.Z; z++ {
				pos := voxel.Int3{X: x, Y: y, Z: z}
				cell := in.Grid.Get(pos)
				if cell.Tag == voxel.Empty {
					continue
				}
				writeInt32(&buf, int32(x))
				writeInt32(&buf, int32(y))
				writeInt32(&buf, int32(z))
				buf.WriteByte(byte(cell.Tag))
				buf.WriteByte(byte(cell.Material))
				buf.WriteByte(boolByte(cell.Anchored))
			}
		}
	}

	buf.WriteByte(in.Gravity.Code())

	writeUint64(&buf, in.PRNG.BagState)
	writeUint64(&buf, in.PRNG.BagInc)
	writeUint64(&buf, in.PRNG.HazardState)
	writeUint64(&buf, in.PRNG.HazardInc)

	writeInt64(&buf, int64(in.Counters.Tick))
	writeInt64(&buf, int64(in.Counters.PiecesLocked))
	writeInt64(&buf, int64(in.Counters.WaterRemovedTotal))
	writeInt64(&buf, int64(in.Counters.ShiftVoxelsTotal))
	writeInt64(&buf, int64(in.Counters.LostVoxelsTotal))
	writeInt64(&buf, int64(in.Counters.RotationsExecuted))
	writeInt64(&buf, int64(in.Counters.ResolveCount))

	ap := in.ActivePiece
	buf.WriteByte(boolByte(ap.Present))
	if ap.Present {
		buf.WriteString(ap.PieceID)
		buf.WriteByte(0)
		writeInt32(&buf, int32(ap.Orientation))
		writeInt32(&buf, int32(ap.Origin.X))
		writeInt32(&buf, int32(ap.Origin.Y))
		writeInt32(&buf, int32(ap.Origin.Z))
		buf.WriteByte(byte(ap.Material))
		buf.WriteByte(boolByte(ap.FreezeArmed))
		buf.WriteByte(boolByte(ap.DrainPlacementArmed))
		buf.WriteByte(boolByte(ap.StabilizeArmed))
		buf.WriteByte(boolByte(ap.HoldUsedThisDrop))
		buf.WriteByte(boolByte(ap.Grounded))
		writeInt32(&buf, int32(ap.LockDelayRemaining))
		writeInt32(&buf, int32(ap.ResetsConsumed))
	}

	timers := make([]IceTimerEntry, len(in.IceTimers))
	copy(timers, in.IceTimers)
	sort.Slice(timers, func(i, j int) bool {
		a, b := timers[i].Pos, timers[j].Pos
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	writeInt32(&buf, int32(len(timers)))
	for _, it := range timers {
		writeInt32(&buf, int32(it.Pos.X))
		writeInt32(&buf, int32(it.Pos.Y))
		writeInt32(&buf, int32(it.Pos.Z))
		writeInt32(&buf, int32(it.Ticks))
	}

	writeInt32(&buf, int32(in.HazardNextFireTick))
	writeInt32(&buf, int32(in.HazardGustCounter))

	writeInt32(&buf, int32(in.AbilityCharges.Freeze))
	writeInt32(&buf, int32(in.AbilityCharges.Drain))
	writeInt32(&buf, int32(in.AbilityCharges.Stabilize))

	return buf.Bytes()
}

// ComputeHash returns the hex-encoded determinism hash for in, prefixed
// with the hash version (spec §4.9).
func ComputeHash(in HashInput) string {
	sum := sha256.Sum256(serialize(in))
	return HashVersion + ":" + hex.EncodeToString(sum[:])
}
