// Package replay records per-frame state checksums so two runs of the same
// scripted input can be compared without storing full snapshots.
package replay

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/strideworks/stride/game"
	"github.com/strideworks/stride/locomotion"
)

// quantizePrecision absorbs float noise below what gameplay can observe, so
// checksums stay stable across recording environments.
const quantizePrecision = 4

// Recorder accumulates one checksum per simulated frame.
type Recorder struct {
	sums []uint64
}

// Record hashes the observable frame outcome and appends it.
func (r *Recorder) Record(res locomotion.FrameResult) uint64 {
	var buf [44]byte
	buf[0] = byte(res.State)
	if res.Grounded {
		buf[1] = 1
	}
	if res.Rotating {
		buf[2] = 1
	}
	off := 4
	for _, f := range []float32{
		res.Position.X(), res.Position.Y(), res.Position.Z(),
		res.Velocity.X(), res.Velocity.Y(), res.Velocity.Z(),
		res.Displacement.X(), res.Displacement.Y(), res.Displacement.Z(),
		res.MismatchDeg,
	} {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(game.Round32(f, quantizePrecision)))
		off += 4
	}

	sum := xxh3.Hash(buf[:])
	r.sums = append(r.sums, sum)
	return sum
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.sums)
}

// Checksum folds all frame sums into a single run checksum.
func (r *Recorder) Checksum() uint64 {
	buf := make([]byte, 8*len(r.sums))
	for i, s := range r.sums {
		binary.LittleEndian.PutUint64(buf[i*8:], s)
	}
	return xxh3.Hash(buf)
}

// Diverges compares two recordings and returns the first frame whose
// checksums differ. It returns -1, false when the runs match over the shorter
// recording's length and both have equal length.
func (r *Recorder) Diverges(other *Recorder) (int, bool) {
	n := min(len(r.sums), len(other.sums))
	for i := 0; i < n; i++ {
		if r.sums[i] != other.sums[i] {
			return i, true
		}
	}
	if len(r.sums) != len(other.sums) {
		return n, true
	}
	return -1, false
}
