package scene

import (
	"math"

	"github.com/veilstar/lumen/parameter"
	"github.com/veilstar/lumen/vmath"
)

var snowTint = mustHex("#eef4ff")

// SnowRecord is one flake: anchor x/z and fall speed are seeds, y is
// the only mutable state and wraps through the looping volume
type SnowRecord struct {
	X, Z  float64
	Y     float64
	Speed float64
	Phase float64
	Size  float64
}

// Snow is the ambient background fall, fully independent of the
// formation state and the gesture signal
type Snow struct {
	records []SnowRecord
	rng     *vmath.FastRand
	buf     []Instance
}

func NewSnow(count int, rng *vmath.FastRand) *Snow {
	s := &Snow{
		records: make([]SnowRecord, count),
		rng:     rng,
		buf:     make([]Instance, count),
	}
	for i := range s.records {
		s.records[i] = SnowRecord{
			X:     rng.Range(-parameter.SnowHalfExtent, parameter.SnowHalfExtent),
			Z:     rng.Range(-parameter.SnowHalfExtent, parameter.SnowHalfExtent),
			Y:     rng.Range(parameter.SnowFloorY, parameter.SnowCeilMin),
			Speed: rng.Range(parameter.SnowSpeedMin, parameter.SnowSpeedMax),
			Phase: rng.Float64() * 2 * math.Pi,
			Size:  rng.Range(parameter.SnowSizeMin, parameter.SnowSizeMax),
		}
	}
	return s
}

func (s *Snow) Name() string { return "snow" }

func (s *Snow) Instances() []Instance { return s.buf }

// Records exposes flake state for tests
func (s *Snow) Records() []SnowRecord { return s.records }

func (s *Snow) Update(fr *FrameContext) {
	for i := range s.records {
		rec := &s.records[i]

		rec.Y -= rec.Speed * fr.Dt * parameter.SnowFallFactor
		if rec.Y < parameter.SnowFloorY {
			// Respawn above the volume with fresh horizontal placement
			rec.Y = s.rng.Range(parameter.SnowCeilMin, parameter.SnowCeilMax)
			rec.X = s.rng.Range(-parameter.SnowHalfExtent, parameter.SnowHalfExtent)
			rec.Z = s.rng.Range(-parameter.SnowHalfExtent, parameter.SnowHalfExtent)
		}

		drift := parameter.SnowDriftAmp * math.Sin(parameter.SnowDriftFreq*fr.Elapsed+rec.Phase)

		s.buf[i] = Instance{
			Position:  vmath.Vec3{X: rec.X + drift, Y: rec.Y, Z: rec.Z},
			Scale:     rec.Size,
			Color:     snowTint,
			Billboard: true,
			Visible:   true,
		}
	}
}
