package scene

import (
	"math"

	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/parameter"
	"github.com/veilstar/lumen/vmath"
)

var meteorTint = mustHex("#ffb35e").Scaled(1.7)

// MeteorRecord holds one orbiter's immutable seed data
type MeteorRecord struct {
	StartAngle float64
	Speed      float64 // angular rate, rad/sec
	Phase      float64 // shared phase seed for drift and pulse
}

// Meteors orbit the scene at per-instance angular rates; the orbit
// radius low-passes between the tight gathered ring and the loose
// scattered one
type Meteors struct {
	records []MeteorRecord
	radius  float64
	buf     []Instance
}

func NewMeteors(count int, rng *vmath.FastRand) *Meteors {
	m := &Meteors{
		records: make([]MeteorRecord, count),
		radius:  parameter.MeteorRadiusGathered,
		buf:     make([]Instance, count),
	}
	for i := range m.records {
		m.records[i] = MeteorRecord{
			StartAngle: rng.Float64() * 2 * math.Pi,
			Speed:      rng.Range(parameter.MeteorSpeedMin, parameter.MeteorSpeedMax),
			Phase:      rng.Float64() * 2 * math.Pi,
		}
	}
	return m
}

func (m *Meteors) Name() string { return "meteors" }

func (m *Meteors) Instances() []Instance { return m.buf }

func (m *Meteors) Update(fr *FrameContext) {
	targetRadius := parameter.MeteorRadiusGathered
	if fr.State == formation.Scattered {
		targetRadius = parameter.MeteorRadiusScattered
	}
	m.radius = vmath.Approach(m.radius, targetRadius, parameter.MeteorRadiusRate, fr.Dt)

	for i := range m.records {
		rec := &m.records[i]
		angle := rec.StartAngle + rec.Speed*fr.Elapsed

		pulse := 1 + parameter.MeteorPulseAmp*math.Sin(parameter.MeteorPulseRate*fr.Elapsed+rec.Phase)

		m.buf[i] = Instance{
			Position: vmath.Vec3{
				X: m.radius * math.Cos(angle),
				Y: parameter.MeteorBaseY + parameter.MeteorDriftAmp*math.Sin(parameter.MeteorDriftFreq*fr.Elapsed+rec.Phase),
				Z: m.radius * math.Sin(angle),
			},
			Scale:     parameter.MeteorSize * pulse,
			Color:     meteorTint,
			Billboard: true,
			Visible:   true,
		}
	}
}
