package scene

import (
	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/parameter"
	"github.com/veilstar/lumen/vmath"
)

var emblemTint = mustHex("#ffe27a").Scaled(2.0)

// Emblem is the single top ornament. It spins in lockstep with the
// gathered formation and fades out entirely while scattered
type Emblem struct {
	opacity float64
	buf     []Instance
}

func NewEmblem() *Emblem {
	return &Emblem{
		opacity: 1, // scene starts gathered
		buf:     make([]Instance, 1),
	}
}

func (e *Emblem) Name() string { return "emblem" }

func (e *Emblem) Instances() []Instance { return e.buf }

// Opacity exposes the smoothed value for tests
func (e *Emblem) Opacity() float64 { return e.opacity }

func (e *Emblem) Update(fr *FrameContext) {
	target := 1.0
	if fr.State == formation.Scattered {
		target = 0.0
	}
	e.opacity = vmath.Approach(e.opacity, target, parameter.EmblemFadeRate, fr.Dt)

	e.buf[0] = Instance{
		Position: vmath.Vec3{Y: parameter.EmblemY},
		Scale:    parameter.EmblemSize * e.opacity,
		Color:    emblemTint.Scaled(e.opacity),
		// Spins with the ornament formation instead of billboarding
		Billboard: false,
		RotY:      fr.Elapsed * parameter.OrnamentRotationSpeed,
		Visible:   e.opacity > parameter.EmblemEpsilon,
	}
}
