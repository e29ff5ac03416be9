package scene

import (
	"math"

	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/parameter"
	"github.com/veilstar/lumen/vmath"
)

var rippleTint = mustHex("#6fd8e8").Scaled(1.5)

// Ripples is the ring-burst ground effect: R rings of P instances each,
// firing on a staggered repeating cycle. Transforms are pure functions
// of elapsed time; nothing is spawned or destroyed
type Ripples struct {
	rings   int
	perRing int
	buf     []Instance
}

func NewRipples(rings, perRing int) *Ripples {
	return &Ripples{
		rings:   rings,
		perRing: perRing,
		buf:     make([]Instance, rings*perRing),
	}
}

func (r *Ripples) Name() string { return "ripples" }

func (r *Ripples) Instances() []Instance { return r.buf }

func (r *Ripples) Update(fr *FrameContext) {
	maxRadius := parameter.RippleMaxRadiusGathered
	if fr.State == formation.Scattered {
		maxRadius = parameter.RippleMaxRadiusScattered
	}

	for i := range r.buf {
		ring := i / r.perRing
		slot := i % r.perRing
		angle := float64(slot) / float64(r.perRing) * 2 * math.Pi

		// Ring-local clock; max guards a stalled or rewound wall clock
		local := math.Max(0, fr.Elapsed-float64(ring)*parameter.RippleStagger)
		cyc := math.Mod(local, parameter.RippleCycleDuration)

		fired := fr.Elapsed >= float64(ring)*parameter.RippleStagger
		if !fired || cyc >= parameter.RippleActiveWindow {
			// Outside the active window: scaled to zero, never removed
			r.buf[i] = Instance{Billboard: true}
			continue
		}

		p := cyc / parameter.RippleActiveWindow
		radius := maxRadius * vmath.EaseOutQuartic(p)
		opacity := 1 - p

		r.buf[i] = Instance{
			Position: vmath.Vec3{
				X: radius * math.Cos(angle),
				Y: parameter.RippleGroundY,
				Z: radius * math.Sin(angle),
			},
			Scale:     parameter.RippleSize,
			Color:     rippleTint.Scaled(opacity),
			Billboard: true,
			Visible:   true,
		}
	}
}
