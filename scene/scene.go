package scene

import (
	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/gesture"
	"github.com/veilstar/lumen/glyph"
	"github.com/veilstar/lumen/parameter"
	"github.com/veilstar/lumen/vmath"
)

// Options selects counts, the generation seed, and the banner text
// Zero values fall back to the parameter defaults
type Options struct {
	Seed          uint64
	OrnamentCount int
	MeteorCount   int
	SnowCount     int
	RippleRings   int
	RipplePerRing int
	BannerText    string
}

func (o Options) withDefaults() Options {
	if o.Seed == 0 {
		o.Seed = parameter.DefaultSeed
	}
	if o.OrnamentCount == 0 {
		o.OrnamentCount = parameter.OrnamentCount
	}
	if o.MeteorCount == 0 {
		o.MeteorCount = parameter.MeteorCount
	}
	if o.SnowCount == 0 {
		o.SnowCount = parameter.SnowCount
	}
	if o.RippleRings == 0 {
		o.RippleRings = parameter.RippleRings
	}
	if o.RipplePerRing == 0 {
		o.RipplePerRing = parameter.RipplePerRing
	}
	if o.BannerText == "" {
		o.BannerText = parameter.BannerText
	}
	return o
}

// Scene aggregates the populations, the formation machine, and the
// camera, advancing them frame-synchronously in a fixed order so
// ordering is a contract rather than a scheduling artifact
type Scene struct {
	machine *formation.Machine
	camera  *CameraController

	ornaments *Ornaments
	ripples   *Ripples
	meteors   *Meteors
	snow      *Snow
	banner    *Banner
	emblem    *Emblem

	elapsed float64
}

// New builds all per-instance seed data. Everything random draws from a
// single seeded generator, so a fixed seed reproduces placement exactly
func New(opts Options) *Scene {
	opts = opts.withDefaults()
	rng := vmath.NewFastRand(opts.Seed)

	points := glyph.Sample(
		opts.BannerText,
		glyph.DefaultFace(),
		parameter.BannerSampleStride,
		parameter.BannerBrightnessThreshold,
		parameter.BannerPointScale,
	)

	return &Scene{
		machine:   formation.NewMachine(),
		camera:    NewCameraController(),
		ornaments: NewOrnaments(opts.OrnamentCount, rng),
		ripples:   NewRipples(opts.RippleRings, opts.RipplePerRing),
		meteors:   NewMeteors(opts.MeteorCount, rng),
		snow:      NewSnow(opts.SnowCount, rng),
		banner:    NewBanner(points),
		emblem:    NewEmblem(),
	}
}

// Machine exposes the formation machine for listener wiring
func (s *Scene) Machine() *formation.Machine { return s.machine }

// Ornaments exposes the main swarm, mainly for tests
func (s *Scene) Ornaments() *Ornaments { return s.ornaments }

// Advance steps the whole scene by dt seconds using the latest gesture
// signal and returns the frame snapshot. The camera pose is computed
// before the populations so camera-anchored instances see this frame's
// pose, not the previous one
func (s *Scene) Advance(dt float64, sig gesture.Signal) Frame {
	dt = vmath.ClampDt(dt)
	s.elapsed += dt

	state := s.machine.Apply(sig)
	pose := s.camera.Update(sig, dt)

	fr := FrameContext{
		Elapsed: s.elapsed,
		Dt:      dt,
		State:   state,
		Signal:  sig,
		Camera:  pose,
	}

	s.ornaments.Update(&fr)
	s.ripples.Update(&fr)
	s.meteors.Update(&fr)
	s.snow.Update(&fr)
	s.banner.Update(&fr)
	s.emblem.Update(&fr)

	return Frame{
		State:     state,
		Camera:    pose,
		Ornaments: s.ornaments.Instances(),
		Ripples:   s.ripples.Instances(),
		Meteors:   s.meteors.Instances(),
		Snow:      s.snow.Instances(),
		Banner:    s.banner.Instances(),
		Emblem:    s.emblem.Instances(),
	}
}
