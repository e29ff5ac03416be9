package scene

import (
	"math"

	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/parameter"
	"github.com/veilstar/lumen/vmath"
)

// Category tags an ornament's mesh/material group
type Category uint8

const (
	CategoryBauble Category = iota
	CategoryLight
	CategoryStarlet
	CategoryBell
	CategoryAccent
	CategoryCount
)

func (c Category) String() string {
	switch c {
	case CategoryBauble:
		return "bauble"
	case CategoryLight:
		return "light"
	case CategoryStarlet:
		return "starlet"
	case CategoryBell:
		return "bell"
	case CategoryAccent:
		return "accent"
	}
	return "unknown"
}

// Emissive tints per category, fixed at startup
var categoryTints = [CategoryCount]Color{
	CategoryBauble:  mustHex("#e03a3a").Scaled(1.4),
	CategoryLight:   mustHex("#ffd75e").Scaled(1.8),
	CategoryStarlet: mustHex("#9ad6ff").Scaled(1.6),
	CategoryBell:    mustHex("#d9a441").Scaled(1.3),
	CategoryAccent:  mustHex("#7ce08a").Scaled(1.5),
}

// OrnamentRecord holds one instance's immutable seed data
type OrnamentRecord struct {
	Gathered  vmath.Vec3
	Scattered vmath.Vec3
	Category  Category
	Color     Color
	BaseSize  float64
}

// Ornaments is the main swarm: positions and scales low-pass toward the
// formation target, so a flip is a glide, not a teleport
type Ornaments struct {
	records []OrnamentRecord

	// Smoothed state, owned exclusively by this population
	positions []vmath.Vec3
	scales    []float64

	buf []Instance
}

// NewOrnaments generates count records with weighted-random categories
// and cone/shell placement, all drawn from rng
func NewOrnaments(count int, rng *vmath.FastRand) *Ornaments {
	o := &Ornaments{
		records:   make([]OrnamentRecord, count),
		positions: make([]vmath.Vec3, count),
		scales:    make([]float64, count),
		buf:       make([]Instance, count),
	}

	for i := 0; i < count; i++ {
		cat := drawCategory(rng)
		rec := OrnamentRecord{
			Gathered:  treePoint(rng),
			Scattered: shellPoint(rng),
			Category:  cat,
			Color:     categoryTints[cat],
			BaseSize:  rng.Range(parameter.OrnamentSizeMin, parameter.OrnamentSizeMax),
		}
		o.records[i] = rec

		// Start settled in the gathered formation
		o.positions[i] = rec.Gathered
		o.scales[i] = rec.BaseSize
	}
	return o
}

// drawCategory picks a category by cumulative weight
func drawCategory(rng *vmath.FastRand) Category {
	u := rng.Float64()
	switch {
	case u < parameter.OrnamentWeightBauble:
		return CategoryBauble
	case u < parameter.OrnamentWeightBauble+parameter.OrnamentWeightLight:
		return CategoryLight
	case u < parameter.OrnamentWeightBauble+parameter.OrnamentWeightLight+parameter.OrnamentWeightStarlet:
		return CategoryStarlet
	case u < parameter.OrnamentWeightBauble+parameter.OrnamentWeightLight+parameter.OrnamentWeightStarlet+parameter.OrnamentWeightBell:
		return CategoryBell
	}
	return CategoryAccent
}

// treePoint places an instance on the gathered cone surface with a
// little inward jitter so the silhouette reads as volume
func treePoint(rng *vmath.FastRand) vmath.Vec3 {
	h := rng.Float64() * parameter.TreeHeight
	r := parameter.TreeBaseRadius * (1 - h/parameter.TreeHeight)
	r *= 0.75 + 0.25*rng.Float64()
	angle := rng.Float64() * 2 * math.Pi
	return vmath.Vec3{
		X: r * math.Cos(angle),
		Y: h,
		Z: r * math.Sin(angle),
	}
}

// shellPoint places an instance in the scattered spherical shell
func shellPoint(rng *vmath.FastRand) vmath.Vec3 {
	radius := rng.Range(parameter.ScatterRadiusMin, parameter.ScatterRadiusMax)

	// Uniform direction on the unit sphere
	z := rng.Range(-1, 1)
	theta := rng.Float64() * 2 * math.Pi
	s := math.Sqrt(1 - z*z)
	dir := vmath.Vec3{X: s * math.Cos(theta), Y: z, Z: s * math.Sin(theta)}

	p := vmath.V3Scale(dir, radius)
	p.Y += parameter.TreeHeight / 2 // cloud centered on the tree middle
	return p
}

func (o *Ornaments) Name() string { return "ornaments" }

func (o *Ornaments) Instances() []Instance { return o.buf }

// Records exposes the immutable seed data, mainly for tests and tooling
func (o *Ornaments) Records() []OrnamentRecord { return o.records }

func (o *Ornaments) Update(fr *FrameContext) {
	spin := fr.Elapsed * parameter.OrnamentRotationSpeed

	for i := range o.records {
		rec := &o.records[i]

		target := rec.Gathered
		targetScale := rec.BaseSize
		if fr.State == formation.Scattered {
			target = rec.Scattered
			targetScale = rec.BaseSize * parameter.OrnamentScatterScale
		}

		o.positions[i] = vmath.V3Approach(o.positions[i], target, parameter.OrnamentPositionRate, fr.Dt)
		o.scales[i] = vmath.Approach(o.scales[i], targetScale, parameter.OrnamentScaleRate, fr.Dt)

		pos := o.positions[i]
		if fr.State == formation.Gathered {
			// Rigid whole-formation spin about the vertical axis
			pos = vmath.V3RotateY(pos, spin)
		} else {
			// Independent per-axis shimmer, index-seeded phase
			fx := jitterFreq(i, 0)
			fy := jitterFreq(i, 1)
			fz := jitterFreq(i, 2)
			pos.X += parameter.OrnamentJitterAmp * math.Sin(2*math.Pi*fx*fr.Elapsed+float64(i))
			pos.Y += parameter.OrnamentJitterAmp * math.Sin(2*math.Pi*fy*fr.Elapsed+float64(i)*1.7)
			pos.Z += parameter.OrnamentJitterAmp * math.Sin(2*math.Pi*fz*fr.Elapsed+float64(i)*2.3)
		}

		o.buf[i] = Instance{
			Position:  pos,
			Scale:     o.scales[i],
			Color:     rec.Color,
			Billboard: true,
			Visible:   true,
		}
	}
}

// jitterFreq derives a stable frequency in [min,max] from instance index
func jitterFreq(i, axis int) float64 {
	h := uint64(i)*2654435761 + uint64(axis)*40503
	frac := float64(h%1024) / 1024
	return parameter.OrnamentJitterFreqMin + frac*(parameter.OrnamentJitterFreqMax-parameter.OrnamentJitterFreqMin)
}
