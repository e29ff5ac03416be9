package scene

import (
	"math"

	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/parameter"
	"github.com/veilstar/lumen/vmath"
)

var (
	bannerTint      = mustHex("#8fae5e").Scaled(1.2)
	bannerHighlight = mustHex("#fff6c8").Scaled(2.2)
)

// Banner renders the fixed text as glyph particles pinned in front of
// the camera, with a traveling highlight band while scattered
type Banner struct {
	points  []vmath.Vec3
	opacity float64
	buf     []Instance
}

// NewBanner takes the sampler's seed points; an empty set is a valid
// degraded banner (sampler backend unavailable)
func NewBanner(points []vmath.Vec3) *Banner {
	return &Banner{
		points: points,
		buf:    make([]Instance, len(points)),
	}
}

func (b *Banner) Name() string { return "banner" }

func (b *Banner) Instances() []Instance { return b.buf }

func (b *Banner) Update(fr *FrameContext) {
	target := 0.0
	if fr.State == formation.Scattered {
		target = 1.0
	}
	b.opacity = vmath.Approach(b.opacity, target, parameter.BannerFadeRate, fr.Dt)

	visible := b.opacity > parameter.BannerEpsilon

	// Banner plane: perpendicular to the camera's view of the origin,
	// a fixed distance out in front
	forward := vmath.V3Normalize(vmath.V3Sub(fr.Camera.LookAt, fr.Camera.Position))
	right := vmath.V3Normalize(vmath.V3Cross(vmath.Vec3{Y: 1}, forward))
	up := vmath.V3Cross(forward, right)

	center := vmath.V3Add(fr.Camera.Position, vmath.V3Scale(forward, parameter.BannerOffsetDistance))
	center.Y += parameter.BannerOffsetY

	// Sweep position advances and wraps within the fixed range
	span := parameter.BannerSweepMax - parameter.BannerSweepMin
	sweep := parameter.BannerSweepMin + math.Mod(parameter.BannerSweepSpeed*fr.Elapsed, span)

	for i, p := range b.points {
		// Traveling highlight: quartic falloff around the sweep line
		d := math.Abs(p.X - sweep)
		w := math.Max(0, 1-d/parameter.BannerFalloffRadius)
		w *= w * w * w

		pos := vmath.V3Add(center, vmath.V3Add(vmath.V3Scale(right, p.X), vmath.V3Scale(up, p.Y)))

		b.buf[i] = Instance{
			Position:  pos,
			Scale:     parameter.BannerBaseSize * (1 + parameter.BannerHighlightBoost*w),
			Color:     bannerTint.Blend(bannerHighlight, w).Scaled(b.opacity),
			Billboard: true,
			Visible:   visible,
		}
	}
}
