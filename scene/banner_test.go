package scene

import (
	"math"
	"testing"

	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/parameter"
	"github.com/veilstar/lumen/vmath"
)

func bannerContext(state formation.State, elapsed float64) FrameContext {
	return FrameContext{
		Elapsed: elapsed,
		Dt:      1.0 / 60,
		State:   state,
		Camera: CameraPose{
			Position: vmath.Vec3{Y: parameter.CameraBaseHeight, Z: parameter.CameraDistance},
			LookAt:   vmath.Vec3{},
		},
	}
}

func TestBannerFadesInWhileScattered(t *testing.T) {
	b := NewBanner([]vmath.Vec3{{X: 0}})

	fr := bannerContext(formation.Scattered, 0)
	for i := 0; i < 600; i++ {
		b.Update(&fr)
	}
	if b.opacity < 0.99 {
		t.Errorf("Expected opacity near 1 while scattered, got %v", b.opacity)
	}
	if !b.buf[0].Visible {
		t.Error("Expected visible banner while scattered")
	}

	fr = bannerContext(formation.Gathered, 0)
	for i := 0; i < 600; i++ {
		b.Update(&fr)
	}
	if b.opacity > parameter.BannerEpsilon {
		t.Errorf("Expected opacity below epsilon while gathered, got %v", b.opacity)
	}
	if b.buf[0].Visible {
		t.Error("Expected skippable banner while gathered")
	}
}

func TestBannerHighlightBand(t *testing.T) {
	// One glyph on the sweep line, one far away
	b := NewBanner([]vmath.Vec3{{X: 0}, {X: 10}})
	b.opacity = 1

	// sweep = min + mod(speed*t, span); speed*t = -min puts it at x=0
	elapsed := -parameter.BannerSweepMin / parameter.BannerSweepSpeed
	fr := bannerContext(formation.Scattered, elapsed)
	b.Update(&fr)

	center := b.buf[0]
	far := b.buf[1]

	wantBoosted := parameter.BannerBaseSize * (1 + parameter.BannerHighlightBoost)
	if math.Abs(center.Scale-wantBoosted) > 1e-9 {
		t.Errorf("Expected full boost %v at band center, got %v", wantBoosted, center.Scale)
	}
	if math.Abs(far.Scale-parameter.BannerBaseSize) > 1e-9 {
		t.Errorf("Expected base scale %v outside band, got %v", parameter.BannerBaseSize, far.Scale)
	}

	// Highlight blends toward the bright tint
	if center.Color.R <= far.Color.R {
		t.Errorf("Expected brighter color at band center: %v vs %v", center.Color, far.Color)
	}
}

func TestBannerFacesCamera(t *testing.T) {
	// Glyph offsets land in the plane perpendicular to the view axis, a
	// fixed distance in front of the camera
	b := NewBanner([]vmath.Vec3{{}})
	b.opacity = 1

	fr := bannerContext(formation.Scattered, 0)
	b.Update(&fr)

	forward := vmath.V3Normalize(vmath.V3Sub(fr.Camera.LookAt, fr.Camera.Position))
	wantCenter := vmath.V3Add(fr.Camera.Position, vmath.V3Scale(forward, parameter.BannerOffsetDistance))
	wantCenter.Y += parameter.BannerOffsetY

	if vmath.V3Dist(b.buf[0].Position, wantCenter) > 1e-9 {
		t.Errorf("Expected center glyph at %v, got %v", wantCenter, b.buf[0].Position)
	}
}

func TestBannerEmptyPoints(t *testing.T) {
	b := NewBanner(nil)
	fr := bannerContext(formation.Scattered, 1)
	b.Update(&fr) // degraded banner must be a safe no-op
	if len(b.Instances()) != 0 {
		t.Errorf("Expected empty buffer, got %d", len(b.Instances()))
	}
}
