package scene

import (
	"math"
	"testing"

	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/gesture"
	"github.com/veilstar/lumen/vmath"
)

func smallScene() *Scene {
	return New(Options{
		Seed:          7,
		OrnamentCount: 16,
		MeteorCount:   4,
		SnowCount:     4,
		RippleRings:   2,
		RipplePerRing: 4,
		BannerText:    "HI",
	})
}

func TestSceneAdvanceBufferShape(t *testing.T) {
	s := smallScene()
	frame := s.Advance(1.0/60, gesture.Signal{})

	if frame.State != formation.Gathered {
		t.Errorf("Expected initial gathered state, got %v", frame.State)
	}
	if len(frame.Ornaments) != 16 {
		t.Errorf("Expected 16 ornaments, got %d", len(frame.Ornaments))
	}
	if len(frame.Meteors) != 4 {
		t.Errorf("Expected 4 meteors, got %d", len(frame.Meteors))
	}
	if len(frame.Snow) != 4 {
		t.Errorf("Expected 4 snow flakes, got %d", len(frame.Snow))
	}
	if len(frame.Ripples) != 8 {
		t.Errorf("Expected 8 ripple instances, got %d", len(frame.Ripples))
	}
	if len(frame.Banner) == 0 {
		t.Error("Expected banner glyphs from a non-empty string")
	}
	if len(frame.Emblem) != 1 {
		t.Errorf("Expected 1 emblem instance, got %d", len(frame.Emblem))
	}
}

func TestSceneFormationFlipThroughSignal(t *testing.T) {
	s := smallScene()

	frame := s.Advance(1.0/60, gesture.Signal{Detected: true, Open: true})
	if frame.State != formation.Scattered {
		t.Errorf("Expected scattered after open hand, got %v", frame.State)
	}

	// Absent hand holds the formation
	frame = s.Advance(1.0/60, gesture.Signal{})
	if frame.State != formation.Scattered {
		t.Errorf("Expected scattered to persist, got %v", frame.State)
	}

	frame = s.Advance(1.0/60, gesture.Signal{Detected: true, Open: false})
	if frame.State != formation.Gathered {
		t.Errorf("Expected gathered after closed hand, got %v", frame.State)
	}
}

func TestSceneSurvivesHostileDt(t *testing.T) {
	s := smallScene()

	for _, dt := range []float64{math.NaN(), math.Inf(1), -5, 1e9, 0} {
		frame := s.Advance(dt, gesture.Signal{Detected: true, Open: true})
		for _, inst := range frame.Ornaments {
			if math.IsNaN(inst.Position.X) || math.IsNaN(inst.Position.Y) || math.IsNaN(inst.Position.Z) {
				t.Fatalf("dt=%v produced NaN position", dt)
			}
			if inst.Scale < 0 || math.IsNaN(inst.Scale) {
				t.Fatalf("dt=%v produced bad scale %v", dt, inst.Scale)
			}
		}
	}
}

func TestSceneOrnamentPathContinuity(t *testing.T) {
	s := smallScene()
	dt := 1.0 / 60

	s.Advance(dt, gesture.Signal{Detected: true, Open: false})
	prev := capturePositions(s.ornaments)

	// Flip mid-flight, then watch per-frame steps: smoothing bounds each
	// step by remaining-distance*rate*dt plus jitter, far below 5 units
	for i := 0; i < 200; i++ {
		frame := s.Advance(dt, gesture.Signal{Detected: true, Open: true})
		for j, inst := range frame.Ornaments {
			if step := vmath.V3Dist(prev[j], inst.Position); step > 5.0 {
				t.Fatalf("Ornament %d teleported %v units in one frame", j, step)
			}
		}
		prev = capturePositions(s.ornaments)
	}
}

func capturePositions(o *Ornaments) []vmath.Vec3 {
	out := make([]vmath.Vec3, len(o.buf))
	for i, inst := range o.buf {
		out[i] = inst.Position
	}
	return out
}
