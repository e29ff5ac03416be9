package scene

import (
	"math"
	"testing"

	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/parameter"
)

func TestRippleRingZeroVisibilityWindow(t *testing.T) {
	r := NewRipples(2, 4)

	tests := []struct {
		elapsed     float64
		wantVisible bool
	}{
		{0.1, true},
		{2.9, true},
		{3.1, false},
		{6.4, false},
		{6.6, true},  // second cycle begins at 6.5
		{9.4, true},  // 9.4 mod 6.5 = 2.9
		{9.6, false}, // 9.6 mod 6.5 = 3.1
	}

	for _, tt := range tests {
		fr := FrameContext{Elapsed: tt.elapsed, State: formation.Gathered}
		r.Update(&fr)

		inst := r.Instances()[0] // ring 0, slot 0
		if inst.Visible != tt.wantVisible {
			t.Errorf("t=%v: expected visible=%v, got %v", tt.elapsed, tt.wantVisible, inst.Visible)
		}
		if tt.wantVisible && inst.Scale <= 0 {
			t.Errorf("t=%v: expected positive scale, got %v", tt.elapsed, inst.Scale)
		}
		if !tt.wantVisible && inst.Scale != 0 {
			t.Errorf("t=%v: expected zero scale, got %v", tt.elapsed, inst.Scale)
		}
	}
}

func TestRippleStaggerDelaysLaterRings(t *testing.T) {
	r := NewRipples(2, 4)

	// Before ring 1's stagger it must be invisible while ring 0 runs
	fr := FrameContext{Elapsed: 0.5, State: formation.Gathered}
	r.Update(&fr)

	if !r.Instances()[0].Visible {
		t.Error("Expected ring 0 visible at t=0.5")
	}
	if r.Instances()[4].Visible {
		t.Error("Expected ring 1 invisible before its stagger delay")
	}

	fr.Elapsed = 1.0
	r.Update(&fr)
	if !r.Instances()[4].Visible {
		t.Error("Expected ring 1 visible after its stagger delay")
	}
}

func TestRippleRadiusGrowthAndFade(t *testing.T) {
	r := NewRipples(1, 4)

	early := FrameContext{Elapsed: 0.3, State: formation.Gathered}
	r.Update(&early)
	earlyRadius := radiusOf(r.Instances()[0])
	earlyColor := r.Instances()[0].Color

	late := FrameContext{Elapsed: 2.8, State: formation.Gathered}
	r.Update(&late)
	lateRadius := radiusOf(r.Instances()[0])
	lateColor := r.Instances()[0].Color

	if lateRadius <= earlyRadius {
		t.Errorf("Expected radius growth, got %v -> %v", earlyRadius, lateRadius)
	}
	if lateColor.R >= earlyColor.R {
		t.Errorf("Expected opacity fade, got %v -> %v", earlyColor.R, lateColor.R)
	}
}

func TestRippleFormationFootprint(t *testing.T) {
	r := NewRipples(1, 4)

	// Same cycle phase, different formation: scattered reaches wider
	fr := FrameContext{Elapsed: 2.8, State: formation.Gathered}
	r.Update(&fr)
	gathered := radiusOf(r.Instances()[0])

	fr.State = formation.Scattered
	r.Update(&fr)
	scattered := radiusOf(r.Instances()[0])

	if scattered <= gathered {
		t.Errorf("Expected scattered footprint wider than gathered, got %v <= %v", scattered, gathered)
	}

	wantRatio := parameter.RippleMaxRadiusScattered / parameter.RippleMaxRadiusGathered
	if got := scattered / gathered; got < wantRatio*0.99 || got > wantRatio*1.01 {
		t.Errorf("Expected radius ratio %v, got %v", wantRatio, got)
	}
}

func TestRippleZeroInstances(t *testing.T) {
	r := NewRipples(0, 0)
	fr := FrameContext{Elapsed: 1}
	r.Update(&fr) // must not panic
	if len(r.Instances()) != 0 {
		t.Errorf("Expected empty buffer, got %d", len(r.Instances()))
	}
}

func radiusOf(inst Instance) float64 {
	p := inst.Position
	return math.Hypot(p.X, p.Z)
}
