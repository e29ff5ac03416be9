package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/gesture"
	"github.com/veilstar/lumen/scene"
)

func testScene() *scene.Scene {
	return scene.New(scene.Options{
		Seed:          3,
		OrnamentCount: 8,
		MeteorCount:   2,
		SnowCount:     2,
		RippleRings:   1,
		RipplePerRing: 2,
		BannerText:    "HI",
	})
}

// fakeClock advances a fixed step per Now call
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

func TestEngineSubmitSignalReachesAdvance(t *testing.T) {
	e := New(testScene(), nil)

	e.SubmitSignal(gesture.Signal{Detected: true, Open: true})
	frame := e.Advance(1.0 / 60)
	if frame.State != formation.Scattered {
		t.Errorf("Expected scattered after open signal, got %v", frame.State)
	}

	e.SubmitSignal(gesture.Signal{Detected: true, Open: false})
	frame = e.Advance(1.0 / 60)
	if frame.State != formation.Gathered {
		t.Errorf("Expected gathered after closed signal, got %v", frame.State)
	}
}

func TestEngineLatestSignalWins(t *testing.T) {
	e := New(testScene(), nil)

	// Burst of detector callbacks between frames: only the last one counts
	e.SubmitSignal(gesture.Signal{Detected: true, Open: true})
	e.SubmitSignal(gesture.Signal{Detected: true, Open: true})
	e.SubmitSignal(gesture.Signal{Detected: true, Open: false})

	frame := e.Advance(1.0 / 60)
	if frame.State != formation.Gathered {
		t.Errorf("Expected latest closed signal to win, got %v", frame.State)
	}
}

func TestEngineSubmitFrameClassifies(t *testing.T) {
	e := New(testScene(), nil)

	// Closed fist: fingertips right at the wrist
	frame := &gesture.LandmarkFrame{Points: make([]gesture.Point, gesture.MinLandmarks)}
	e.SubmitFrame(frame)

	out := e.Advance(1.0 / 60)
	if out.State != formation.Gathered {
		t.Errorf("Expected gathered from closed-fist frame, got %v", out.State)
	}

	// Malformed frame: too few landmarks must degrade to no detection
	e.SubmitFrame(&gesture.LandmarkFrame{Points: make([]gesture.Point, 5)})
	sig := *e.latest.Load()
	if sig.Detected {
		t.Error("Expected short landmark frame to classify as not detected")
	}
}

func TestEngineCloseDropsInput(t *testing.T) {
	e := New(testScene(), nil)
	e.Close()

	e.SubmitSignal(gesture.Signal{Detected: true, Open: true})
	frame := e.Advance(1.0 / 60)
	if frame.State != formation.Gathered {
		t.Errorf("Expected signal dropped after Close, got %v", frame.State)
	}

	e.SubmitFrame(&gesture.LandmarkFrame{Points: make([]gesture.Point, gesture.MinLandmarks)})
	if e.latest.Load().Detected {
		t.Error("Expected frame dropped after Close")
	}
}

func TestEngineRunMeasuresDtFromClock(t *testing.T) {
	clock := &fakeClock{step: 16 * time.Millisecond}
	e := New(testScene(), clock)

	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	e.Run(ctx, time.Millisecond, func(f scene.Frame) {
		frames++
		if len(f.Ornaments) != 8 {
			t.Errorf("Expected 8 ornaments per frame, got %d", len(f.Ornaments))
		}
		if frames >= 5 {
			cancel()
		}
	})

	if frames < 5 {
		t.Errorf("Expected at least 5 frames before cancel, got %d", frames)
	}
}
