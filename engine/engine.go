// Package engine drives the scene at a fixed frame cadence, bridging
// the detector's asynchronous landmark callbacks into the
// frame-synchronous Advance step.
package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/veilstar/lumen/gesture"
	"github.com/veilstar/lumen/scene"
)

// Engine owns the latest-signal mailbox and the frame loop
// Detector callbacks replace the latest signal without blocking; each
// Advance reads the most recent one, never waiting for a fresh frame
type Engine struct {
	scene  *scene.Scene
	clock  TimeProvider
	latest atomic.Pointer[gesture.Signal]
	closed atomic.Bool
}

func New(sc *scene.Scene, clock TimeProvider) *Engine {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	e := &Engine{
		scene: sc,
		clock: clock,
	}
	e.latest.Store(&gesture.Signal{})
	return e
}

// Scene returns the driven scene
func (e *Engine) Scene() *scene.Scene { return e.scene }

// SubmitFrame classifies one landmark frame and stores the resulting
// signal. Safe to call from the detector goroutine at any cadence;
// dropped after Close so no callback fires into a destroyed engine
func (e *Engine) SubmitFrame(frame *gesture.LandmarkFrame) {
	if e.closed.Load() {
		return
	}
	sig := gesture.Classify(frame)
	e.latest.Store(&sig)
}

// SubmitSignal stores a pre-classified signal (synthetic sources, tests)
func (e *Engine) SubmitSignal(sig gesture.Signal) {
	if e.closed.Load() {
		return
	}
	e.latest.Store(&sig)
}

// Advance steps the scene by dt using the latest signal
func (e *Engine) Advance(dt float64) scene.Frame {
	return e.scene.Advance(dt, *e.latest.Load())
}

// Run drives Advance on a fixed tick until ctx is canceled, invoking
// onFrame with each snapshot. dt is measured from the monotonic clock,
// not assumed from the tick interval
func (e *Engine) Run(ctx context.Context, interval time.Duration, onFrame func(scene.Frame)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := e.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := e.clock.Now()
			dt := now.Sub(last).Seconds()
			last = now

			frame := e.Advance(dt)
			if onFrame != nil {
				onFrame(frame)
			}
		}
	}
}

// Close stops accepting detector input. Call after canceling Run's
// context and closing the feed
func (e *Engine) Close() {
	e.closed.Store(true)
}
