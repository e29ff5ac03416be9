// Package scene owns the particle populations and recomputes every
// instance's transform and color each frame from elapsed time, the
// formation state, and the gesture signal.
package scene

import (
	"github.com/veilstar/lumen/formation"
	"github.com/veilstar/lumen/gesture"
	"github.com/veilstar/lumen/vmath"
)

// Instance is one billboarded renderable's per-frame output
// Color is linear RGB; components above 1 drive the renderer's
// additive/emissive look
type Instance struct {
	Position vmath.Vec3
	Scale    float64
	Color    Color

	// Billboard instances face the camera; otherwise RotY applies
	Billboard bool
	RotY      float64

	// Visible false means scale-to-zero: the renderer may skip it
	Visible bool
}

// CameraPose is the smoothed camera output, one per frame
type CameraPose struct {
	Position vmath.Vec3
	LookAt   vmath.Vec3
}

// FrameContext carries the per-frame inputs shared by every population
type FrameContext struct {
	Elapsed float64
	Dt      float64
	State   formation.State
	Signal  gesture.Signal
	Camera  CameraPose
}

// Population is the shared per-frame contract. Update fully rewrites
// the instance buffer; zero instances is a valid no-op
type Population interface {
	Name() string
	Update(fr *FrameContext)
	Instances() []Instance
}

// Frame is the per-advance snapshot handed to the renderer. Buffers are
// complete when Advance returns and stay untouched until the next
// Advance; no partial mid-frame edits are ever observable
type Frame struct {
	State     formation.State
	Camera    CameraPose
	Ornaments []Instance
	Ripples   []Instance
	Meteors   []Instance
	Snow      []Instance
	Banner    []Instance
	Emblem    []Instance
}
