package gesture

import (
	"math"

	"github.com/veilstar/lumen/parameter"
)

// Signal is the discrete per-frame gesture output
// Purely derived from the latest frame, no memory of prior frames;
// state persistence belongs to the formation machine
type Signal struct {
	Detected bool
	Open     bool

	// Position is the palm base in normalized image coordinates
	PosX, PosY float64

	// Rotation derived from the palm-vs-wrist offset
	RotX, RotY, RotZ float64
}

// Classify converts one landmark frame into a Signal
// A nil or short frame is treated identically to no detection
func Classify(frame *LandmarkFrame) Signal {
	if frame == nil || !frame.Valid() {
		return Signal{}
	}

	wrist := frame.Points[Wrist]
	palm := frame.Points[MiddleMCP]

	tips := [4]Point{
		frame.Points[IndexTip],
		frame.Points[MiddleTip],
		frame.Points[RingTip],
		frame.Points[PinkyTip],
	}

	var sum float64
	for _, tip := range tips {
		dx := tip.X - wrist.X
		dy := tip.Y - wrist.Y
		dz := tip.Z - wrist.Z
		sum += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	avgDist := sum / 4

	dy := palm.Y - wrist.Y
	dx := palm.X - wrist.X

	return Signal{
		Detected: true,
		Open:     avgDist > parameter.GestureOpenThreshold,
		PosX:     palm.X,
		PosY:     palm.Y,
		RotX:     parameter.GesturePitchGain * dy,
		RotY:     parameter.GestureYawGain * dx,
		RotZ:     math.Atan2(dy, dx),
	}
}
