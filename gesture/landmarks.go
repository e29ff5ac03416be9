// Package gesture classifies hand-landmark frames into a discrete
// open/closed signal with palm position and rotation.
package gesture

// Hand landmark indices, MediaPipe hand-landmarker convention
const (
	Wrist     = 0
	ThumbTip  = 4
	IndexMCP  = 5
	IndexTip  = 8
	MiddleMCP = 9
	MiddleTip = 12
	RingTip   = 16
	PinkyTip  = 20

	// NumLandmarks is the full MediaPipe point count per hand
	NumLandmarks = 21

	// MinLandmarks is the smallest frame the classifier accepts:
	// it must cover the wrist, four fingertips and the palm base
	MinLandmarks = 21
)

// Point is one detector keypoint in normalized image coordinates,
// x and y in [0,1], z in detector depth units
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LandmarkFrame is one detector invocation's output, immutable once
// received. Points follow MediaPipe index order
type LandmarkFrame struct {
	Points []Point `json:"points"`
}

// Valid reports whether the frame carries enough points to classify
func (f LandmarkFrame) Valid() bool {
	return len(f.Points) >= MinLandmarks
}
