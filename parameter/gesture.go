package parameter

// Hand openness classification
const (
	// GestureOpenThreshold is the mean fingertip-to-wrist distance (normalized
	// landmark units) above which the hand counts as open
	// Exactly at the threshold classifies as closed
	GestureOpenThreshold = 0.35

	// GesturePitchGain scales palm-vs-wrist vertical offset into rotation.x
	GesturePitchGain = 2.0

	// GestureYawGain scales palm-vs-wrist horizontal offset into rotation.y
	GestureYawGain = 2.0
)
