package parameter

import "math"

// Orbital camera driven by gesture position
const (
	// CameraDistance is the orbit radius from the origin
	CameraDistance = 24.0

	// CameraBaseHeight is the camera height at neutral pitch
	CameraBaseHeight = 8.0

	// CameraSmoothRate is the pose smoothing rate (1/sec)
	CameraSmoothRate = 3.0

	// CameraYawGain maps (position.x - 0.5) to target yaw
	CameraYawGain = math.Pi

	// CameraPitchGain maps (position.y - 0.5) to the pitch proxy
	CameraPitchGain = math.Pi * 0.5

	// CameraPitchHeightGain converts the pitch proxy to camera height
	CameraPitchHeightGain = 20.0
)
