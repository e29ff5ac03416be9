package scene

import (
	"math"

	"github.com/veilstar/lumen/gesture"
	"github.com/veilstar/lumen/parameter"
	"github.com/veilstar/lumen/vmath"
)

// CameraController smooths an orbit yaw/pitch pair derived from the
// gesture position toward the live camera pose. Targets hold their last
// value while no hand is detected, mirroring the formation machine's
// treatment of absence
type CameraController struct {
	targetYaw   float64
	targetPitch float64
	position    vmath.Vec3
}

func NewCameraController() *CameraController {
	c := &CameraController{}
	c.position = c.targetPosition()
	return c
}

func (c *CameraController) targetPosition() vmath.Vec3 {
	sin, cos := math.Sincos(c.targetYaw)
	return vmath.Vec3{
		X: parameter.CameraDistance * sin,
		Y: c.targetPitch*parameter.CameraPitchHeightGain + parameter.CameraBaseHeight,
		Z: parameter.CameraDistance * cos,
	}
}

// Update advances the smoothed pose by one frame and returns it
// The camera always looks at the origin
func (c *CameraController) Update(sig gesture.Signal, dt float64) CameraPose {
	if sig.Detected {
		c.targetYaw = (sig.PosX - 0.5) * parameter.CameraYawGain
		c.targetPitch = (sig.PosY - 0.5) * parameter.CameraPitchGain
	}

	c.position = vmath.V3Approach(c.position, c.targetPosition(), parameter.CameraSmoothRate, dt)

	return CameraPose{
		Position: c.position,
		LookAt:   vmath.Vec3{},
	}
}
