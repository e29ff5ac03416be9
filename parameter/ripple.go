package parameter

// Ripple population: ground ring bursts
const (
	// RippleRings is the ring count R
	RippleRings = 6

	// RipplePerRing is the instance count P per ring
	RipplePerRing = 64

	// RippleCycleDuration is the firing period per ring (sec)
	RippleCycleDuration = 6.5

	// RippleStagger delays ring i by i*RippleStagger within the cycle (sec)
	RippleStagger = 0.9

	// RippleActiveWindow is how long a fired ring stays visible (sec)
	RippleActiveWindow = 3.0

	// RippleMaxRadiusGathered/Scattered are the final ring radii per
	// formation, scattered suggests a wider ambient footprint
	RippleMaxRadiusGathered  = 8.0
	RippleMaxRadiusScattered = 14.0

	// RippleGroundY keeps rings just above the ground plane
	RippleGroundY = 0.05

	// RippleSize is the billboard size of one ring instance
	RippleSize = 0.2
)
