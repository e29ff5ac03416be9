package parameter

// Ornament population
const (
	// OrnamentCount is the total instance count across all categories
	OrnamentCount = 1200

	// OrnamentPositionRate is the exponential smoothing rate (1/sec) for
	// position toward the formation target
	OrnamentPositionRate = 2.5

	// OrnamentScaleRate is the smoothing rate (1/sec) for instance scale
	OrnamentScaleRate = 2.5

	// OrnamentRotationSpeed is the rigid whole-formation spin about the
	// vertical axis while gathered (rad/sec)
	OrnamentRotationSpeed = 0.3

	// OrnamentScatterScale multiplies base size while scattered
	OrnamentScatterScale = 2.0

	// OrnamentJitterFreqMin/Max bound the per-axis sinusoidal jitter
	// frequency while scattered (Hz-ish, applied to elapsed seconds)
	OrnamentJitterFreqMin = 0.4
	OrnamentJitterFreqMax = 0.6

	// OrnamentJitterAmp is the per-axis jitter amplitude (world units)
	OrnamentJitterAmp = 0.015
)

// Ornament category weights, fractions of OrnamentCount
// Remainder after the first four goes to the accent category
const (
	OrnamentWeightBauble  = 0.60
	OrnamentWeightLight   = 0.15
	OrnamentWeightStarlet = 0.10
	OrnamentWeightBell    = 0.07
)

// Tree formation geometry
const (
	// TreeHeight is the cone height of the gathered formation (world units)
	TreeHeight = 14.0

	// TreeBaseRadius is the cone radius at the tree foot
	TreeBaseRadius = 5.0

	// ScatterRadiusMin/Max bound the spherical shell the swarm occupies
	// while scattered
	ScatterRadiusMin = 10.0
	ScatterRadiusMax = 18.0

	// OrnamentSizeMin/Max bound the per-instance base billboard size
	OrnamentSizeMin = 0.12
	OrnamentSizeMax = 0.30
)
