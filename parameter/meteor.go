package parameter

// Meteor population: orbiting streaks
const (
	// MeteorCount is the instance count
	MeteorCount = 40

	// MeteorSpeedMin/Max bound the per-instance angular rate (rad/sec)
	MeteorSpeedMin = 0.2
	MeteorSpeedMax = 0.8

	// MeteorRadiusGathered keeps orbits tight around the tree's outer edge
	MeteorRadiusGathered = 7.0

	// MeteorRadiusScattered loosens orbits into the surrounding cloud
	MeteorRadiusScattered = 16.0

	// MeteorRadiusRate is the smoothing rate (1/sec) between the two radii
	MeteorRadiusRate = 2.5

	// MeteorDriftAmp/Freq shape the independent vertical sinusoid
	MeteorDriftAmp  = 2.0
	MeteorDriftFreq = 0.7

	// MeteorPulseRate/Amp shape the scale pulse 1 + amp*sin(rate*t + phase)
	MeteorPulseRate = 3.0
	MeteorPulseAmp  = 0.3

	// MeteorBaseY lifts the orbit plane above the ground
	MeteorBaseY = 6.0

	// MeteorSize is the base billboard size
	MeteorSize = 0.25
)
