package parameter

// Snow population: ambient looping volume, independent of formation
const (
	// SnowCount is the instance count
	SnowCount = 300

	// SnowFloorY respawns a flake once its y drops below this bound
	SnowFloorY = -20.0

	// SnowCeilMin/Max bound the respawn height above the volume
	SnowCeilMin = 25.0
	SnowCeilMax = 30.0

	// SnowHalfExtent bounds |x| and |z| of the volume
	SnowHalfExtent = 25.0

	// SnowSpeedMin/Max bound the per-flake fall speed (world units/sec
	// before SnowFallFactor)
	SnowSpeedMin = 1.0
	SnowSpeedMax = 3.0

	// SnowFallFactor multiplies speed*dt for the vertical step
	SnowFallFactor = 2.0

	// SnowDriftAmp/Freq shape the horizontal sinusoidal drift
	SnowDriftAmp  = 0.5
	SnowDriftFreq = 0.8

	// SnowSizeMin/Max bound flake billboard size
	SnowSizeMin = 0.05
	SnowSizeMax = 0.12
)
