package parameter

// Banner population: particle-rendered text with a traveling highlight
const (
	// BannerText is the fixed string rasterized at startup
	BannerText = "MERRY CHRISTMAS"

	// BannerPointScale converts bitmap pixels to world units
	BannerPointScale = 0.08

	// BannerSampleStride is the pixel scan stride of the sampler
	BannerSampleStride = 2

	// BannerBrightnessThreshold is the 8-bit luma above which a pixel
	// becomes a glyph point
	BannerBrightnessThreshold = 128

	// BannerOffsetDistance places the banner this far in front of the camera
	BannerOffsetDistance = 12.0

	// BannerOffsetY lifts the banner relative to the camera forward axis
	BannerOffsetY = 1.5

	// BannerSweepSpeed is the highlight band speed (world units/sec)
	BannerSweepSpeed = 6.0

	// BannerSweepMin/Max bound the wrapping sweep position
	BannerSweepMin = -14.0
	BannerSweepMax = 14.0

	// BannerFalloffRadius is the highlight band half-width
	BannerFalloffRadius = 2.5

	// BannerHighlightBoost multiplies glyph scale at the band center
	BannerHighlightBoost = 2.0

	// BannerBaseSize is the billboard size of one glyph point
	BannerBaseSize = 0.06

	// BannerFadeRate smooths banner opacity when formation flips (1/sec)
	BannerFadeRate = 2.5

	// BannerEpsilon marks the banner skippable below this opacity
	BannerEpsilon = 0.01
)
