package parameter

import "time"

// Frame loop
const (
	// EngineTickInterval is the fixed frame step of the demo loop (~60fps)
	EngineTickInterval = 16 * time.Millisecond

	// DefaultSeed seeds scene generation when config supplies none
	DefaultSeed = 0x5eed1e55
)
