package parameter

// Emblem: the single top ornament, spinning in lockstep with the tree
const (
	// EmblemY places the emblem just above the tree tip
	EmblemY = TreeHeight + 0.8

	// EmblemSize is the billboard size at full opacity
	EmblemSize = 1.2

	// EmblemFadeRate smooths opacity/scale toward the formation target (1/sec)
	EmblemFadeRate = 2.5

	// EmblemEpsilon marks the emblem skippable below this opacity
	EmblemEpsilon = 0.01
)
