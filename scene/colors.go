package scene

import "github.com/lucasb-eyer/go-colorful"

// Color is linear RGB, components unclamped so emissive tints can
// exceed 1.0
type Color struct {
	R, G, B float64
}

// Scaled multiplies all components, used for opacity and emissive boost
func (c Color) Scaled(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Blend mixes toward other in RGB space by t in [0,1]
// Goes through go-colorful for components within gamut, falls back to
// linear mixing when an emissive component exceeds 1
func (c Color) Blend(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	if c.inGamut() && other.inGamut() {
		mixed := colorful.Color{R: c.R, G: c.G, B: c.B}.
			BlendRgb(colorful.Color{R: other.R, G: other.G, B: other.B}, t)
		return Color{mixed.R, mixed.G, mixed.B}
	}
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

func (c Color) inGamut() bool {
	return c.R >= 0 && c.R <= 1 && c.G >= 0 && c.G <= 1 && c.B >= 0 && c.B <= 1
}

// mustHex parses a compile-time color literal
func mustHex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("scene: bad color literal " + s)
	}
	return Color{c.R, c.G, c.B}
}
