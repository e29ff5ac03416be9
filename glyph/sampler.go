// Package glyph rasterizes a fixed string to an off-screen bitmap and
// extracts bright-pixel seed points. Runs once at scene construction;
// its output is immutable input to the banner population.
package glyph

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/veilstar/lumen/vmath"
)

// margin pads the bitmap around the drawn string (pixels)
const margin = 2

// Sample rasterizes text with the given face and emits one world-space
// point per bright pixel on the scan stride, centered on the origin.
// A nil face, empty text, or zero-area raster degrades to an empty set;
// the scene keeps rendering without the banner
func Sample(text string, face font.Face, stride int, threshold uint8, scale float64) []vmath.Vec3 {
	if text == "" || face == nil {
		return nil
	}
	if stride < 1 {
		stride = 1
	}

	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil() + 2*margin
	height := metrics.Ascent.Ceil() + metrics.Descent.Ceil() + 2*margin
	if width <= 2*margin || height <= 2*margin {
		return nil
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot: fixed.P(
			margin,
			margin+metrics.Ascent.Ceil(),
		),
	}
	drawer.DrawString(text)

	halfW := float64(width) / 2
	halfH := float64(height) / 2

	var points []vmath.Vec3
	for py := 0; py < height; py += stride {
		for px := 0; px < width; px += stride {
			if img.GrayAt(px, py).Y <= threshold {
				continue
			}
			points = append(points, vmath.Vec3{
				X: (float64(px) - halfW) * scale,
				Y: (halfH - float64(py)) * scale,
				Z: 0,
			})
		}
	}
	return points
}

// DefaultFace returns the bundled bitmap face used by the banner
func DefaultFace() font.Face {
	return basicfont.Face7x13
}
