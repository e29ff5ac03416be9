// Package render draws the frame snapshot into a terminal as a cheap
// preview surface. The real renderer consumes the same buffers; this
// exists so the engine can be watched without a GPU pipeline.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/veilstar/lumen/scene"
)

// Glyphs per population
const (
	runeSnow     = '.'
	runeOrnament = 'o'
	runeMeteor   = '*'
	runeRipple   = '~'
	runeBanner   = '#'
	runeEmblem   = '@'
)

// World-to-cell scale; terminal cells are ~2x taller than wide
const (
	scaleX = 2.0
	scaleY = 1.0
)

// View projects frames onto a tcell screen with a fixed oblique
// front view: z contributes a slight diagonal shift for depth cueing
type View struct {
	screen        tcell.Screen
	width, height int
}

func NewView() (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("render view: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("render view init: %w", err)
	}

	v := &View{screen: screen}
	v.width, v.height = screen.Size()
	return v, nil
}

// Screen exposes the underlying screen for event polling
func (v *View) Screen() tcell.Screen { return v.screen }

// HandleResize refreshes cached dimensions
func (v *View) HandleResize() {
	v.width, v.height = v.screen.Size()
}

// Draw renders one frame snapshot and a status line
func (v *View) Draw(frame scene.Frame) {
	v.screen.Clear()

	v.drawPopulation(frame.Snow, runeSnow)
	v.drawPopulation(frame.Ripples, runeRipple)
	v.drawPopulation(frame.Ornaments, runeOrnament)
	v.drawPopulation(frame.Meteors, runeMeteor)
	v.drawPopulation(frame.Banner, runeBanner)
	v.drawPopulation(frame.Emblem, runeEmblem)

	v.drawStatus(frame)
	v.screen.Show()
}

func (v *View) drawPopulation(instances []scene.Instance, r rune) {
	cx := v.width / 2
	cy := v.height * 3 / 4 // ground line in the lower part of the screen

	for i := range instances {
		inst := &instances[i]
		if !inst.Visible {
			continue
		}

		x := cx + int((inst.Position.X+inst.Position.Z*0.3)*scaleX)
		y := cy - int((inst.Position.Y+inst.Position.Z*0.15)*scaleY)
		if x < 0 || x >= v.width || y < 0 || y >= v.height {
			continue
		}

		v.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(cellColor(inst.Color)))
	}
}

func (v *View) drawStatus(frame scene.Frame) {
	status := fmt.Sprintf(" formation: %s  camera: (%.1f, %.1f, %.1f) ",
		frame.State,
		frame.Camera.Position.X, frame.Camera.Position.Y, frame.Camera.Position.Z,
	)
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		if i >= v.width {
			break
		}
		v.screen.SetContent(i, 0, r, nil, style)
	}
}

// cellColor clamps the emissive color into terminal RGB
func cellColor(c scene.Color) tcell.Color {
	return tcell.NewRGBColor(clamp255(c.R), clamp255(c.G), clamp255(c.B))
}

func clamp255(f float64) int32 {
	v := int32(f * 255)
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return v
}

// Fini restores the terminal
func (v *View) Fini() {
	v.screen.Fini()
}
