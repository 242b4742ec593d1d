package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/interferometer/assets"
	"github.com/meghashyamc/interferometer/geometry"
	"github.com/meghashyamc/interferometer/interferometer"
	"github.com/meghashyamc/interferometer/report"
)

var (
	backgroundColor = color.RGBA{178, 178, 178, 255}
	tableColor      = color.RGBA{230, 230, 230, 255}
	particleColor   = color.RGBA{220, 30, 30, 255}
	semiColor       = color.RGBA{230, 120, 20, 255}
	resultantColor  = color.RGBA{140, 20, 200, 255}
	barColor        = color.RGBA{40, 40, 160, 255}

	elementColors = map[interferometer.ElementKind]color.Color{
		interferometer.LaserEngine:  color.Black,
		interferometer.BeamSplitter: color.White,
		interferometer.MirrorRight:  color.RGBA{60, 60, 60, 255},
		interferometer.MirrorBottom: color.RGBA{60, 60, 60, 255},
		interferometer.Receptor:     color.RGBA{20, 120, 20, 255},
	}
)

const particleRadius = 2

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	v.drawTable(screen)
	v.drawElements(screen)
	v.drawParticles(screen)
	v.drawPatternBars(screen)
	v.drawText(screen)
}

// drawTable shades the field of play, with a margin of five units.
func (v *Viewer) drawTable(screen *ebiten.Image) {
	scene := v.world.Scene()
	const margin = 5 * pixelsPerUnit
	left, top := toScreen(geometry.Vector{X: scene.Engine.Position.X, Y: scene.Receptor.Position.Y})
	right, bottom := toScreen(geometry.Vector{X: scene.MirrorRight.Position.X, Y: scene.MirrorBottom.Position.Y})
	vector.DrawFilledRect(screen, left-margin, top-margin, right-left+2*margin, bottom-top+2*margin, tableColor, false)
}

func (v *Viewer) drawElements(screen *ebiten.Image) {
	for _, el := range v.world.Scene().Elements() {
		a, b := el.Ends()
		x0, y0 := toScreen(a)
		x1, y1 := toScreen(b)
		width := float32(3)
		if el.Kind == interferometer.LaserEngine {
			width = 20
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, width, elementColors[el.Kind], true)
	}
}

func (v *Viewer) drawParticles(screen *ebiten.Image) {
	for _, p := range v.snapshot.Particles {
		if !p.Visible {
			continue
		}
		x, y := toScreen(p.Position)
		col := particleColor
		switch {
		case p.Resultant:
			col = resultantColor
		case p.Semi:
			col = semiColor
		}
		vector.DrawFilledCircle(screen, x, y, particleRadius, col, true)
	}
}

// drawPatternBars draws one bar per slot above the receptor, as tall as its hit count
// relative to the busiest slot.
func (v *Viewer) drawPatternBars(screen *ebiten.Image) {
	pattern := v.snapshot.Pattern
	peak := 0
	for _, hits := range pattern {
		peak = max(peak, hits)
	}
	if peak == 0 {
		return
	}

	const maxHeight = 40
	receptor := v.world.Scene().Receptor
	beam := v.world.Beam()
	for slot, hits := range pattern {
		if hits == 0 {
			continue
		}
		at := receptor.Position
		at.X = beam.SlotY(slot)
		x, y := toScreen(at)
		h := float32(maxHeight * hits / peak)
		vector.DrawFilledRect(screen, x-2, y-h-4, 4, h, barColor, false)
	}
}

func (v *Viewer) drawText(screen *ebiten.Image) {
	stats := v.world.Stats()
	status := fmt.Sprintf("Tick: %d  Particles: %d  Rate: %d/s  Absorbed: %d  Recombined: %d",
		v.snapshot.Tick, len(v.world.Particles()), v.rate, stats.Absorbed, stats.Recombined)
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, 10)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, status, assets.LabelFont, op)

	diamond := report.Diamond(v.snapshot.Pattern)
	op2 := &text.DrawOptions{}
	op2.GeoM.Translate(20, 60)
	op2.LineSpacing = 16
	op2.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, diamond, assets.PatternFont, op2)

	instructionText := "Space: pause  Up/Down: rate  Left/Right: right mirror  W/S: bottom mirror  P: print pattern"
	op3 := &text.DrawOptions{}
	op3.GeoM.Translate(20, screenHeight-30)
	op3.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, instructionText, assets.LabelFont, op3)

	if v.message != "" {
		op4 := &text.DrawOptions{}
		op4.GeoM.Scale(2.0, 2.0)
		op4.GeoM.Translate(screenWidth/2-60, 40)
		op4.ColorScale.ScaleWithColor(color.RGBA{200, 30, 30, 255})
		text.Draw(screen, v.message, assets.LabelFont, op4)
	}
}
