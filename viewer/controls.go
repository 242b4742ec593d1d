package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/interferometer/interferometer"
)

const minRate = 1

// handleInput applies the keyboard controls:
// space pauses, up/down change the rate, left/right move the right mirror,
// W/S move the bottom mirror and P prints the pattern.
func (v *Viewer) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.togglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v.setRate(v.rate * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v.setRate(v.rate / 2)
	}

	// Mirrors move one particle step at a time so that trajectories keep landing
	// exactly on their surfaces.
	step := v.world.Settings().Speed
	scene := v.world.Scene()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.moveElement(interferometer.MirrorRight, interferometer.AxisX, scene.MirrorRight.Position.X+step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.moveElement(interferometer.MirrorRight, interferometer.AxisX, scene.MirrorRight.Position.X-step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		v.moveElement(interferometer.MirrorBottom, interferometer.AxisY, scene.MirrorBottom.Position.Y+step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.moveElement(interferometer.MirrorBottom, interferometer.AxisY, scene.MirrorBottom.Position.Y-step)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if err := v.reporter.Report(v.snapshot); err != nil {
			v.logger.Warn("failed to print pattern", "err", err)
		}
	}
}

func (v *Viewer) togglePause() {
	if v.state == StatePaused {
		v.state = StateRunning
		v.message = ""
	} else {
		v.state = StatePaused
		v.message = "PAUSED"
	}
	v.logger.Debug("pause toggled", "state", v.state)
}

func (v *Viewer) setRate(rate int) {
	v.rate = clampValue(rate, minRate, interferometer.MaxRate)
	ebiten.SetTPS(v.rate)
	v.logger.Debug("rate changed", "rate", v.rate)
}

func (v *Viewer) moveElement(kind interferometer.ElementKind, axis interferometer.Axis, value float64) {
	if err := v.world.SetElementPosition(kind, axis, value); err != nil {
		v.logger.Warn("failed to move element", "element", kind.String(), "err", err)
	}
}
