package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/meghashyamc/interferometer/config"
	"github.com/meghashyamc/interferometer/interferometer"
	"github.com/meghashyamc/interferometer/logger"
	"github.com/meghashyamc/interferometer/report"
)

const (
	screenWidth  = 1200
	screenHeight = 800
)

type State int

const (
	StateRunning State = iota
	StatePaused
)

// Viewer is the windowed presentation of a World. It advances the world once per
// ebiten tick and draws the latest snapshot.
type Viewer struct {
	cfg      *config.Config
	world    *interferometer.World
	reporter *report.Reporter
	snapshot interferometer.Snapshot
	state    State
	rate     int
	logger   logger.Logger
	message  string
}

func New(cfg *config.Config, world *interferometer.World, reporter *report.Reporter, log logger.Logger) *Viewer {
	v := &Viewer{
		cfg:      cfg,
		world:    world,
		reporter: reporter,
		snapshot: interferometer.Snapshot{Pattern: world.Pattern()},
		state:    StateRunning,
		rate:     world.Settings().TickRate(),
		logger:   log,
	}

	v.logger.Info("viewer initialized", "rate", v.rate)
	return v
}

func (v *Viewer) Run() error {
	v.logger.Info("starting viewer")
	v.setupWindow()

	// Running the viewer calls Update() on every 'tick'
	return ebiten.RunGame(v)
}

func (v *Viewer) setupWindow() {
	ebiten.SetWindowSize(v.cfg.GetWindowWidth(), v.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(v.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(v.rate)
}

func (v *Viewer) Update() error {
	v.handleInput()

	if v.state == StatePaused {
		return nil
	}

	snap, err := v.world.Tick()
	if err != nil {
		v.logger.Error("simulation stopped", "err", err)
		return err
	}
	v.snapshot = snap

	if _, err := v.reporter.Observe(snap); err != nil {
		v.logger.Warn("failed to print pattern", "err", err)
	}
	return nil
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
