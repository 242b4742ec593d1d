package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/meghashyamc/interferometer/config"
	"github.com/meghashyamc/interferometer/interferometer"
	"github.com/meghashyamc/interferometer/logger"
	"github.com/meghashyamc/interferometer/report"
	"github.com/meghashyamc/interferometer/viewer"
)

func main() {
	flags := pflag.NewFlagSet("interferometer", pflag.ExitOnError)
	env := flags.String("env", "", "config environment, selects config/config.<env>.yaml")
	flags.String("mode", "", "emission mode: regular or wave")
	flags.Bool("headless", false, "run without a window, printing the pattern to stdout")
	flags.Int("ticks", 0, "stop a headless run after this many ticks (0 runs until interrupted)")
	flags.String("scene", "", "TOML scene file overriding the default element layout")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(*env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	if err := cfg.BindFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.GetLogLevel())
	world, err := newWorld(cfg, log)
	if err != nil {
		log.Error("failed to create world", "err", err)
		os.Exit(1)
	}
	reporter := report.NewReporter(os.Stdout, cfg.GetReportEvery())

	if cfg.GetHeadless() {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runHeadless(ctx, world, reporter, cfg.GetTicks()); err != nil {
			log.Error("error running simulation", "err", err)
			os.Exit(1)
		}
		return
	}

	v := viewer.New(cfg, world, reporter, log)
	if err := v.Run(); err != nil {
		log.Error("error running viewer", "err", err)
		os.Exit(1)
	}
}

func newWorld(cfg *config.Config, log logger.Logger) (*interferometer.World, error) {
	settings, err := settingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	scene := interferometer.DefaultScene()
	if path := cfg.GetSceneFile(); path != "" {
		if scene, err = interferometer.LoadScene(path); err != nil {
			return nil, err
		}
	}

	seed := cfg.GetSeed()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return interferometer.NewWorld(settings, scene, rand.New(rand.NewSource(seed)), log)
}

func settingsFromConfig(cfg *config.Config) (interferometer.Settings, error) {
	mode, err := interferometer.ParseMode(cfg.GetMode())
	if err != nil {
		return interferometer.Settings{}, err
	}
	splitter, err := interferometer.ParseSplitterMode(cfg.GetSplitterMode())
	if err != nil {
		return interferometer.Settings{}, err
	}
	pattern, err := interferometer.ParsePatternMode(cfg.GetPatternMode())
	if err != nil {
		return interferometer.Settings{}, err
	}

	return interferometer.Settings{
		Mode:      mode,
		Splitter:  splitter,
		Pattern:   pattern,
		Particles: cfg.GetParticles(),
		Cap:       cfg.GetCap(),
		Speed:     cfg.GetSpeed(),
		Spacing:   cfg.GetSpacing(),
		Precision: cfg.GetPrecision(),
		Rate:      cfg.GetRate(),
	}, nil
}

// runHeadless paces the world with a ticker and prints the pattern every few ticks.
// A limit of zero runs until ctx is cancelled.
func runHeadless(ctx context.Context, world *interferometer.World, reporter *report.Reporter, limit int) error {
	ticker := time.NewTicker(time.Second / time.Duration(world.Settings().TickRate()))
	defer ticker.Stop()

	var snap interferometer.Snapshot
	for limit == 0 || world.TickCount() < limit {
		select {
		case <-ctx.Done():
			return reporter.Report(snap)
		case <-ticker.C:
		}

		var err error
		if snap, err = world.Tick(); err != nil {
			return err
		}
		if _, err := reporter.Observe(snap); err != nil {
			return err
		}
	}
	return reporter.Report(snap)
}
