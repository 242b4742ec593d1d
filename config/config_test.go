package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load("missing")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetMode(); got != "regular" {
		t.Errorf("GetMode() = %q, want regular", got)
	}
	if got := cfg.GetParticles(); got != 5 {
		t.Errorf("GetParticles() = %d, want 5", got)
	}
	if got := cfg.GetCap(); got != 2500 {
		t.Errorf("GetCap() = %d, want 2500", got)
	}
	if got := cfg.GetSpeed(); got != 0.25 {
		t.Errorf("GetSpeed() = %v, want 0.25", got)
	}
	if got := cfg.GetPrecision(); got != 3 {
		t.Errorf("GetPrecision() = %d, want 3", got)
	}
	if got := cfg.GetSplitterMode(); got != "deterministic" {
		t.Errorf("GetSplitterMode() = %q, want deterministic", got)
	}
	if got := cfg.GetPatternMode(); got != "accumulate" {
		t.Errorf("GetPatternMode() = %q, want accumulate", got)
	}
	if got := cfg.GetReportEvery(); got != 200 {
		t.Errorf("GetReportEvery() = %d, want 200", got)
	}
	if cfg.GetHeadless() {
		t.Error("GetHeadless() = true, want false")
	}
}

func TestLoadLocalConfigFile(t *testing.T) {
	cfg, err := Load(envLocal)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetWindowTitle(); got != "Michelson Interferometer" {
		t.Errorf("GetWindowTitle() = %q", got)
	}
	if got := cfg.GetRate(); got != 200 {
		t.Errorf("GetRate() = %d, want 200", got)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("SIM_MODE", "wave")
	t.Setenv("SIM_PARTICLES", "7")
	t.Setenv("SIM_SPEED", "0.5")
	t.Setenv("SIM_SEED", "42")
	t.Setenv("HEADLESS", "true")

	cfg, err := Load(envLocal)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetMode(); got != "wave" {
		t.Errorf("GetMode() = %q, want wave", got)
	}
	if got := cfg.GetParticles(); got != 7 {
		t.Errorf("GetParticles() = %d, want 7", got)
	}
	if got := cfg.GetSpeed(); got != 0.5 {
		t.Errorf("GetSpeed() = %v, want 0.5", got)
	}
	if got := cfg.GetSeed(); got != 42 {
		t.Errorf("GetSeed() = %d, want 42", got)
	}
	if !cfg.GetHeadless() {
		t.Error("GetHeadless() = false, want true")
	}
}

func TestZeroPrecisionFromEnvironment(t *testing.T) {
	t.Setenv("SIM_PRECISION", "0")

	cfg, err := Load(envLocal)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.GetPrecision(); got != 0 {
		t.Errorf("GetPrecision() = %d, want 0", got)
	}
}

func TestBindFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("mode", "", "")
	flags.Bool("headless", false, "")
	flags.Int("ticks", 0, "")
	flags.String("scene", "", "")
	if err := flags.Parse([]string{"--mode=wave", "--headless", "--ticks=600", "--scene=scenes/short_right_arm.toml"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load(envLocal)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.BindFlags(flags); err != nil {
		t.Fatalf("BindFlags() error = %v", err)
	}

	if got := cfg.GetMode(); got != "wave" {
		t.Errorf("GetMode() = %q, want wave", got)
	}
	if !cfg.GetHeadless() {
		t.Error("GetHeadless() = false, want true")
	}
	if got := cfg.GetTicks(); got != 600 {
		t.Errorf("GetTicks() = %d, want 600", got)
	}
	if got := cfg.GetSceneFile(); got != "scenes/short_right_arm.toml" {
		t.Errorf("GetSceneFile() = %q", got)
	}
	// log-level was not registered, so the file value stays.
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q, want info", got)
	}
}
