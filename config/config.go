package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Michelson Interferometer")
	v.SetDefault("simulation.mode", "regular")
	v.SetDefault("simulation.rate", 200)
	v.SetDefault("simulation.particles", 5)
	v.SetDefault("simulation.cap", 2500)
	v.SetDefault("simulation.speed", 0.25)
	v.SetDefault("simulation.spacing", 0.5)
	v.SetDefault("simulation.precision", 3)
	v.SetDefault("simulation.splitter", "deterministic")
	v.SetDefault("simulation.pattern", "accumulate")
	v.SetDefault("report.every", 200)
	v.SetDefault("log.level", "info")
}

// BindFlags lets command-line flags override the environment and the config file.
// Flags are looked up by their upper-case environment key, e.g. --mode sets SIM_MODE.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"SIM_MODE":   "mode",
		"HEADLESS":   "headless",
		"RUN_TICKS":  "ticks",
		"SCENE_FILE": "scene",
		"LOG_LEVEL":  "log-level",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := c.config.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetMode() string {
	mode := c.config.GetString("SIM_MODE")
	if len(mode) == 0 {
		mode = c.config.GetString("simulation.mode")
	}

	return mode
}

func (c *Config) GetRate() int {
	rate := c.config.GetInt("SIM_RATE")
	if rate == 0 {
		rate = c.config.GetInt("simulation.rate")
	}

	return rate
}

func (c *Config) GetParticles() int {
	particles := c.config.GetInt("SIM_PARTICLES")
	if particles == 0 {
		particles = c.config.GetInt("simulation.particles")
	}

	return particles
}

func (c *Config) GetCap() int {
	particleCap := c.config.GetInt("SIM_CAP")
	if particleCap == 0 {
		particleCap = c.config.GetInt("simulation.cap")
	}

	return particleCap
}

func (c *Config) GetSpeed() float64 {
	speed := c.config.GetFloat64("SIM_SPEED")
	if speed == 0 {
		speed = c.config.GetFloat64("simulation.speed")
	}

	return speed
}

func (c *Config) GetSpacing() float64 {
	spacing := c.config.GetFloat64("SIM_SPACING")
	if spacing == 0 {
		spacing = c.config.GetFloat64("simulation.spacing")
	}

	return spacing
}

// GetPrecision has no zero fallback check on the env key: zero decimals is valid.
func (c *Config) GetPrecision() int {
	if c.config.IsSet("SIM_PRECISION") {
		return c.config.GetInt("SIM_PRECISION")
	}

	return c.config.GetInt("simulation.precision")
}

func (c *Config) GetSplitterMode() string {
	splitter := c.config.GetString("SIM_SPLITTER")
	if len(splitter) == 0 {
		splitter = c.config.GetString("simulation.splitter")
	}

	return splitter
}

func (c *Config) GetPatternMode() string {
	pattern := c.config.GetString("SIM_PATTERN")
	if len(pattern) == 0 {
		pattern = c.config.GetString("simulation.pattern")
	}

	return pattern
}

// GetSeed returns the seed of the probabilistic splitter, zero meaning time based.
func (c *Config) GetSeed() int64 {
	seed := c.config.GetInt64("SIM_SEED")
	if seed == 0 {
		seed = c.config.GetInt64("simulation.seed")
	}

	return seed
}

func (c *Config) GetSceneFile() string {
	sceneFile := c.config.GetString("SCENE_FILE")
	if len(sceneFile) == 0 {
		sceneFile = c.config.GetString("scene.file")
	}

	return sceneFile
}

func (c *Config) GetReportEvery() int {
	every := c.config.GetInt("REPORT_EVERY")
	if every == 0 {
		every = c.config.GetInt("report.every")
	}

	return every
}

func (c *Config) GetLogLevel() string {
	level := c.config.GetString("LOG_LEVEL")
	if len(level) == 0 {
		level = c.config.GetString("log.level")
	}

	return level
}

func (c *Config) GetHeadless() bool {
	headless := c.config.GetBool("HEADLESS")
	if !headless {
		headless = c.config.GetBool("run.headless")
	}

	return headless
}

// GetTicks returns how many ticks a headless run lasts, zero meaning until stopped.
func (c *Config) GetTicks() int {
	ticks := c.config.GetInt("RUN_TICKS")
	if ticks == 0 {
		ticks = c.config.GetInt("run.ticks")
	}

	return ticks
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
