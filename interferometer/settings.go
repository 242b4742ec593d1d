package interferometer

import (
	"fmt"
	"strings"

	"github.com/meghashyamc/interferometer/geometry"
)

// Mode selects how the engine emits.
type Mode int

const (
	// ModeRegular fires the full beam whenever there is room under the cap.
	ModeRegular Mode = iota
	// ModeWave fires one particle per tick, sweeping the beam slots.
	ModeWave
)

// SplitterMode selects how the beam splitter treats incoming particles.
type SplitterMode int

const (
	// SplitterDeterministic duplicates particles into semiparticles and recombines them.
	SplitterDeterministic SplitterMode = iota
	// SplitterProbabilistic transmits or reflects each particle on a coin flip.
	SplitterProbabilistic
)

// PatternMode selects whether detector hits survive across ticks.
type PatternMode int

const (
	PatternAccumulate PatternMode = iota
	PatternReset
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "regular":
		return ModeRegular, nil
	case "wave":
		return ModeWave, nil
	}
	return 0, fmt.Errorf("unknown emission mode %q", s)
}

func (m Mode) String() string {
	if m == ModeWave {
		return "wave"
	}
	return "regular"
}

func ParseSplitterMode(s string) (SplitterMode, error) {
	switch strings.ToLower(s) {
	case "", "deterministic":
		return SplitterDeterministic, nil
	case "probabilistic":
		return SplitterProbabilistic, nil
	}
	return 0, fmt.Errorf("unknown splitter mode %q", s)
}

func (m SplitterMode) String() string {
	if m == SplitterProbabilistic {
		return "probabilistic"
	}
	return "deterministic"
}

func ParsePatternMode(s string) (PatternMode, error) {
	switch strings.ToLower(s) {
	case "", "accumulate":
		return PatternAccumulate, nil
	case "reset":
		return PatternReset, nil
	}
	return 0, fmt.Errorf("unknown pattern mode %q", s)
}

func (m PatternMode) String() string {
	if m == PatternReset {
		return "reset"
	}
	return "accumulate"
}

// MaxRate is the fastest tick rate a world may be driven at.
const MaxRate = 1000

// Settings is the immutable configuration of a World.
type Settings struct {
	Mode      Mode
	Splitter  SplitterMode
	Pattern   PatternMode
	Particles int     // particles per beam, also the pattern size
	Cap       int     // bound on active particles, splits included
	Speed     float64 // per-tick displacement along +X at emission
	Spacing   float64 // distance between beam slots
	Precision int     // decimals kept on positions and velocities
	Rate      int     // ticks per second in regular mode
}

func DefaultSettings() Settings {
	return Settings{
		Mode:      ModeRegular,
		Splitter:  SplitterDeterministic,
		Pattern:   PatternAccumulate,
		Particles: 5,
		Cap:       2500,
		Speed:     0.25,
		Spacing:   0.5,
		Precision: 3,
		Rate:      200,
	}
}

func (s Settings) Validate() error {
	if s.Particles < 1 {
		return fmt.Errorf("particles per beam must be at least 1, got %d", s.Particles)
	}
	if s.Cap < 1 {
		return fmt.Errorf("particle cap must be at least 1, got %d", s.Cap)
	}
	if s.Rate < 1 || s.Rate > MaxRate {
		return fmt.Errorf("rate must be between 1 and %d, got %d", MaxRate, s.Rate)
	}
	if s.Precision < 0 || s.Precision > 6 {
		return fmt.Errorf("precision must be between 0 and 6, got %d", s.Precision)
	}
	if err := geometry.CheckFinite("settings", s.Speed, s.Spacing); err != nil {
		return err
	}
	if s.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", s.Speed)
	}
	return nil
}

// TickRate is the number of ticks per second the loop should run at. Wave mode runs
// at half rate.
func (s Settings) TickRate() int {
	if s.Mode == ModeWave {
		return max(1, s.Rate/2)
	}
	return s.Rate
}
