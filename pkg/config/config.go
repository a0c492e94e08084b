// Package config holds the settings a fractal tree session starts from.
package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"math"
	"os"
)

const (
	BackendDesktop  = "desktop"
	BackendTerminal = "terminal"

	DefaultAngleStep  = 0.01
	DefaultDecayRatio = 0.67
)

// DefaultInitialAngle is the spread angle a session starts with.
var DefaultInitialAngle = math.Pi / 3.0

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrAngleStep      = errors.New("angle_step must be positive")
	ErrDecayRatio     = errors.New("decay_ratio must be between 0 and 1")
)

type Config struct {
	// Backend selects where the tree is drawn.
	Backend string `yaml:"backend"`

	// InitialAngle is the spread angle, in radians, before any scrolling.
	InitialAngle float64 `yaml:"initial_angle"`

	// AngleStep is how far one scroll tick moves the spread angle.
	AngleStep float64 `yaml:"angle_step"`

	// DecayRatio is the ratio of each branch's length to its parent's.
	DecayRatio float64 `yaml:"decay_ratio"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend:      BackendDesktop,
		InitialAngle: DefaultInitialAngle,
		AngleStep:    DefaultAngleStep,
		DecayRatio:   DefaultDecayRatio,
	}
}

// Load reads the YAML file at path over the defaults. Fields missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendDesktop, BackendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	if !(c.AngleStep > 0.0) {
		return fmt.Errorf("%w: got %v", ErrAngleStep, c.AngleStep)
	}

	// Any ratio outside (0, 1) never shrinks branches below the minimum length.
	if !(c.DecayRatio > 0.0 && c.DecayRatio < 1.0) {
		return fmt.Errorf("%w: got %v", ErrDecayRatio, c.DecayRatio)
	}

	if math.IsNaN(c.InitialAngle) || math.IsInf(c.InitialAngle, 0) {
		return fmt.Errorf("initial_angle must be finite: got %v", c.InitialAngle)
	}

	return nil
}
