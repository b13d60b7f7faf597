package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation
type Config struct {
	Width       int           `json:"width" env:"GOLIFE_WIDTH"`
	Height      int           `json:"height" env:"GOLIFE_HEIGHT"`
	Generations int           `json:"generations" env:"GOLIFE_GENERATIONS"`
	Delay       time.Duration `json:"delay" env:"GOLIFE_DELAY"`
	Pattern     string        `json:"pattern" env:"GOLIFE_PATTERN"`
	Density     float64       `json:"density" env:"GOLIFE_DENSITY"`
	Seed        int64         `json:"seed" env:"GOLIFE_SEED"`
	Plain       bool          `json:"plain" env:"GOLIFE_PLAIN"`
	StopOnCycle bool          `json:"stop_on_cycle" env:"GOLIFE_STOP_ON_CYCLE"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:       40,
		Height:      20,
		Generations: 200,
		Delay:       100 * time.Millisecond,
		Pattern:     "random",
		Density:     0.3,
		Seed:        0, // 0 means seed from the clock
		Plain:       false,
		StopOnCycle: false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ParseEnv overlays GOLIFE_* environment variables onto config. Variables
// that are unset leave the current values alone.
func ParseEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ParseEnv] failed to parse environment")
	}
	return nil
}
