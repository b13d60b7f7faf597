package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/conwaylab/golife/model"
	"github.com/conwaylab/golife/patterns"
	"github.com/conwaylab/golife/utils"
)

const (
	configFile    = "config.json"
	patternRandom = "random"

	extinctionMsg = "All cells have died. Simulation ended."
	cycleMsg      = "Population is cycling. Simulation ended."
	stoppedMsg    = "Simulation stopped by user."
)

// parseConfig resolves the effective configuration: defaults, then the
// optional config file, then GOLIFE_* environment variables, then flags.
// Later sources win.
func parseConfig(fs *flag.FlagSet, args []string) (utils.Config, error) {
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return config, errors.Wrap(err, "[parseConfig] failed to load config file")
		}
		log.Printf("using default configuration (%s not found)", configFile)
	}
	if err = utils.ParseEnv(&config); err != nil {
		return config, errors.Wrap(err, "[parseConfig] failed to apply environment")
	}

	fs.IntVar(&config.Width, "width", config.Width, "grid width")
	fs.IntVar(&config.Height, "height", config.Height, "grid height")
	fs.IntVar(&config.Generations, "generations", config.Generations, "number of generations to run")
	fs.DurationVar(&config.Delay, "delay", config.Delay, "delay between generations")
	fs.StringVar(&config.Pattern, "pattern", config.Pattern, "starting pattern (random or one of: "+knownPatterns()+")")
	fs.Float64Var(&config.Density, "density", config.Density, "cell density for random seeding")
	fs.Int64Var(&config.Seed, "seed", config.Seed, "random seed (0 seeds from the clock)")
	fs.BoolVar(&config.Plain, "plain", config.Plain, "print frames to stdout instead of taking over the terminal")
	fs.BoolVar(&config.StopOnCycle, "stop-on-cycle", config.StopOnCycle, "stop when the population repeats a recent state")
	if err = fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[parseConfig] failed to parse flags")
	}
	if config.Delay <= 0 {
		return config, errors.Errorf("[parseConfig] delay must be positive, got %v", config.Delay)
	}

	return config, nil
}

// knownPatterns lists the catalog names for help text and log messages.
func knownPatterns() string {
	return strings.Join(patterns.Names(), ", ")
}

// newGrid builds the board, seeding its random source from config when a
// fixed seed was requested.
func newGrid(config utils.Config) (*model.Grid, error) {
	if config.Seed != 0 {
		return model.NewGridWithSeed(config.Width, config.Height, config.Seed)
	}
	return model.NewGrid(config.Width, config.Height)
}

// seedGrid populates the board from the configured pattern. It reports
// whether an unknown pattern name forced a random fallback.
func seedGrid(grid *model.Grid, config utils.Config) (bool, error) {
	if config.Pattern == "" || config.Pattern == patternRandom {
		if err := grid.Randomize(config.Density); err != nil {
			return false, errors.Wrap(err, "[seedGrid] failed to randomize grid")
		}
		return false, nil
	}
	return !grid.ApplyPattern(config.Pattern), nil
}

// checkStopConditions decides whether the run should end early and with
// which message. The generation limit is handled by the run loops.
func checkStopConditions(grid *model.Grid, config utils.Config) (bool, string) {
	if grid.Population() == 0 {
		return true, extinctionMsg
	}
	if config.StopOnCycle && grid.IsStagnant() {
		return true, cycleMsg
	}
	return false, ""
}

// statusLine formats the header shown above the board in screen mode,
// appending notice when one is set.
func statusLine(grid *model.Grid, generation int, config utils.Config, paused bool, notice string) string {
	state := "Running"
	if paused {
		state = "Paused"
	}
	line := fmt.Sprintf("Gen: %d/%d | Alive: %d | %s | space pause  n step  r reseed  q quit",
		generation, config.Generations, grid.Population(), state)
	if notice != "" {
		line += " | " + notice
	}
	return line
}
