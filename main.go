package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/conwaylab/golife/model"
	"github.com/conwaylab/golife/render"
	"github.com/conwaylab/golife/utils"
)

// clearScreen homes the cursor and wipes the terminal between plain frames.
const clearScreen = "\033[H\033[2J"

func main() {
	log.SetFlags(0)
	log.SetPrefix("[golife] ")

	config, err := parseConfig(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	if err != nil {
		log.Fatalf("%+v", err)
	}

	grid, err := newGrid(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	fellBack, err := seedGrid(grid, config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if fellBack {
		log.Printf("Unknown pattern: %q. Using random. Known patterns: %s.", config.Pattern, knownPatterns())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := utils.NewStats()
	if config.Plain {
		err = runPlain(ctx, grid, config, stats)
	} else {
		var reason string
		reason, err = runScreen(ctx, grid, config, stats)
		if reason != "" {
			fmt.Println("\n" + reason)
		}
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}

	fmt.Printf("\nFinal stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, peak %d\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation)
}

// runPlain prints one bordered frame per generation to stdout. It follows
// the classic loop: draw, check for extinction, wait, then advance.
func runPlain(ctx context.Context, grid *model.Grid, config utils.Config, stats *utils.Stats) error {
	var (
		ticker    = time.NewTicker(config.Delay)
		lastFrame = time.Now()
	)
	defer ticker.Stop()

	for generation := 1; generation <= config.Generations; generation++ {
		fmt.Print(clearScreen)
		fmt.Printf("Conway's Game of Life - Generation %d/%d\n", generation, config.Generations)
		fmt.Printf("Alive cells: %d\n", grid.Population())
		fmt.Println(render.Frame(grid))
		fmt.Println("\nPress Ctrl+C to stop")

		now := time.Now()
		stats.Update(generation, grid.Population(), now.Sub(lastFrame))
		lastFrame = now

		if stop, reason := checkStopConditions(grid, config); stop {
			fmt.Println("\n" + reason)
			return nil
		}

		select {
		case <-ctx.Done():
			fmt.Println("\n\n" + stoppedMsg)
			return nil
		case <-ticker.C:
		}

		grid.UpdateHistory()
		grid.Step()
	}
	return nil
}

// runScreen runs the simulation on a full terminal screen with interactive
// controls. The key pump and the simulation loop run as a pair: whichever
// finishes first interrupts the other, and the stop reason is reported once
// the terminal is restored.
func runScreen(ctx context.Context, grid *model.Grid, config utils.Config, stats *utils.Stats) (string, error) {
	screen, err := render.NewScreen()
	if err != nil {
		return "", errors.Wrap(err, "[runScreen] failed to open screen")
	}
	defer screen.Close()

	var (
		keys   = make(chan render.Key, 8)
		reason string
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		screen.PollKeys(keys)
		return nil
	})
	eg.Go(func() error {
		defer screen.Interrupt()
		var loopErr error
		reason, loopErr = simLoop(ctx, screen, keys, grid, config, stats)
		return loopErr
	})
	if err = eg.Wait(); err != nil {
		return "", err
	}
	return reason, nil
}

// simLoop drives the interactive simulation until the generation limit, a
// stop condition, or a quit request. It returns the message to show after
// the screen closes, empty when the run simply finished.
func simLoop(
	ctx context.Context,
	screen *render.Screen,
	keys <-chan render.Key,
	grid *model.Grid,
	config utils.Config,
	stats *utils.Stats,
) (string, error) {
	var (
		ticker     = time.NewTicker(config.Delay)
		generation = 1
		paused     = false
		notice     string
		lastFrame  = time.Now()
	)
	defer ticker.Stop()

	for generation <= config.Generations {
		screen.Draw(grid, statusLine(grid, generation, config, paused, notice))

		now := time.Now()
		stats.Update(generation, grid.Population(), now.Sub(lastFrame))
		lastFrame = now

		if stop, reason := checkStopConditions(grid, config); stop {
			return reason, nil
		}

		select {
		case <-ctx.Done():
			return stoppedMsg, nil
		case key, ok := <-keys:
			if !ok {
				return stoppedMsg, nil
			}
			switch key {
			case render.KeyQuit:
				return stoppedMsg, nil
			case render.KeyPause:
				paused = !paused
			case render.KeyStep:
				if paused {
					grid.UpdateHistory()
					grid.Step()
					generation++
				}
			case render.KeyReseed:
				fellBack, err := seedGrid(grid, config)
				if err != nil {
					return "", err
				}
				notice = ""
				if fellBack {
					notice = fmt.Sprintf("unknown pattern %q, seeded random", config.Pattern)
				}
				generation = 1
			}
		case <-ticker.C:
			if paused {
				continue
			}
			grid.UpdateHistory()
			grid.Step()
			generation++
		}
	}
	return "", nil
}
