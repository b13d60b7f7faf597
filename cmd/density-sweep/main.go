// Command density-sweep measures how seeding density affects the surviving
// population. It runs a batch of independent boards per density, several
// densities in parallel, and prints one summary row per density.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/conwaylab/golife/model"
)

type sweepConfig struct {
	width       int
	height      int
	generations int
	replicates  int
	from        float64
	to          float64
	step        float64
	workers     int
	seed        int64
}

// result summarizes every replicate run at one density.
type result struct {
	density float64
	minPop  int
	maxPop  int
	meanPop float64
	extinct int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[density-sweep] ")

	config, err := parseFlags(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	if err != nil {
		log.Fatalf("%+v", err)
	}

	results, err := sweep(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	report(os.Stdout, config, results)
}

func parseFlags(fs *flag.FlagSet, args []string) (sweepConfig, error) {
	var config sweepConfig
	fs.IntVar(&config.width, "width", 40, "grid width")
	fs.IntVar(&config.height, "height", 20, "grid height")
	fs.IntVar(&config.generations, "generations", 200, "generations per run")
	fs.IntVar(&config.replicates, "replicates", 8, "independent runs per density")
	fs.Float64Var(&config.from, "from", 0.05, "lowest density")
	fs.Float64Var(&config.to, "to", 0.95, "highest density")
	fs.Float64Var(&config.step, "step", 0.05, "density increment")
	fs.IntVar(&config.workers, "workers", runtime.NumCPU(), "densities evaluated concurrently")
	fs.Int64Var(&config.seed, "seed", 1, "base random seed")
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[parseFlags] failed to parse flags")
	}

	if config.replicates < 1 || config.workers < 1 || config.step <= 0 ||
		config.from > config.to || config.from < 0 || config.to > 1 {
		return config, errors.Errorf(
			"[parseFlags] invalid sweep: replicates %d, workers %d, densities %v to %v step %v",
			config.replicates, config.workers, config.from, config.to, config.step)
	}
	return config, nil
}

// sweep fans the densities out over a bounded worker group. Each density
// gets its own boards, so workers never share simulation state.
func sweep(config sweepConfig) ([]result, error) {
	var (
		eg      errgroup.Group
		mu      sync.Mutex
		results []result
	)
	eg.SetLimit(config.workers)

	// Truncate so the last evaluated density never lands past to.
	steps := int((config.to-config.from)/config.step+1e-9) + 1
	for i := range steps {
		density := config.from + float64(i)*config.step
		eg.Go(func() error {
			res, err := runDensity(config, density)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].density < results[j].density })
	return results, nil
}

// runDensity runs every replicate at one density serially and folds the
// final populations into a result. Extinct boards stop stepping early.
func runDensity(config sweepConfig, density float64) (result, error) {
	res := result{density: density, minPop: -1}

	var total int
	for rep := range config.replicates {
		grid, err := model.NewGridWithSeed(config.width, config.height, config.seed+int64(rep))
		if err != nil {
			return res, errors.Wrapf(err, "[runDensity] failed to create grid for replicate %d", rep)
		}
		if err = grid.Randomize(density); err != nil {
			return res, errors.Wrapf(err, "[runDensity] failed to seed replicate %d", rep)
		}

		for range config.generations {
			if grid.Population() == 0 {
				break
			}
			grid.Step()
		}

		pop := grid.Population()
		if pop == 0 {
			res.extinct++
		}
		total += pop
		if res.minPop < 0 || pop < res.minPop {
			res.minPop = pop
		}
		if pop > res.maxPop {
			res.maxPop = pop
		}
	}
	res.meanPop = float64(total) / float64(config.replicates)
	return res, nil
}

func report(w io.Writer, config sweepConfig, results []result) {
	fmt.Fprintf(w, "%dx%d board, %d generations, %d replicates per density\n",
		config.width, config.height, config.generations, config.replicates)
	fmt.Fprintf(w, "%-8s %-6s %-8s %-6s %s\n", "density", "min", "mean", "max", "extinct")
	for _, r := range results {
		fmt.Fprintf(w, "%-8.2f %-6d %-8.1f %-6d %d/%d\n",
			r.density, r.minPop, r.meanPop, r.maxPop, r.extinct, config.replicates)
	}
}
