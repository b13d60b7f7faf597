package main

import (
	"flag"
	"io"
	"math"
	"testing"
)

func TestSweepStopsAtRangeEnd(t *testing.T) {
	config := sweepConfig{
		width:       8,
		height:      8,
		generations: 2,
		replicates:  2,
		from:        0,
		to:          1,
		step:        0.6,
		workers:     2,
		seed:        1,
	}
	results, err := sweep(config)
	if err != nil {
		t.Fatalf("sweep returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("sweep evaluated %d densities, want 2", len(results))
	}
	if results[0].density != 0 || results[1].density != 0.6 {
		t.Fatalf("sweep densities = %v and %v, want 0 and 0.6",
			results[0].density, results[1].density)
	}
}

func TestSweepKeepsTopDensity(t *testing.T) {
	config := sweepConfig{
		width:       8,
		height:      8,
		generations: 1,
		replicates:  1,
		from:        0.05,
		to:          0.95,
		step:        0.05,
		workers:     4,
		seed:        1,
	}
	results, err := sweep(config)
	if err != nil {
		t.Fatalf("sweep returned error: %v", err)
	}
	if len(results) != 19 {
		t.Fatalf("sweep evaluated %d densities, want 19", len(results))
	}
	if last := results[len(results)-1].density; math.Abs(last-0.95) > 1e-9 {
		t.Fatalf("last density = %v, want 0.95", last)
	}
}

func TestParseFlagsRejectsInvalidSweep(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"zero workers", []string{"-workers", "0"}},
		{"negative workers", []string{"-workers", "-2"}},
		{"zero replicates", []string{"-replicates", "0"}},
		{"zero step", []string{"-step", "0"}},
		{"inverted range", []string{"-from", "0.8", "-to", "0.2"}},
		{"density above one", []string{"-to", "1.5"}},
	}
	for _, tc := range cases {
		fs := flag.NewFlagSet("density-sweep", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		if _, err := parseFlags(fs, tc.args); err == nil {
			t.Fatalf("%s: parseFlags accepted %v", tc.name, tc.args)
		}
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("density-sweep", flag.ContinueOnError)
	config, err := parseFlags(fs, nil)
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}
	if config.width != 40 || config.height != 20 || config.replicates != 8 {
		t.Fatalf("unexpected defaults: %+v", config)
	}
	if config.workers < 1 {
		t.Fatalf("default workers = %d, want at least 1", config.workers)
	}
}
