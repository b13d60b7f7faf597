// Package patterns ships the named seed layouts for the simulation. Each
// pattern is a list of cell offsets relative to an origin chosen by the
// caller; the catalog itself is fixed at build time and never mutated.
package patterns

import (
	"slices"
	"sort"
)

// Offset is a cell position relative to a pattern's origin.
type Offset struct {
	DX int
	DY int
}

// catalog maps pattern names to their relative offsets. The layouts are the
// well-known Game of Life figures: three oscillators (blinker, toad, pulsar),
// a period-2 beacon, the glider spaceship, and the Gosper glider gun.
var catalog = map[string][]Offset{
	"glider": {
		{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
	},
	"blinker": {
		{0, 0}, {1, 0}, {2, 0},
	},
	"beacon": {
		{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3},
	},
	"toad": {
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1},
	},
	"pulsar": {
		// Top half
		{-2, -4}, {-3, -4}, {-4, -4}, {2, -4}, {3, -4}, {4, -4},
		{-4, -2}, {-4, -3}, {4, -2}, {4, -3},
		{-2, -1}, {-3, -1}, {-4, -1}, {2, -1}, {3, -1}, {4, -1},
		// Bottom half, mirrored
		{-2, 4}, {-3, 4}, {-4, 4}, {2, 4}, {3, 4}, {4, 4},
		{-4, 2}, {-4, 3}, {4, 2}, {4, 3},
		{-2, 1}, {-3, 1}, {-4, 1}, {2, 1}, {3, 1}, {4, 1},
	},
	"glider_gun": {
		// Left block
		{0, 4}, {0, 5}, {1, 4}, {1, 5},
		// Left emitter
		{10, 4}, {10, 5}, {10, 6}, {11, 3}, {11, 7}, {12, 2}, {12, 8},
		{13, 2}, {13, 8}, {14, 5}, {15, 3}, {15, 7}, {16, 4}, {16, 5},
		{16, 6}, {17, 5},
		// Right emitter
		{20, 2}, {20, 3}, {20, 4}, {21, 2}, {21, 3}, {21, 4},
		{22, 1}, {22, 5}, {24, 0}, {24, 1}, {24, 5}, {24, 6},
		// Right block
		{34, 2}, {34, 3}, {35, 2}, {35, 3},
	},
}

// Lookup returns the named pattern's offsets and whether the name exists in
// the catalog. The returned slice is a copy, so callers cannot disturb the
// catalog by mutating it.
func Lookup(name string) ([]Offset, bool) {
	offsets, ok := catalog[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(offsets), true
}

// Names returns every pattern name in the catalog, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
