// Package model implements the simulation state: a fixed-size toroidal board
// tracked as the set of living cells, advanced one generation at a time.
package model

import (
	"math/rand"
	"slices"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/conwaylab/golife/patterns"
	"github.com/conwaylab/golife/rules"
)

// DefaultDensity is the fill probability used when seeding falls back to a
// random board.
const DefaultDensity = 0.3

var (
	// ErrInvalidDimensions reports a non-positive grid width or height.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrInvalidDensity reports a seeding density outside [0, 1].
	ErrInvalidDensity = errors.New("density must be between 0 and 1")
)

// Cell is a single board coordinate, 0-indexed from the top-left corner.
type Cell struct {
	X int
	Y int
}

// Grid represents the game board. Only living cells are stored, so the cost
// of advancing a generation tracks the population rather than the board area.
type Grid struct {
	width   int
	height  int
	alive   map[Cell]struct{}
	rng     *rand.Rand
	history []string // recent state fingerprints for cycle detection
}

// NewGrid creates an empty grid with the specified dimensions, drawing its
// random source from the clock.
func NewGrid(width, height int) (*Grid, error) {
	return NewGridWithSeed(width, height, time.Now().UnixNano())
}

// NewGridWithSeed creates an empty grid whose random source starts from seed,
// so seeded boards can be reproduced exactly.
func NewGridWithSeed(width, height int, seed int64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGridWithSeed] got %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		alive:  make(map[Cell]struct{}),
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Width returns the width of the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid.
func (g *Grid) Height() int {
	return g.height
}

// IsAlive returns the state of the cell at (x, y). Coordinates outside the
// board are dead; callers wanting wraparound should normalize first.
func (g *Grid) IsAlive(x, y int) bool {
	_, ok := g.alive[Cell{x, y}]
	return ok
}

// Population returns the total number of living cells.
func (g *Grid) Population() int {
	return len(g.alive)
}

// AliveCells returns a snapshot of every living cell in row-major order.
func (g *Grid) AliveCells() []Cell {
	cells := make([]Cell, 0, len(g.alive))
	for c := range g.alive {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// Randomize replaces the board with a random population, where density is the
// independent probability that each cell starts alive. Densities outside
// [0, 1] are rejected rather than clamped.
func (g *Grid) Randomize(density float64) error {
	if density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidDensity, "[Randomize] got %v", density)
	}
	g.fill(density)
	return nil
}

// ApplyPattern replaces the board with the named pattern centered at
// (width/2, height/2); offsets landing outside the board are dropped, not
// wrapped. An unknown name falls back to a random board at DefaultDensity,
// reported by the false return so the caller can mention it.
func (g *Grid) ApplyPattern(name string) bool {
	offsets, ok := patterns.Lookup(name)
	if !ok {
		g.fill(DefaultDensity)
		return false
	}

	var (
		originX = g.width / 2
		originY = g.height / 2
		next    = make(map[Cell]struct{}, len(offsets))
	)
	for _, off := range offsets {
		x, y := originX+off.DX, originY+off.DY
		if x < 0 || x >= g.width || y < 0 || y >= g.height {
			continue
		}
		next[Cell{x, y}] = struct{}{}
	}
	g.alive = next
	g.history = nil
	return true
}

// fill replaces the board with one independent draw per cell.
func (g *Grid) fill(density float64) {
	next := make(map[Cell]struct{})
	for y := range g.height {
		for x := range g.width {
			if g.rng.Float64() < density {
				next[Cell{x, y}] = struct{}{}
			}
		}
	}
	g.alive = next
	g.history = nil
}

// Neighbors returns the distinct wrapped coordinates of the 8 positions
// around c. On boards narrower than 3 cells in either dimension the torus
// folds several directions onto the same cell; those collapse to one entry,
// so such boards see fewer than 8 neighbors.
func (g *Grid) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Cell{wrap(c.X+dx, g.width), wrap(c.Y+dy, g.height)}
			if !slices.Contains(neighbors, n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// wrap normalizes v onto the torus span [0, size), including negative values.
func wrap(v, size int) int {
	return ((v % size) + size) % size
}

// CountAliveNeighbors returns how many of c's distinct neighbors are alive.
func (g *Grid) CountAliveNeighbors(c Cell) (count int) {
	for _, n := range g.Neighbors(c) {
		if _, ok := g.alive[n]; ok {
			count++
		}
	}
	return
}

// Step advances the simulation one generation. Only living cells and their
// neighbors can change state, so just that frontier is evaluated. Every
// decision reads the pre-step board, and the finished set replaces the old
// one wholesale, so the update is simultaneous across all cells.
func (g *Grid) Step() {
	candidates := make(map[Cell]struct{}, len(g.alive)*4)
	for c := range g.alive {
		candidates[c] = struct{}{}
		for _, n := range g.Neighbors(c) {
			candidates[n] = struct{}{}
		}
	}

	next := make(map[Cell]struct{}, len(g.alive))
	for c := range candidates {
		_, alive := g.alive[c]
		if rules.ApplyConwayRules(g.CountAliveNeighbors(c), alive) {
			next[c] = struct{}{}
		}
	}
	g.alive = next
}
