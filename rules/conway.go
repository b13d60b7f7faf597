// Package rules holds the standard B3/S23 Game of Life rule.
package rules

/*
ApplyConwayRules decides whether a cell is alive in the next generation.

A live cell survives with 2 or 3 live neighbors and a dead cell is born with
exactly 3. Every other cell is dead next generation, which collapses the
whole rule to (alive && neighbors == 2) || neighbors == 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
