package model

import (
	"crypto/md5"
	"fmt"
)

// historyWindow bounds how many fingerprints are retained for cycle checks.
const historyWindow = 5

// Fingerprint returns an MD5 hash of the current board state. Cells are
// hashed in row-major order, so equal boards always produce equal strings.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	for _, c := range g.AliveCells() {
		fmt.Fprintf(h, "%d,%d;", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory records the current fingerprint, keeping only the most
// recent states. Seeding the board discards any recorded history.
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Fingerprint())
	if len(g.history) > historyWindow {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the board matches any of the last three
// recorded states, which catches still lifes and short-period oscillators.
// It stays false until at least three generations have been recorded.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}
	current := g.Fingerprint()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == current {
			return true
		}
	}
	return false
}
