// Package render draws the board, either as plain text frames or on a
// terminal screen.
package render

import (
	"strings"

	"github.com/conwaylab/golife/model"
)

const (
	aliveRune = '█'
	deadRune  = ' '
)

// Frame renders the board as bordered text, one rune per cell, without a
// trailing newline.
func Frame(g *model.Grid) string {
	var (
		b      strings.Builder
		border = "+" + strings.Repeat("-", g.Width()) + "+"
	)
	b.WriteString(border)
	for y := range g.Height() {
		b.WriteString("\n|")
		for x := range g.Width() {
			if g.IsAlive(x, y) {
				b.WriteRune(aliveRune)
			} else {
				b.WriteRune(deadRune)
			}
		}
		b.WriteString("|")
	}
	b.WriteString("\n")
	b.WriteString(border)
	return b.String()
}
