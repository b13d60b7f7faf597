package render

import (
	"testing"

	"github.com/conwaylab/golife/model"
)

func newGrid(t *testing.T, width, height int) *model.Grid {
	t.Helper()
	g, err := model.NewGridWithSeed(width, height, 1)
	if err != nil {
		t.Fatalf("NewGridWithSeed(%d, %d, 1) returned error: %v", width, height, err)
	}
	return g
}

func TestFrameBlinker(t *testing.T) {
	g := newGrid(t, 5, 3)
	g.ApplyPattern("blinker")

	want := "+-----+\n" +
		"|     |\n" +
		"|  ███|\n" +
		"|     |\n" +
		"+-----+"
	if got := Frame(g); got != want {
		t.Fatalf("Frame() =\n%s\nwant\n%s", got, want)
	}
}

func TestFrameEmptyBoard(t *testing.T) {
	g := newGrid(t, 3, 2)

	want := "+---+\n" +
		"|   |\n" +
		"|   |\n" +
		"+---+"
	if got := Frame(g); got != want {
		t.Fatalf("Frame() =\n%s\nwant\n%s", got, want)
	}
}
