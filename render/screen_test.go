package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("initializing simulation screen: %v", err)
	}
	screen := newScreen(sim)
	t.Cleanup(screen.Close)
	return screen, sim
}

func TestTranslateKeys(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Key
		ok   bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyQuit, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), KeyQuit, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyQuit, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyPause, true},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), KeyStep, true},
		{"shift-r", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), KeyReseed, true},
		{"unmapped", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
	}
	for _, tc := range cases {
		key, ok := translate(tc.ev)
		if ok != tc.ok || (ok && key != tc.want) {
			t.Fatalf("%s: translate() = (%v, %v), want (%v, %v)", tc.name, key, ok, tc.want, tc.ok)
		}
	}
}

func TestDrawPaintsBoardAndStatus(t *testing.T) {
	screen, sim := newSimScreen(t)

	g := newGrid(t, 5, 3)
	g.ApplyPattern("blinker") // cells (2,1), (3,1), (4,1)
	screen.Draw(g, "Gen: 1/10")

	contents, width, _ := sim.GetContents()

	if r := contents[0].Runes[0]; r != 'G' {
		t.Fatalf("status row starts with %q, want 'G'", r)
	}

	// Cell (2,1) lands at screen columns 4 and 5 on row 2.
	_, bg, _ := contents[2*width+4].Style.Decompose()
	if bg != tcell.ColorWhite {
		t.Fatalf("alive cell not painted: background = %v", bg)
	}
	_, bg, _ = contents[2*width+2].Style.Decompose()
	if bg == tcell.ColorWhite {
		t.Fatalf("dead cell painted as alive")
	}
}

func TestPollKeysForwardsThenStops(t *testing.T) {
	screen, sim := newSimScreen(t)

	keys := make(chan Key, 8)
	done := make(chan struct{})
	go func() {
		screen.PollKeys(keys)
		close(done)
	}()

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if key := <-keys; key != KeyQuit {
		t.Fatalf("forwarded key = %v, want KeyQuit", key)
	}

	screen.Interrupt()
	<-done
	if _, open := <-keys; open {
		t.Fatalf("keys channel left open after the pump stopped")
	}
}

func TestCloseIdempotent(t *testing.T) {
	screen, _ := newSimScreen(t)
	screen.Close()
	screen.Close()
}
