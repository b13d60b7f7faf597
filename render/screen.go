package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/conwaylab/golife/model"
)

// Key is a simulation control decoded from terminal input.
type Key int

const (
	// KeyQuit ends the simulation.
	KeyQuit Key = iota
	// KeyPause toggles the generation clock.
	KeyPause
	// KeyStep advances one generation while paused.
	KeyStep
	// KeyReseed reseeds the board and restarts the generation count.
	KeyReseed
)

// Screen draws the board on a full terminal screen and decodes key presses
// into simulation controls.
type Screen struct {
	tc        tcell.Screen
	closeOnce sync.Once
}

// NewScreen takes over the terminal. Callers must Close the screen before
// exiting or the terminal is left in raw mode.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to create screen")
	}
	if err = tc.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to init screen")
	}
	return newScreen(tc), nil
}

func newScreen(tc tcell.Screen) *Screen {
	return &Screen{tc: tc}
}

// Draw paints the status line and the board. Cells are two columns wide so
// they come out roughly square in most terminal fonts.
func (s *Screen) Draw(g *model.Grid, status string) {
	s.tc.Clear()

	style := tcell.StyleDefault
	for i, r := range []rune(status) {
		s.tc.SetContent(i, 0, r, nil, style)
	}

	alive := style.Background(tcell.ColorWhite)
	for _, c := range g.AliveCells() {
		s.tc.SetContent(c.X*2, c.Y+1, ' ', nil, alive)
		s.tc.SetContent(c.X*2+1, c.Y+1, ' ', nil, alive)
	}
	s.tc.Show()
}

// PollKeys forwards decoded key presses to keys until the screen is
// interrupted or finalized, then closes the channel. Key presses arriving
// faster than the consumer drains them are dropped rather than blocking the
// event loop.
func (s *Screen) PollKeys(keys chan<- Key) {
	defer close(keys)
	for {
		switch ev := s.tc.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventInterrupt:
			return
		case *tcell.EventResize:
			s.tc.Sync()
		case *tcell.EventKey:
			if key, ok := translate(ev); ok {
				select {
				case keys <- key:
				default:
				}
			}
		}
	}
}

// translate maps a terminal key event to a simulation control, or false for
// keys the simulation ignores.
func translate(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return KeyQuit, true
		case ' ':
			return KeyPause, true
		case 'n', 'N':
			return KeyStep, true
		case 'r', 'R':
			return KeyReseed, true
		}
	}
	return 0, false
}

// Interrupt posts a wakeup event so PollKeys returns.
func (s *Screen) Interrupt() {
	_ = s.tc.PostEvent(tcell.NewEventInterrupt(nil))
}

// Close restores the terminal. Safe to call more than once.
func (s *Screen) Close() {
	s.closeOnce.Do(s.tc.Fini)
}
