package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/simulation"
	"testing"
)

func newSimulated(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := NewWithScreen(screen, simulation.DefaultWidth, simulation.DefaultHeight)
	require.NoError(t, err)
	screen.SetSize(80, 24)

	t.Cleanup(func() {
		_ = term.Close()
	})
	return term, screen
}

func TestTerminal_Size(t *testing.T) {
	term, _ := newSimulated(t)

	w, h := term.Size()
	assert.Equal(t, simulation.DefaultWidth, w)
	assert.Equal(t, simulation.DefaultHeight, h)
	assert.Zero(t, term.RefreshRate())
}

func TestTerminal_Line(t *testing.T) {
	term, screen := newSimulated(t)

	term.Clear(simulation.Background)
	// Row 360 of 720 logical pixels is row 12 of 24 cells.
	term.Line(geometry.XY{X: 0, Y: 360}, geometry.XY{X: 1280, Y: 360}, simulation.Foreground)
	require.NoError(t, term.Present())

	cells, cols, rows := screen.GetContents()
	require.Equal(t, 80, cols)
	require.Equal(t, 24, rows)

	for x := 0; x < cols; x++ {
		assert.Equal(t, []rune{Block}, cells[12*cols+x].Runes, "column %d", x)
	}
	assert.Equal(t, []rune{' '}, cells[11*cols].Runes)
}

// next skips events the simulation ignores, such as resizes.
func next(term *Terminal) simulation.Event {
	for {
		ev := term.WaitEvent()
		if ev.Kind != simulation.EventOther {
			return ev
		}
	}
}

func TestTerminal_WaitEvent(t *testing.T) {
	term, screen := newSimulated(t)

	screen.InjectMouse(1, 1, tcell.WheelUp, tcell.ModNone)
	assert.Equal(t, simulation.Event{Kind: simulation.EventScroll, Delta: 1}, next(term))

	screen.InjectMouse(1, 1, tcell.WheelDown, tcell.ModNone)
	assert.Equal(t, simulation.Event{Kind: simulation.EventScroll, Delta: -1}, next(term))

	// Clicks are ignored.
	screen.InjectMouse(1, 1, tcell.Button1, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	assert.Equal(t, simulation.Event{Kind: simulation.EventKey, Key: simulation.KeyOther}, next(term))

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.Equal(t, simulation.Event{Kind: simulation.EventKey, Key: simulation.KeyEscape}, next(term))

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)
	assert.Equal(t, simulation.Event{Kind: simulation.EventQuit}, next(term))
}

func TestTerminal_ClosedQuits(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := NewWithScreen(screen, simulation.DefaultWidth, simulation.DefaultHeight)
	require.NoError(t, err)

	require.NoError(t, term.Close())

	assert.Equal(t, simulation.Event{Kind: simulation.EventQuit}, next(term))
}
