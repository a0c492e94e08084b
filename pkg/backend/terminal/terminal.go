// Package terminal draws into a character-cell terminal with tcell.
//
// Drawing happens in a fixed logical pixel space which is scaled onto however
// many cells the terminal has, so the tree keeps its shape when the terminal
// is resized.
package terminal

import (
	"fmt"
	"github.com/gdamore/tcell/v2"
	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/raster"
	"github.com/willbeason/fractal-tree/pkg/simulation"
	"image/color"
	"math"
)

// Block is drawn in every cell a line passes through.
const Block = '█'

type Terminal struct {
	screen tcell.Screen

	// width and height are the logical size in pixels.
	width, height int

	background tcell.Color
}

// New takes over the process's terminal.
func New(width, height int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}

	return NewWithScreen(screen, width, height)
}

// NewWithScreen initializes screen and draws into it.
func NewWithScreen(screen tcell.Screen, width, height int) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}

	screen.EnableMouse()
	screen.HideCursor()

	return &Terminal{
		screen:     screen,
		width:      width,
		height:     height,
		background: tcell.ColorBlack,
	}, nil
}

func (t *Terminal) Size() (int, int) {
	return t.width, t.height
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Terminal) Clear(c color.RGBA) {
	t.background = rgb(c)
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.background))
}

// cell is the terminal cell holding the logical point xy.
func (t *Terminal) cell(xy geometry.XY, cols, rows int) (int, int) {
	x := xy.X * float64(cols) / float64(t.width)
	y := xy.Y * float64(rows) / float64(t.height)
	return int(math.Floor(x)), int(math.Floor(y))
}

func (t *Terminal) Line(from, to geometry.XY, c color.RGBA) {
	cols, rows := t.screen.Size()
	x0, y0 := t.cell(from, cols, rows)
	x1, y1 := t.cell(to, cols, rows)

	style := tcell.StyleDefault.Foreground(rgb(c)).Background(t.background)
	raster.Line(x0, y0, x1, y1, cols, rows, func(x, y int) {
		t.screen.SetContent(x, y, Block, nil, style)
	})
}

func (t *Terminal) Present() error {
	t.screen.Show()
	return nil
}

// RefreshRate is unknown for terminals.
func (t *Terminal) RefreshRate() int {
	return 0
}

func (t *Terminal) WaitEvent() simulation.Event {
	switch ev := t.screen.PollEvent().(type) {
	case nil:
		// The screen has been finalized.
		return simulation.Event{Kind: simulation.EventQuit}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return simulation.Event{Kind: simulation.EventKey, Key: simulation.KeyEscape}
		case tcell.KeyCtrlC:
			return simulation.Event{Kind: simulation.EventQuit}
		}
		return simulation.Event{Kind: simulation.EventKey, Key: simulation.KeyOther}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			return simulation.Event{Kind: simulation.EventScroll, Delta: 1}
		case buttons&tcell.WheelDown != 0:
			return simulation.Event{Kind: simulation.EventScroll, Delta: -1}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}

	return simulation.Event{Kind: simulation.EventOther}
}

func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}
