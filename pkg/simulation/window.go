package simulation

import (
	"github.com/willbeason/fractal-tree/pkg/geometry"
	"image/color"
	"time"
)

type EventKind int

const (
	// EventOther is any input the simulation does not react to.
	EventOther EventKind = iota
	// EventQuit is a request to close the window.
	EventQuit
	// EventKey is a key press.
	EventKey
	// EventScroll is one tick of the scroll wheel.
	EventScroll
)

type Key int

const (
	KeyOther Key = iota
	KeyEscape
)

type Event struct {
	Kind EventKind

	// Key is set for EventKey.
	Key Key

	// Delta is set for EventScroll. Positive scrolls up.
	// Only the sign is meaningful.
	Delta int
}

// A Surface is somewhere line segments can be drawn.
// Nothing becomes visible until Present.
type Surface interface {
	// Size is the surface's width and height in pixels.
	Size() (width, height int)

	Clear(c color.RGBA)

	// Line draws a segment between two points, clipped to the surface.
	Line(from, to geometry.XY, c color.RGBA)

	Present() error
}

// Input delivers user input one event at a time.
type Input interface {
	// WaitEvent blocks until the next event is available.
	WaitEvent() Event
}

// A Window is a Surface with input, owned by a single Simulation.
type Window interface {
	Surface
	Input

	// RefreshRate is the display's refresh rate in Hz, or 0 if unknown.
	RefreshRate() int

	Close() error
}

// A Clock paces the simulation's iterations.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
