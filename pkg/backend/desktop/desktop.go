// Package desktop draws into a native window with raylib.
//
// raylib keeps its state in C globals, so at most one Window may exist at a
// time and every call must come from the goroutine that created it.
package desktop

import (
	"errors"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/simulation"
	"image/color"
)

var ErrNoWindow = errors.New("raylib could not create a window")

type Window struct {
	width, height int

	// drawing is whether a frame has been begun and not yet presented.
	drawing bool

	// queue holds events from the last poll not yet returned by WaitEvent.
	queue []simulation.Event
}

// New opens a width by height window.
//
// raylib's own frame limiter is disabled and input is set to wait for events,
// so polling blocks until something happens.
func New(width, height int, title string) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, ErrNoWindow
	}

	// Escape is handled as an ordinary key press.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(0)
	rl.EnableEventWaiting()

	return &Window{width: width, height: height}, nil
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

func (w *Window) begin() {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
}

func (w *Window) Clear(c color.RGBA) {
	w.begin()
	rl.ClearBackground(c)
}

func (w *Window) Line(from, to geometry.XY, c color.RGBA) {
	w.begin()
	rl.DrawLineV(
		rl.NewVector2(float32(from.X), float32(from.Y)),
		rl.NewVector2(float32(to.X), float32(to.Y)),
		c)
}

// Present swaps the frame onto the screen.
//
// raylib polls input as part of finishing a frame, so this blocks until the
// next event arrives. That event is kept for WaitEvent.
func (w *Window) Present() error {
	w.begin()
	rl.EndDrawing()
	w.drawing = false
	w.collect()
	return nil
}

func (w *Window) RefreshRate() int {
	return rl.GetMonitorRefreshRate(rl.GetCurrentMonitor())
}

func (w *Window) WaitEvent() simulation.Event {
	if len(w.queue) == 0 {
		rl.PollInputEvents()
		w.collect()
	}

	if len(w.queue) == 0 {
		// Woken by input with no meaning here, such as the mouse moving.
		return simulation.Event{Kind: simulation.EventOther}
	}

	ev := w.queue[0]
	w.queue = w.queue[1:]
	return ev
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

// collect queues the events seen by the most recent poll.
func (w *Window) collect() {
	escape := rl.IsKeyPressed(rl.KeyEscape)
	otherKey := !escape && rl.GetKeyPressed() != 0

	w.queue = append(w.queue, translate(rl.WindowShouldClose(), escape, otherKey, rl.GetMouseWheelMove())...)
}

// translate turns one poll's worth of input state into events, in the order
// they are handled.
func translate(closing, escape, otherKey bool, wheel float32) []simulation.Event {
	var events []simulation.Event

	if closing {
		events = append(events, simulation.Event{Kind: simulation.EventQuit})
	}

	switch {
	case escape:
		events = append(events, simulation.Event{Kind: simulation.EventKey, Key: simulation.KeyEscape})
	case otherKey:
		events = append(events, simulation.Event{Kind: simulation.EventKey, Key: simulation.KeyOther})
	}

	switch {
	case wheel > 0:
		events = append(events, simulation.Event{Kind: simulation.EventScroll, Delta: 1})
	case wheel < 0:
		events = append(events, simulation.Event{Kind: simulation.EventScroll, Delta: -1})
	}

	return events
}
