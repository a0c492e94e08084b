// Package canvas is an in-memory window. It draws into an image, replays a
// fixed list of events and never blocks.
package canvas

import (
	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/raster"
	"github.com/willbeason/fractal-tree/pkg/simulation"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

type Canvas struct {
	// back is drawn to; front holds the last presented frame.
	back, front *image.RGBA

	events      []simulation.Event
	refreshRate int

	// Presents is the number of frames presented so far.
	Presents int

	// Segments is the number of lines drawn since the last Clear.
	Segments int

	closed bool
}

type Option func(*Canvas)

// WithEvents queues events to be returned by WaitEvent in order.
func WithEvents(events ...simulation.Event) Option {
	return func(c *Canvas) {
		c.events = append(c.events, events...)
	}
}

// WithRefreshRate sets the rate reported by RefreshRate.
func WithRefreshRate(hz int) Option {
	return func(c *Canvas) {
		c.refreshRate = hz
	}
}

func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		back:  image.NewRGBA(image.Rect(0, 0, width, height)),
		front: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Canvas) Size() (int, int) {
	b := c.back.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.back, c.back.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	c.Segments = 0
}

func (c *Canvas) Line(from, to geometry.XY, col color.RGBA) {
	x0, y0 := from.Round()
	x1, y1 := to.Round()
	width, height := c.Size()

	raster.Line(x0, y0, x1, y1, width, height, func(x, y int) {
		c.back.SetRGBA(x, y, col)
	})
	c.Segments++
}

func (c *Canvas) Present() error {
	copy(c.front.Pix, c.back.Pix)
	c.Presents++
	return nil
}

func (c *Canvas) RefreshRate() int {
	return c.refreshRate
}

// WaitEvent returns the next queued event, or a quit once the queue is empty.
func (c *Canvas) WaitEvent() simulation.Event {
	if len(c.events) == 0 {
		return simulation.Event{Kind: simulation.EventQuit}
	}

	ev := c.events[0]
	c.events = c.events[1:]
	return ev
}

// Pending is the number of queued events not yet returned by WaitEvent.
func (c *Canvas) Pending() int {
	return len(c.events)
}

func (c *Canvas) Close() error {
	c.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (c *Canvas) Closed() bool {
	return c.closed
}

// Image is the last presented frame.
func (c *Canvas) Image() *image.RGBA {
	return c.front
}

// WritePNG encodes the last presented frame.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.front)
}
