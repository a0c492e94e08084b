// Package simulation runs the interactive fractal tree: it waits for input,
// adjusts the tree's spread angle and redraws the whole tree on every change.
package simulation

import (
	"context"
	"fmt"
	"github.com/willbeason/fractal-tree/pkg/config"
	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/tree"
	"go.uber.org/zap"
	"image/color"
	"math"
	"time"
)

var (
	Background = color.RGBA{A: 0xff}
	Foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// A Simulation owns a Window for the length of a session.
// It is not safe for concurrent use.
type Simulation struct {
	window    Window
	clock     Clock
	logger    *zap.Logger
	generator *tree.Generator

	state State
}

func New(window Window, clock Clock, cfg *config.Config, logger *zap.Logger) *Simulation {
	width, height := window.Size()

	s := &Simulation{
		window: window,
		clock:  clock,
		logger: logger,
		state:  NewState(width, height, cfg.InitialAngle, cfg.AngleStep),
	}

	if fps := window.RefreshRate(); fps > 0 {
		s.state.FPS = fps
	}

	s.generator = &tree.Generator{
		Decay:     cfg.DecayRatio,
		MinLength: tree.MinLength,
		Drawer: tree.DrawerFunc(func(from, to geometry.XY) {
			s.window.Line(from, to, Foreground)
		}),
	}

	return s
}

// State is a snapshot of the simulation's current state.
func (s *Simulation) State() State {
	return s.state
}

// Render clears the window, draws the tree at the current spread angle and
// presents it.
func (s *Simulation) Render() error {
	s.window.Clear(Background)

	origin, length := tree.Layout(s.state.Width, s.state.Height)
	s.generator.Tree(origin, length, s.state.Angle())

	err := s.window.Present()
	if err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}

	s.logger.Debug("Rendered tree", zap.Float64("angle", s.state.Angle()))
	return nil
}

// Handle applies one event to the state. Reports whether the tree needs to be
// redrawn.
func (s *Simulation) Handle(ev Event) bool {
	switch ev.Kind {
	case EventQuit:
		s.state.Quit = true
	case EventKey:
		if ev.Key == KeyEscape {
			s.state.Quit = true
		}
	case EventScroll:
		s.state.Scroll(ev.Delta)
		return true
	}
	return false
}

// Run draws the initial tree and then handles events until the user quits or
// ctx is done.
//
// Every scroll event is followed by exactly one redraw before the next event is
// read. After each event the loop sleeps off whatever remains of the frame.
func (s *Simulation) Run(ctx context.Context) error {
	origin, length := tree.Layout(s.state.Width, s.state.Height)
	s.logger.Info("Starting simulation",
		zap.Int("width", s.state.Width),
		zap.Int("height", s.state.Height),
		zap.Int("fps", s.state.FPS),
		zap.Float64("angle", s.state.Angle()),
		zap.Float64("originX", origin.X),
		zap.Float64("originY", origin.Y),
		zap.Int("segments", s.generator.TreeSegments(length)))

	err := s.Render()
	if err != nil {
		return err
	}

	for !s.state.Quit {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := s.clock.Now()

		ev := s.window.WaitEvent()
		if s.Handle(ev) {
			err = s.Render()
			if err != nil {
				return err
			}
		}

		if s.state.Quit {
			break
		}

		s.pace(start)
	}

	s.logger.Info("Quitting simulation", zap.Float64("angle", s.state.Angle()))
	return nil
}

// pace sleeps for the rest of the frame that began at start, to the nearest
// millisecond. Late frames are not made up.
func (s *Simulation) pace(start time.Time) {
	elapsed := float64(s.clock.Now().Sub(start)) / float64(time.Millisecond)

	delay := 1000.0/float64(s.state.FPS) - elapsed
	if delay <= 0 {
		return
	}

	ms := math.Round(delay)
	if ms > 0 {
		s.clock.Sleep(time.Duration(ms) * time.Millisecond)
	}
}
