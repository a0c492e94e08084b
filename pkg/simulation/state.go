package simulation

import "math"

const (
	Title = "Fractal Tree"

	DefaultWidth  = 1280
	DefaultHeight = 720

	// DefaultFPS is the frame rate used when the display's is unknown.
	DefaultFPS = 60
)

const fullTurn = 2.0 * math.Pi

// State is everything that changes over a session.
//
// The spread angle is kept as a base plus a whole number of scroll steps,
// so scrolling n steps from a base lands on exactly base+n*step however the
// steps were taken.
type State struct {
	Width, Height int

	// FPS is the most iterations per second the loop runs.
	FPS int

	// Quit is set once the user asks to leave.
	Quit bool

	step  float64
	base  float64
	ticks int
}

// NewState returns a State with the given window size, starting spread angle
// and scroll step.
func NewState(width, height int, angle, step float64) State {
	return State{
		Width:  width,
		Height: height,
		FPS:    DefaultFPS,
		step:   step,
		base:   angle,
	}
}

// Angle is the current spread angle in radians.
func (s State) Angle() float64 {
	return s.base + float64(s.ticks)*s.step
}

// SetAngle replaces the spread angle.
func (s *State) SetAngle(angle float64) {
	s.base = angle
	s.ticks = 0
}

// Scroll moves the spread angle one step in the direction of delta's sign.
//
// An angle that leaves [-2pi, 2pi] is reset to a small value derived from it
// rather than reduced modulo a full turn.
func (s *State) Scroll(delta int) {
	switch {
	case delta > 0:
		s.ticks++
	case delta < 0:
		s.ticks--
	}

	angle := s.Angle()
	switch {
	case angle > fullTurn:
		s.SetAngle(angle/fullTurn - 1.0)
	case angle < -fullTurn:
		s.SetAngle(-angle/fullTurn - 1.0)
	}
}
