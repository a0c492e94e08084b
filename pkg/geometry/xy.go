package geometry

import "math"

// XY is a point in screen coordinates. Y grows downward.
type XY struct {
	X, Y float64
}

// Endpoint is the far end of a branch of the given length starting at parent.
// The angle is measured in radians clockwise from straight up, so an angle of
// 0.0 points toward the top of the screen.
func Endpoint(parent XY, length float64, angle float64) XY {
	return XY{
		X: parent.X + length*math.Sin(angle),
		Y: parent.Y - length*math.Cos(angle),
	}
}

// Round returns the nearest integer pixel to xy.
func (xy XY) Round() (int, int) {
	return int(math.Round(xy.X)), int(math.Round(xy.Y))
}
