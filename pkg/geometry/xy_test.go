package geometry

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestEndpoint_StraightUp(t *testing.T) {
	tcs := []struct {
		x, y, length float64
	}{
		{0.0, 0.0, 1.0},
		{640.0, 480.0, 144.0},
		{-3.5, 12.25, 0.5},
		{100.0, 0.0, 1000.0},
	}

	for _, tc := range tcs {
		got := Endpoint(XY{X: tc.x, Y: tc.y}, tc.length, 0.0)
		assert.Equal(t, XY{X: tc.x, Y: tc.y - tc.length}, got)
	}
}

func TestEndpoint_Right(t *testing.T) {
	got := Endpoint(XY{X: 10.0, Y: 20.0}, 5.0, math.Pi/2.0)

	assert.InDelta(t, 15.0, got.X, 1e-12)
	assert.InDelta(t, 20.0, got.Y, 1e-12)
}

func TestEndpoint_Left(t *testing.T) {
	got := Endpoint(XY{X: 10.0, Y: 20.0}, 5.0, -math.Pi/2.0)

	assert.InDelta(t, 5.0, got.X, 1e-12)
	assert.InDelta(t, 20.0, got.Y, 1e-12)
}

func TestEndpoint_Down(t *testing.T) {
	got := Endpoint(XY{X: 0.0, Y: 0.0}, 2.0, math.Pi)

	assert.InDelta(t, 0.0, got.X, 1e-12)
	assert.InDelta(t, 2.0, got.Y, 1e-12)
}

func TestRound(t *testing.T) {
	x, y := XY{X: 1.49, Y: -2.5}.Round()

	assert.Equal(t, 1, x)
	assert.Equal(t, -3, y)
}
