package tree

import (
	"github.com/willbeason/fractal-tree/pkg/geometry"
	"math"
)

const (
	// DecayRatio is how much shorter each branch is than its parent.
	DecayRatio = 0.67

	// MinLength is the shortest branch that is still drawn.
	// Recursion stops at any branch shorter than this.
	MinLength = 1.0
)

// A Drawer receives one line segment per drawn branch.
type Drawer interface {
	Line(from, to geometry.XY)
}

// DrawerFunc adapts a function to a Drawer.
type DrawerFunc func(from, to geometry.XY)

func (f DrawerFunc) Line(from, to geometry.XY) {
	f(from, to)
}

// A Generator walks the branches of a fractal tree, handing each segment to
// Drawer.
//
// Generators hold no state between calls, so the same Generator may be used to
// draw any number of trees.
type Generator struct {
	// Decay is the ratio of a child branch's length to its parent's.
	// Must be strictly between 0.0 and 1.0 or recursion never ends.
	Decay float64

	// MinLength is the length below which branches are not drawn.
	// Must be positive.
	MinLength float64

	Drawer Drawer
}

// New returns a Generator with the default decay and minimum length.
func New(d Drawer) *Generator {
	return &Generator{
		Decay:     DecayRatio,
		MinLength: MinLength,
		Drawer:    d,
	}
}

// Branch draws the branch of the given length leaving parent at angle alfa,
// then both of its children.
//
// Children are rotated by beta from alfa and continue to curve in the same
// direction; one keeps turning by beta while the other turns back by beta.
// Branches shorter than MinLength, infinite or NaN draw nothing.
func (g *Generator) Branch(parent geometry.XY, length, alfa, beta float64) {
	if !g.drawable(length) {
		return
	}

	end := geometry.Endpoint(parent, length, alfa)
	g.Drawer.Line(parent, end)

	childLength := length * g.Decay
	g.Branch(end, childLength, alfa-beta, beta)
	g.Branch(end, childLength, alfa-beta, -beta)
}

// Tree draws a trunk of initialLength straight up from origin and fans out six
// branches from its tip.
//
// The fan is every combination of a base angle in {-spread, 0, spread} with a
// curvature in {-spread/2, spread/2}.
func (g *Generator) Tree(origin geometry.XY, initialLength, spread float64) {
	trunk := geometry.Endpoint(origin, initialLength, 0.0)
	g.Drawer.Line(origin, trunk)

	childLength := initialLength * g.Decay
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			// Straight continuations of the trunk are never drawn, including i == 0.
			if j == 0 {
				continue
			}
			g.Branch(trunk, childLength, float64(i)*spread, float64(j)*spread/2.0)
		}
	}
}

// Levels is the number of generations drawn by Branch for a branch of the
// given length, counting the branch itself.
func (g *Generator) Levels(length float64) int {
	levels := 0
	for l := length; g.drawable(l); l *= g.Decay {
		levels++
	}
	return levels
}

// drawable reports whether a branch of the given length is drawn.
// Decay never shrinks NaN or +Inf, so neither can be allowed to recurse.
func (g *Generator) drawable(length float64) bool {
	return length >= g.MinLength && !math.IsInf(length, 1)
}

// SegmentCount is the number of segments drawn by Branch for a branch of the
// given length. Every drawn branch has exactly two children, so this is a
// perfect binary tree.
func (g *Generator) SegmentCount(length float64) int {
	return 1<<g.Levels(length) - 1
}

// TreeSegments is the number of segments drawn by Tree with initialLength.
func (g *Generator) TreeSegments(initialLength float64) int {
	return 1 + 6*g.SegmentCount(initialLength*g.Decay)
}

// Levels is Generator.Levels with the default ratio and minimum length.
func Levels(length float64) int {
	return New(nil).Levels(length)
}

// SegmentCount is Generator.SegmentCount with the default ratio and minimum
// length.
func SegmentCount(length float64) int {
	return New(nil).SegmentCount(length)
}

// Layout is where the tree sits in a width by height window: the trunk starts
// a third of the way up from the bottom, horizontally centered, and is a fifth
// of the window's height long.
func Layout(width, height int) (origin geometry.XY, initialLength float64) {
	origin = geometry.XY{
		X: float64(width / 2),
		Y: float64(height * 2 / 3),
	}
	return origin, float64(height / 5)
}
