// Package raster turns line segments into the integer cells they cover.
package raster

// Line calls plot for every cell on the segment from (x0, y0) to (x1, y1),
// both ends included. Cells outside of the width by height grid are skipped.
func Line(x0, y0, x1, y1 int, width, height int, plot func(x, y int)) {
	if !clip(&x0, &y0, &x1, &y1, width, height) {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		if x0 >= 0 && x0 < width && y0 >= 0 && y0 < height {
			plot(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

const inside = 0

const (
	left = 1 << iota
	right
	bottom
	top
)

func outcode(x, y, width, height int) int {
	code := inside
	if x < 0 {
		code |= left
	} else if x >= width {
		code |= right
	}
	if y < 0 {
		code |= top
	} else if y >= height {
		code |= bottom
	}
	return code
}

// clip shortens the segment to the part inside the grid with Cohen-Sutherland.
// Reports false if no part of the segment is inside.
//
// Clipped ends are rounded onto the grid, so the clipped segment can differ
// from the unclipped one by a cell; Line still bounds-checks every cell it plots.
func clip(x0, y0, x1, y1 *int, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	fx0, fy0, fx1, fy1 := float64(*x0), float64(*y0), float64(*x1), float64(*y1)
	maxX, maxY := float64(width-1), float64(height-1)

	c0 := outcode(*x0, *y0, width, height)
	c1 := outcode(*x1, *y1, width, height)

	for {
		switch {
		case c0|c1 == inside:
			*x0, *y0 = int(fx0+0.5), int(fy0+0.5)
			*x1, *y1 = int(fx1+0.5), int(fy1+0.5)
			return true
		case c0&c1 != inside:
			return false
		}

		out := c0
		if out == inside {
			out = c1
		}

		var x, y float64
		switch {
		case out&bottom != 0:
			x = fx0 + (fx1-fx0)*(maxY-fy0)/(fy1-fy0)
			y = maxY
		case out&top != 0:
			x = fx0 + (fx1-fx0)*(0-fy0)/(fy1-fy0)
			y = 0
		case out&right != 0:
			y = fy0 + (fy1-fy0)*(maxX-fx0)/(fx1-fx0)
			x = maxX
		default:
			y = fy0 + (fy1-fy0)*(0-fx0)/(fx1-fx0)
			x = 0
		}

		if out == c0 {
			fx0, fy0 = x, y
			c0 = outcodeF(fx0, fy0, maxX, maxY)
		} else {
			fx1, fy1 = x, y
			c1 = outcodeF(fx1, fy1, maxX, maxY)
		}
	}
}

func outcodeF(x, y, maxX, maxY float64) int {
	code := inside
	if x < 0 {
		code |= left
	} else if x > maxX {
		code |= right
	}
	if y < 0 {
		code |= top
	} else if y > maxY {
		code |= bottom
	}
	return code
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
