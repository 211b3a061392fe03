// seehuhn.de/go/bitmap - a shared 1-bit raster canvas
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bitmap

// Plotter is the target of the rasterizers in this package.
//
// SetBit must ignore coordinates outside the drawing area: DrawLine and
// DrawCircle do no clipping of their own.  *Canvas implements Plotter.
type Plotter interface {
	SetBit(x, y int)
}

// DrawLine draws the line segment from (x1, y1) to (x2, y2), including
// both end points, using Bresenham's algorithm.
//
// The pixels form an 8-connected path, with exactly one SetBit call per
// step.  If both end points coincide, a single pixel is drawn.
func DrawLine(p Plotter, x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		p.SetBit(x, y)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawCircle draws the circle with centre (x0, y0) and the given radius,
// using the midpoint circle algorithm.
//
// Each step plots the eight symmetric points of one octant position.
// Pixels on the axes and diagonals may be plotted more than once.
// A radius of 0 draws the centre pixel, a negative radius draws nothing.
func DrawCircle(p Plotter, x0, y0, radius int) {
	x := radius
	y := 0
	err := 0
	for x >= y {
		p.SetBit(x0+x, y0+y)
		p.SetBit(x0-x, y0+y)
		p.SetBit(x0+y, y0+x)
		p.SetBit(x0-y, y0+x)
		p.SetBit(x0-x, y0-y)
		p.SetBit(x0+x, y0-y)
		p.SetBit(x0-y, y0-x)
		p.SetBit(x0+y, y0-x)

		// Both branches may run in the same step.  The second test
		// sees the error term already updated by the first.
		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
