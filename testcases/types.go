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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rasterization test.
type TestCase struct {
	Name   string      // lowercase a-z and _ only
	Width  int         // canvas width in pixels
	Height int         // canvas height in pixels
	Ops    []Operation // shapes to draw, in order

	// Want is the expected canvas, one string per row.
	// Set pixels are '*', unset pixels are '.'.
	Want []string
}

// Operation is a shape to draw onto the canvas.
type Operation interface {
	isOperation()
}

// Line draws a line segment between two pixels, including both end points.
type Line struct {
	X1, Y1, X2, Y2 int
}

func (Line) isOperation() {}

// Circle draws a circle outline around a pixel.
type Circle struct {
	X0, Y0, R int
}

func (Circle) isOperation() {}

// BBox returns the canvas area in pixel coordinates.
func (tc *TestCase) BBox() rect.Rect {
	return rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
}

// Path returns the ideal geometry of all operations of the test case.
// Pixel (x, y) covers the unit square [x, x+1]×[y, y+1], so shapes are
// centred on pixel centres.  Circles with negative radius are omitted.
func (tc *TestCase) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, op := range tc.Ops {
			switch op := op.(type) {
			case Line:
				if !yield(path.CmdMoveTo, []vec.Vec2{center(op.X1, op.Y1)}) {
					return
				}
				if !yield(path.CmdLineTo, []vec.Vec2{center(op.X2, op.Y2)}) {
					return
				}
			case Circle:
				if op.R < 0 {
					continue
				}
				if !circle(yield, center(op.X0, op.Y0), float64(op.R)) {
					return
				}
			}
		}
	}
}

// center returns the centre of pixel (x, y).
func center(x, y int) vec.Vec2 {
	return vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// circle emits a closed circle made of four cubic Bézier arcs.
// The return value is false if yield asked to stop.
func circle(yield func(path.Command, []vec.Vec2) bool, c vec.Vec2, r float64) bool {
	// control point distance for a quarter circle
	k := 4 * (math.Sqrt2 - 1) / 3 * r

	if !yield(path.CmdMoveTo, []vec.Vec2{{X: c.X + r, Y: c.Y}}) {
		return false
	}
	arcs := [4][3]vec.Vec2{
		{{X: c.X + r, Y: c.Y + k}, {X: c.X + k, Y: c.Y + r}, {X: c.X, Y: c.Y + r}},
		{{X: c.X - k, Y: c.Y + r}, {X: c.X - r, Y: c.Y + k}, {X: c.X - r, Y: c.Y}},
		{{X: c.X - r, Y: c.Y - k}, {X: c.X - k, Y: c.Y - r}, {X: c.X, Y: c.Y - r}},
		{{X: c.X + k, Y: c.Y - r}, {X: c.X + r, Y: c.Y - k}, {X: c.X + r, Y: c.Y}},
	}
	for i := range arcs {
		if !yield(path.CmdCubeTo, arcs[i][:]) {
			return false
		}
	}
	return yield(path.CmdClose, nil)
}
