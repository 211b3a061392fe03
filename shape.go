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

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Shape is a geometric primitive which can be rasterized.
type Shape interface {
	Draw(p Plotter)
}

// Line is a line segment between two pixel centres.
type Line struct {
	X1, Y1 int
	X2, Y2 int
}

// Draw implements the Shape interface.
func (l Line) Draw(p Plotter) {
	DrawLine(p, l.X1, l.Y1, l.X2, l.Y2)
}

func (l Line) String() string {
	return fmt.Sprintf("line (%d,%d)-(%d,%d)", l.X1, l.Y1, l.X2, l.Y2)
}

// Circle is a circle outline around a pixel centre.
type Circle struct {
	X0, Y0 int
	R      int
}

// Draw implements the Shape interface.
func (c Circle) Draw(p Plotter) {
	DrawCircle(p, c.X0, c.Y0, c.R)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle (%d,%d) r=%d", c.X0, c.Y0, c.R)
}

// DrawAll draws the given shapes onto c, using one goroutine per shape,
// and returns once all shapes are complete.
//
// Since the rasterizers only ever set pixels, the final canvas is the same
// as if the shapes had been drawn one after another.  The order in which
// individual pixels are written is not defined.
func DrawAll(c *Canvas, shapes ...Shape) {
	Logger().Debug("drawing shapes", "count", len(shapes))

	var wg sync.WaitGroup
	wg.Add(len(shapes))
	for _, s := range shapes {
		go func() {
			defer wg.Done()
			s.Draw(c)
		}()
	}
	wg.Wait()
}

// RandomShapes returns two lines and two circles at random positions
// inside a canvas of the given size.
// Circle radii are between 1 and a quarter of the smaller side length.
// If the canvas has no pixels, the result is empty.
func RandomShapes(rng *rand.Rand, width, height int) []Shape {
	if width <= 0 || height <= 0 {
		return nil
	}
	maxR := max(1, min(width, height)/4)

	line := func() Shape {
		return Line{
			X1: rng.IntN(width), Y1: rng.IntN(height),
			X2: rng.IntN(width), Y2: rng.IntN(height),
		}
	}
	circle := func() Shape {
		return Circle{
			X0: rng.IntN(width), Y0: rng.IntN(height),
			R: 1 + rng.IntN(maxR),
		}
	}
	return []Shape{line(), line(), circle(), circle()}
}
