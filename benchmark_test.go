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
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"golang.org/x/image/vector"
)

// BenchmarkDrawCircle benchmarks the midpoint circle rasterizer drawing a
// ring of concentric circles.
func BenchmarkDrawCircle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c, err := New(size, size)
			if err != nil {
				b.Fatal(err)
			}
			center := size / 2
			outerR := size * 45 / 100
			innerR := size * 30 / 100

			b.ReportAllocs()
			for b.Loop() {
				c.Clear()
				for r := innerR; r <= outerR; r++ {
					DrawCircle(c, center, center, r)
				}
			}
		})
	}
}

// BenchmarkVectorCircle benchmarks x/image/vector filling the same ring,
// as a point of reference.
func BenchmarkVectorCircle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}

// BenchmarkDrawLine benchmarks a fan of lines from the canvas centre.
func BenchmarkDrawLine(b *testing.B) {
	const size = 500
	c, _ := New(size, size)

	b.ReportAllocs()
	for b.Loop() {
		for i := 0; i < size; i += 10 {
			DrawLine(c, size/2, size/2, i, 0)
			DrawLine(c, size/2, size/2, i, size-1)
		}
	}
}

// BenchmarkDrawAll measures lock contention when many shapes are drawn
// onto one canvas at the same time.
func BenchmarkDrawAll(b *testing.B) {
	for _, n := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("shapes=%d", n), func(b *testing.B) {
			const size = 400
			c, _ := New(size, size)
			rng := rand.New(rand.NewPCG(1, 1))
			var shapes []Shape
			for len(shapes) < n {
				shapes = append(shapes, RandomShapes(rng, size, size)...)
			}
			shapes = shapes[:n]

			for b.Loop() {
				DrawAll(c, shapes...)
			}
		})
	}
}
