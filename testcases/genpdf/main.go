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

// Command genpdf generates reference pictures for the rasterization tests.
// For every test case it writes a PDF, showing the set pixels as grey
// squares with the ideal geometry drawn on top, and a 1-bit PNG of the
// canvas.
// Run from the module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/bitmap"
	"seehuhn.de/go/bitmap/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

const refDir = "testdata/reference"

// scale is the size of one pixel in PDF points.
const scale = 12

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			snap, err := render(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := generatePDF(tc, snap, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pngPath := filepath.Join(refDir, name+".png")
			if err := writePNG(snap, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// render draws the test case onto a new canvas.
func render(tc testcases.TestCase) (*bitmap.Snapshot, error) {
	c, err := bitmap.New(tc.Width, tc.Height)
	if err != nil {
		return nil, err
	}
	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			bitmap.DrawLine(c, op.X1, op.Y1, op.X2, op.Y2)
		case testcases.Circle:
			bitmap.DrawCircle(c, op.X0, op.Y0, op.R)
		}
	}
	return c.Snapshot(), nil
}

func generatePDF(tc testcases.TestCase, snap *bitmap.Snapshot, pdfPath string) error {
	bbox := tc.BBox()
	paper := &pdf.Rectangle{
		URx: bbox.URx * scale,
		URy: bbox.URy * scale,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; canvas rows run top to bottom.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, paper.URy})

	// pixel grid
	page.SetStrokeColor(color.DeviceGray(0.85))
	page.SetLineWidth(1.0 / scale)
	for x := 0; x <= tc.Width; x++ {
		page.MoveTo(float64(x), 0)
		page.LineTo(float64(x), float64(tc.Height))
	}
	for y := 0; y <= tc.Height; y++ {
		page.MoveTo(0, float64(y))
		page.LineTo(float64(tc.Width), float64(y))
	}
	page.Stroke()

	// set pixels
	page.SetFillColor(color.DeviceGray(0.5))
	hasPixels := false
	for y := range snap.Height() {
		for x := range snap.Width() {
			if snap.Bit(x, y) {
				page.Rectangle(float64(x), float64(y), 1, 1)
				hasPixels = true
			}
		}
	}
	if hasPixels {
		page.Fill()
	}

	// ideal geometry
	page.SetStrokeColor(color.DeviceRGB(0.8, 0, 0))
	page.SetLineWidth(2.0 / scale)
	page.SetLineCap(graphics.LineCapRound)
	drawn := false
	for cmd, pts := range tc.Path() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
		drawn = true
	}
	if drawn {
		page.Stroke()
	}

	return page.Close()
}

func writePNG(snap *bitmap.Snapshot, pngPath string) error {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
