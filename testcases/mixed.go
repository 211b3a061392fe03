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

// mixedCases draw several overlapping shapes onto one canvas.
var mixedCases = []TestCase{
	{
		Name:   "crossing",
		Width:  15,
		Height: 15,
		Ops: []Operation{
			Circle{X0: 7, Y0: 7, R: 6},
			Line{X1: 0, Y1: 7, X2: 14, Y2: 7},
			Line{X1: 7, Y1: 0, X2: 7, Y2: 14},
		},
		Want: []string{
			".......*.......",
			".......*.......",
			".....*****.....",
			"....*..*..*....",
			"...*...*...*...",
			"..*....*....*..",
			"..*....*....*..",
			"***************",
			"..*....*....*..",
			"..*....*....*..",
			"...*...*...*...",
			"....*..*..*....",
			".....*****.....",
			".......*.......",
			".......*.......",
		},
	},
	{
		Name:   "bar",
		Width:  20,
		Height: 8,
		Ops: []Operation{
			Line{X1: 1, Y1: 1, X2: 18, Y2: 1},
			Line{X1: 1, Y1: 6, X2: 18, Y2: 6},
			Circle{X0: 5, Y0: 3, R: 2},
			Circle{X0: 14, Y0: 3, R: 2},
		},
		Want: []string{
			"....................",
			".******************.",
			"....*.*......*.*....",
			"...*...*....*...*...",
			"....*.*......*.*....",
			".....*........*.....",
			".******************.",
			"....................",
		},
	},
}
