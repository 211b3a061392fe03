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

// lineCases exercise Bresenham lines in all directions, including
// lines which leave the canvas.
var lineCases = []TestCase{
	{
		Name:   "point",
		Width:  5,
		Height: 5,
		Ops: []Operation{
			Line{X1: 2, Y1: 2, X2: 2, Y2: 2},
		},
		Want: []string{
			".....",
			".....",
			"..*..",
			".....",
			".....",
		},
	},
	{
		Name:   "horizontal",
		Width:  10,
		Height: 3,
		Ops: []Operation{
			Line{X1: 1, Y1: 1, X2: 8, Y2: 1},
		},
		Want: []string{
			"..........",
			".********.",
			"..........",
		},
	},
	{
		Name:   "vertical",
		Width:  3,
		Height: 8,
		Ops: []Operation{
			Line{X1: 1, Y1: 1, X2: 1, Y2: 6},
		},
		Want: []string{
			"...",
			".*.",
			".*.",
			".*.",
			".*.",
			".*.",
			".*.",
			"...",
		},
	},
	{
		Name:   "diagonal",
		Width:  6,
		Height: 6,
		Ops: []Operation{
			Line{X1: 0, Y1: 0, X2: 5, Y2: 5},
		},
		Want: []string{
			"*.....",
			".*....",
			"..*...",
			"...*..",
			"....*.",
			".....*",
		},
	},
	{
		Name:   "shallow",
		Width:  12,
		Height: 5,
		Ops: []Operation{
			Line{X1: 0, Y1: 0, X2: 11, Y2: 4},
		},
		Want: []string{
			"**..........",
			"..***.......",
			".....**.....",
			".......***..",
			"..........**",
		},
	},
	{
		Name:   "steep",
		Width:  5,
		Height: 12,
		Ops: []Operation{
			Line{X1: 0, Y1: 0, X2: 4, Y2: 11},
		},
		Want: []string{
			"*....",
			"*....",
			".*...",
			".*...",
			".*...",
			"..*..",
			"..*..",
			"...*.",
			"...*.",
			"...*.",
			"....*",
			"....*",
		},
	},
	{
		Name:   "reversed",
		Width:  12,
		Height: 5,
		Ops: []Operation{
			Line{X1: 11, Y1: 4, X2: 0, Y2: 0},
		},
		Want: []string{
			"**..........",
			"..***.......",
			".....**.....",
			".......***..",
			"..........**",
		},
	},
	{
		Name:   "anti_diagonal",
		Width:  8,
		Height: 6,
		Ops: []Operation{
			Line{X1: 7, Y1: 0, X2: 2, Y2: 5},
		},
		Want: []string{
			".......*",
			"......*.",
			".....*..",
			"....*...",
			"...*....",
			"..*.....",
		},
	},
	{
		Name:   "clipped",
		Width:  8,
		Height: 6,
		Ops: []Operation{
			Line{X1: -3, Y1: -2, X2: 10, Y2: 7},
		},
		Want: []string{
			"*.......",
			".**.....",
			"...*....",
			"....*...",
			".....**.",
			".......*",
		},
	},
	{
		Name:   "outside",
		Width:  6,
		Height: 4,
		Ops: []Operation{
			Line{X1: -5, Y1: -5, X2: -1, Y2: -9},
		},
		Want: []string{
			"......",
			"......",
			"......",
			"......",
		},
	},
}
