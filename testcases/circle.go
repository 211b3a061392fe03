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

// circleCases exercise the midpoint circle rasterizer.
var circleCases = []TestCase{
	{
		Name:   "radius_zero",
		Width:  5,
		Height: 5,
		Ops: []Operation{
			Circle{X0: 2, Y0: 2, R: 0},
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
		Name:   "radius_one",
		Width:  5,
		Height: 5,
		Ops: []Operation{
			Circle{X0: 2, Y0: 2, R: 1},
		},
		Want: []string{
			".....",
			"..*..",
			".*.*.",
			"..*..",
			".....",
		},
	},
	{
		Name:   "radius_two",
		Width:  7,
		Height: 7,
		Ops: []Operation{
			Circle{X0: 3, Y0: 3, R: 2},
		},
		Want: []string{
			".......",
			"...*...",
			"..*.*..",
			".*...*.",
			"..*.*..",
			"...*...",
			".......",
		},
	},
	{
		Name:   "radius_five",
		Width:  13,
		Height: 13,
		Ops: []Operation{
			Circle{X0: 6, Y0: 6, R: 5},
		},
		Want: []string{
			".............",
			"......*......",
			"....**.**....",
			"...*.....*...",
			"..*.......*..",
			"..*.......*..",
			".*.........*.",
			"..*.......*..",
			"..*.......*..",
			"...*.....*...",
			"....**.**....",
			"......*......",
			".............",
		},
	},
	{
		Name:   "radius_eight",
		Width:  19,
		Height: 19,
		Ops: []Operation{
			Circle{X0: 9, Y0: 9, R: 8},
		},
		Want: []string{
			"...................",
			".........*.........",
			"......***.***......",
			".....*.......*.....",
			"....*.........*....",
			"...*...........*...",
			"..*.............*..",
			"..*.............*..",
			"..*.............*..",
			".*...............*.",
			"..*.............*..",
			"..*.............*..",
			"..*.............*..",
			"...*...........*...",
			"....*.........*....",
			".....*.......*.....",
			"......***.***......",
			".........*.........",
			"...................",
		},
	},
	{
		Name:   "corner",
		Width:  8,
		Height: 8,
		Ops: []Operation{
			Circle{X0: 0, Y0: 0, R: 5},
		},
		Want: []string{
			".....*..",
			"....*...",
			"....*...",
			"...*....",
			".**.....",
			"*.......",
			"........",
			"........",
		},
	},
	{
		Name:   "negative_radius",
		Width:  5,
		Height: 5,
		Ops: []Operation{
			Circle{X0: 2, Y0: 2, R: -1},
		},
		Want: []string{
			".....",
			".....",
			".....",
			".....",
			".....",
		},
	},
}
