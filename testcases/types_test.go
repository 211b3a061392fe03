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
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
)

func TestPathLine(t *testing.T) {
	tc := TestCase{Ops: []Operation{Line{X1: 1, Y1: 2, X2: 5, Y2: 2}}}

	var cmds []path.Command
	for cmd, pts := range tc.Path() {
		cmds = append(cmds, cmd)
		switch cmd {
		case path.CmdMoveTo:
			if pts[0].X != 1.5 || pts[0].Y != 2.5 {
				t.Errorf("line starts at %v", pts[0])
			}
		case path.CmdLineTo:
			if pts[0].X != 5.5 || pts[0].Y != 2.5 {
				t.Errorf("line ends at %v", pts[0])
			}
		}
	}
	if !slices.Equal(cmds, []path.Command{path.CmdMoveTo, path.CmdLineTo}) {
		t.Errorf("unexpected commands %v", cmds)
	}
}

func TestPathCircle(t *testing.T) {
	tc := TestCase{Ops: []Operation{
		Circle{X0: 4, Y0: 4, R: 3},
		Circle{X0: 1, Y0: 1, R: -1},
	}}

	var cmds []path.Command
	for cmd, pts := range tc.Path() {
		cmds = append(cmds, cmd)
		if cmd == path.CmdClose {
			continue
		}
		// every end point lies on the circle
		end := pts[len(pts)-1]
		d := math.Hypot(end.X-4.5, end.Y-4.5)
		if math.Abs(d-3) > 1e-9 {
			t.Errorf("point %v is at distance %g from the centre", end, d)
		}
	}
	want := []path.Command{
		path.CmdMoveTo,
		path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo,
		path.CmdClose,
	}
	if !slices.Equal(cmds, want) {
		t.Errorf("unexpected commands %v", cmds)
	}
}

func TestPathStop(t *testing.T) {
	tc := TestCase{Ops: []Operation{
		Circle{X0: 4, Y0: 4, R: 3},
		Line{X1: 0, Y1: 0, X2: 1, Y2: 1},
	}}
	n := 0
	for range tc.Path() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iteration continued to %d", n)
	}
}

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			if seen[name] {
				t.Errorf("duplicate test case %s", name)
			}
			seen[name] = true
			for _, r := range tc.Name {
				if (r < 'a' || r > 'z') && r != '_' {
					t.Errorf("%s: invalid character %q in name", name, r)
				}
			}
		}
	}
}
