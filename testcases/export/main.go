// Command export writes the test case definitions to JSON, so that other
// rasterizer implementations can be checked against the same cases.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/bitmap/testcases"
	"seehuhn.de/go/geom/path"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Ops    []jsonOp      `json:"ops"`
	Want   []string      `json:"want"`
	Path   []jsonSegment `json:"path,omitempty"`
}

type jsonOp struct {
	Op   string `json:"op"`
	Args []int  `json:"args"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Want:   tc.Want,
		Path:   pathToJSON(tc.Path()),
	}

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			jtc.Ops = append(jtc.Ops, jsonOp{
				Op:   "line",
				Args: []int{op.X1, op.Y1, op.X2, op.Y2},
			})
		case testcases.Circle:
			jtc.Ops = append(jtc.Ops, jsonOp{
				Op:   "circle",
				Args: []int{op.X0, op.Y0, op.R},
			})
		}
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
