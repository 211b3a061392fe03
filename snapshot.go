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
	"hash/crc32"
	"image"
	"image/color"
	"io"
	"strings"
)

// Palette is the colour model used when a Snapshot is treated as an image.
// Index 0 is used for unset pixels, index 1 for set pixels.
var Palette = color.Palette{color.White, color.Black}

// Text glyphs used by Snapshot.WriteText.
const (
	SetGlyph   = '*'
	UnsetGlyph = ' '
)

// Snapshot is an immutable copy of the contents of a Canvas.
//
// A Snapshot implements image.PalettedImage, so that it can be passed to
// image encoders directly.  The image/png encoder writes a two-colour
// palette as a 1-bit PNG.
type Snapshot struct {
	width  int
	height int
	pix    []byte
}

var _ image.PalettedImage = (*Snapshot)(nil)

// Width returns the width of the snapshot in pixels.
func (s *Snapshot) Width() int { return s.width }

// Height returns the height of the snapshot in pixels.
func (s *Snapshot) Height() int { return s.height }

// Bytes returns a copy of the packed pixel data.
// Bit i%8 of byte i/8 holds pixel i = y*width + x.
func (s *Snapshot) Bytes() []byte {
	return append([]byte(nil), s.pix...)
}

// Bit reports whether pixel (x, y) was set when the snapshot was taken.
// For coordinates outside the snapshot, Bit returns false.
func (s *Snapshot) Bit(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	i := y*s.width + x
	return s.pix[i>>3]&(1<<(i&7)) != 0
}

// Count returns the number of set pixels.
func (s *Snapshot) Count() int {
	n := 0
	for y := range s.height {
		for x := range s.width {
			if s.Bit(x, y) {
				n++
			}
		}
	}
	return n
}

// Checksum returns the IEEE CRC-32 of the packed pixel data.
// This can be used to detect whether a canvas has changed.
func (s *Snapshot) Checksum() uint32 {
	return crc32.ChecksumIEEE(s.pix)
}

// WriteText writes the snapshot to w as text, one line per row.
// Set pixels are written as SetGlyph, unset pixels as UnsetGlyph.
func (s *Snapshot) WriteText(w io.Writer) (int64, error) {
	var total int64
	line := make([]byte, s.width+1)
	for y := range s.height {
		for x := range s.width {
			if s.Bit(x, y) {
				line[x] = SetGlyph
			} else {
				line[x] = UnsetGlyph
			}
		}
		line[s.width] = '\n'
		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the text form of the snapshot, as written by WriteText.
func (s *Snapshot) String() string {
	b := &strings.Builder{}
	s.WriteText(b)
	return b.String()
}

// ColorModel implements the image.Image interface.
func (s *Snapshot) ColorModel() color.Model {
	return Palette
}

// Bounds implements the image.Image interface.
func (s *Snapshot) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements the image.Image interface.
func (s *Snapshot) At(x, y int) color.Color {
	return Palette[s.ColorIndexAt(x, y)]
}

// ColorIndexAt implements the image.PalettedImage interface.
func (s *Snapshot) ColorIndexAt(x, y int) uint8 {
	if s.Bit(x, y) {
		return 1
	}
	return 0
}
