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

// Package bitmap implements a 1-bit-per-pixel raster canvas which can be
// drawn on by several goroutines at once, together with integer line and
// circle rasterizers.
//
// Pixels are packed eight to a byte in row-major order: pixel (x, y) is
// bit i%8 of byte i/8, where i = y*width + x.
package bitmap

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// MaxPixels is the largest number of pixels a canvas may hold.
const MaxPixels = math.MaxInt32

var (
	// ErrInvalidSize is returned when a canvas dimension is negative.
	ErrInvalidSize = errors.New("invalid canvas size")

	// ErrTooLarge is returned when the pixel count of a canvas would
	// exceed MaxPixels.
	ErrTooLarge = errors.New("canvas too large")
)

// Canvas is a packed 1-bit raster image.
//
// All methods are safe for concurrent use.  Each call holds an exclusive
// lock on the whole canvas for its duration, so no call can observe
// another call half-way through.  There is no ordering between calls made
// from different goroutines.
type Canvas struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []byte
}

// New allocates a canvas of the given size with all pixels unset.
func New(width, height int) (*Canvas, error) {
	pix, err := allocate(width, height)
	if err != nil {
		return nil, err
	}
	Logger().Debug("canvas created", "width", width, "height", height, "bytes", len(pix))
	return &Canvas{width: width, height: height, pix: pix}, nil
}

// allocate returns a zeroed buffer large enough for width×height pixels.
func allocate(width, height int) ([]byte, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > 0 && height > MaxPixels/width {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	return make([]byte, (width*height+7)/8), nil
}

// Resize changes the canvas dimensions.
//
// The pixel data is discarded: after a successful Resize every pixel is
// unset, even where the old and new areas overlap.  If the new size is
// invalid, the canvas is left unchanged and an error is returned.
func (c *Canvas) Resize(width, height int) error {
	pix, err := allocate(width, height)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	c.mu.Lock()
	c.width = width
	c.height = height
	c.pix = pix
	c.mu.Unlock()

	Logger().Debug("canvas resized", "width", width, "height", height)
	return nil
}

// Width returns the current width of the canvas in pixels.
func (c *Canvas) Width() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

// Height returns the current height of the canvas in pixels.
func (c *Canvas) Height() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

// Size returns the width and height of the canvas.
// Unlike separate calls to Width and Height, the two values are guaranteed
// to belong to the same Resize.
func (c *Canvas) Size() (width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

// index returns the byte offset and bit mask for pixel (x, y).
// The last return value is false if the pixel lies outside the canvas.
// The caller must hold c.mu.
func (c *Canvas) index(x, y int) (int, byte, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, 0, false
	}
	i := y*c.width + x
	return i >> 3, 1 << (i & 7), true
}

// SetBit sets the pixel at (x, y).
// Coordinates outside the canvas are ignored.
func (c *Canvas) SetBit(x, y int) {
	c.mu.Lock()
	if k, mask, ok := c.index(x, y); ok {
		c.pix[k] |= mask
	}
	c.mu.Unlock()
}

// ClearBit unsets the pixel at (x, y).
// Coordinates outside the canvas are ignored.
func (c *Canvas) ClearBit(x, y int) {
	c.mu.Lock()
	if k, mask, ok := c.index(x, y); ok {
		c.pix[k] &^= mask
	}
	c.mu.Unlock()
}

// GetBit reports whether the pixel at (x, y) is set.
// For coordinates outside the canvas, GetBit returns false.
func (c *Canvas) GetBit(x, y int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	k, mask, ok := c.index(x, y)
	return ok && c.pix[k]&mask != 0
}

// Clear unsets all pixels.
func (c *Canvas) Clear() {
	c.mu.Lock()
	clear(c.pix)
	c.mu.Unlock()
}

// Snapshot returns a copy of the current canvas contents.
// The copy does not change when the canvas is modified later.
func (c *Canvas) Snapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &Snapshot{
		width:  c.width,
		height: c.height,
		pix:    append([]byte(nil), c.pix...),
	}
}
