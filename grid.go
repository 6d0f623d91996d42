package main

import "fmt"

// gridConfig fixes the grid and tile geometry for one run. Dimensions
// never change after construction.
type gridConfig struct {
	width  int
	height int
	tileW  int
	tileH  int
}

// validate rejects non-positive dimensions before any buffers are sized
// from them.
func (c gridConfig) validate() error {
	if c.width < 1 || c.height < 1 {
		return fmt.Errorf("grid %dx%d: dimensions must be positive", c.width, c.height)
	}
	if c.tileW < 1 || c.tileH < 1 {
		return fmt.Errorf("tile %dx%d: dimensions must be positive", c.tileW, c.tileH)
	}
	return nil
}

// cells returns the number of cells in one generation buffer.
func (c gridConfig) cells() int { return c.width * c.height }

// blocks returns the launch geometry: how many tile blocks are needed to
// cover the grid along each axis, rounding up so partial edge blocks are
// included.
func (c gridConfig) blocks() (int, int) {
	bx := (c.width + c.tileW - 1) / c.tileW
	by := (c.height + c.tileH - 1) / c.tileH
	return bx, by
}

// wrapCoord folds v into [0, extent) on a toroidal axis.
func wrapCoord(v, extent int) int {
	return (v%extent + extent) % extent
}

// wrapIndex maps a coordinate pair, possibly outside the grid, to its
// row-major index on the torus.
func wrapIndex(x, y, width, height int) int {
	return wrapCoord(y, height)*width + wrapCoord(x, width)
}
