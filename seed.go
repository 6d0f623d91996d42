package main

import "math/rand"

// randomizeGeneration fills the current buffer with live cells at the
// requested density using a deterministic source.
func randomizeGeneration(gen *generation, seed int64, density float64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range gen.cur {
		if rng.Float64() < density {
			gen.cur[i] = 1
		} else {
			gen.cur[i] = 0
		}
	}
	gen.markDirty()
}

// Canonical patterns as (dx, dy) offsets from a stamp origin. The
// glider is the southeast-travelling orientation: it reproduces itself
// translated by (1,1) every 4 generations.
var (
	blockPattern   = [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	blinkerPattern = [][2]int{{0, 0}, {1, 0}, {2, 0}}
	gliderPattern  = [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
)

// stampPattern sets the pattern's cells live at origin (x, y), wrapping
// around the torus as needed.
func stampPattern(gen *generation, offsets [][2]int, x, y int) {
	for _, o := range offsets {
		gen.cur[wrapIndex(x+o[0], y+o[1], gen.width, gen.height)] = 1
	}
	gen.markDirty()
}
