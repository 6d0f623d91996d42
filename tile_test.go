package main

import (
	"bytes"
	"math/rand"
	"testing"
)

// stepTiledSerial advances gen by one generation using the tile
// gather/compute phases over every block, single-threaded. It exercises
// the same code the worker pool runs.
func stepTiledSerial(gen *generation, cfg gridConfig) {
	tw, th := tileDims(cfg)
	tile := make([]uint8, tw*th)
	bx, by := cfg.blocks()
	for y := 0; y < by; y++ {
		for x := 0; x < bx; x++ {
			loadTile(gen.cur, cfg, x, y, tile)
			computeTile(tile, cfg, x, y, gen.nxt)
		}
	}
	gen.swap()
}

func TestLoadTileWrapsHalo(t *testing.T) {
	cfg := gridConfig{width: 4, height: 4, tileW: 4, tileH: 4}
	src := make([]uint8, cfg.cells())
	for i := range src {
		src[i] = uint8(i)
	}
	tw, th := tileDims(cfg)
	tile := make([]uint8, tw*th)
	loadTile(src, cfg, 0, 0, tile)

	at := func(lx, ly int) uint8 { return tile[ly*tw+lx] }
	cases := []struct {
		lx, ly int
		gx, gy int
	}{
		{0, 0, 3, 3},  // halo corner wraps to the opposite grid corner
		{5, 0, 0, 3},  // halo past the right edge wraps to column 0
		{0, 5, 3, 0},  // halo past the bottom edge wraps to row 0
		{5, 5, 0, 0},  // far halo corner
		{1, 1, 0, 0},  // interior origin
		{4, 4, 3, 3},  // interior far corner
		{3, 1, 2, 0},  // arbitrary interior cell
	}
	for _, c := range cases {
		want := src[c.gy*cfg.width+c.gx]
		if got := at(c.lx, c.ly); got != want {
			t.Errorf("tile(%d,%d) = %d, expected grid (%d,%d) = %d", c.lx, c.ly, got, c.gx, c.gy, want)
		}
	}
}

func TestTiledSerialMatchesScalar(t *testing.T) {
	configs := []gridConfig{
		{width: 3, height: 3, tileW: 16, tileH: 16},
		{width: 5, height: 4, tileW: 3, tileH: 3},
		{width: 8, height: 8, tileW: 16, tileH: 16},
		{width: 16, height: 16, tileW: 16, tileH: 16},
		{width: 33, height: 17, tileW: 16, tileH: 16},
		{width: 50, height: 37, tileW: 8, tileH: 4},
	}
	const steps = 15
	for _, cfg := range configs {
		ref := newGeneration(cfg)
		randomizeGeneration(ref, 7, 0.35)
		tiled := newGeneration(cfg)
		copy(tiled.cur, ref.cur)

		for step := 0; step < steps; step++ {
			stepScalar(ref)
			stepTiledSerial(tiled, cfg)
			if bytes.Equal(ref.cells(), tiled.cells()) {
				continue
			}
			for y := 0; y < cfg.height; y++ {
				for x := 0; x < cfg.width; x++ {
					if tiled.at(x, y) != ref.at(x, y) {
						t.Fatalf("grid %dx%d tile %dx%d: mismatch at step %d cell (%d,%d): tiled=%d scalar=%d",
							cfg.width, cfg.height, cfg.tileW, cfg.tileH,
							step+1, x, y, tiled.at(x, y), ref.at(x, y))
					}
				}
			}
		}
	}
}

func TestGliderTranslation(t *testing.T) {
	cfg := gridConfig{width: 12, height: 12, tileW: 4, tileH: 4}
	gen := newGeneration(cfg)
	stampPattern(gen, gliderPattern, 4, 4)

	for i := 0; i < 4; i++ {
		stepTiledSerial(gen, cfg)
	}

	want := newGeneration(cfg)
	stampPattern(want, gliderPattern, 5, 5)
	if !bytes.Equal(gen.cells(), want.cells()) {
		for y := 0; y < cfg.height; y++ {
			for x := 0; x < cfg.width; x++ {
				if gen.at(x, y) != want.at(x, y) {
					t.Fatalf("glider not translated by (1,1): cell (%d,%d) = %d, expected %d",
						x, y, gen.at(x, y), want.at(x, y))
				}
			}
		}
	}
}

func BenchmarkTiledStep(b *testing.B) {
	cfg := gridConfig{width: 256, height: 256, tileW: 16, tileH: 16}
	gen := newGeneration(cfg)
	randomizeGeneration(gen, rand.Int63(), 0.3)
	sol := newCPUSolver(cfg)
	defer sol.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := sol.Step(gen, 1); err != nil {
			b.Fatal(err)
		}
	}
}
