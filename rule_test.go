package main

import (
	"bytes"
	"testing"
)

func TestNextCellState(t *testing.T) {
	for sum := 0; sum <= 8; sum++ {
		wantAlive := uint8(0)
		if sum == 2 || sum == 3 {
			wantAlive = 1
		}
		if got := nextCellState(1, sum); got != wantAlive {
			t.Errorf("live cell with %d neighbors -> %d, expected %d", sum, got, wantAlive)
		}
		wantDead := uint8(0)
		if sum == 3 {
			wantDead = 1
		}
		if got := nextCellState(0, sum); got != wantDead {
			t.Errorf("dead cell with %d neighbors -> %d, expected %d", sum, got, wantDead)
		}
	}
}

// A dead cell with exactly three neighbors must be born; getting the
// rule's operator grouping backwards loses exactly this case.
func TestDeadCellBirthOnThree(t *testing.T) {
	if nextCellState(0, 3) != 1 {
		t.Fatal("dead cell with 3 neighbors must come alive")
	}
}

func TestStillLifeBlock(t *testing.T) {
	cfg := gridConfig{width: 8, height: 8, tileW: 16, tileH: 16}
	gen := newGeneration(cfg)
	stampPattern(gen, blockPattern, 3, 3)
	before := append([]uint8(nil), gen.cells()...)

	stepScalar(gen)

	if !bytes.Equal(gen.cells(), before) {
		t.Fatal("2x2 block changed after one step")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	cfg := gridConfig{width: 5, height: 5, tileW: 16, tileH: 16}
	gen := newGeneration(cfg)
	stampPattern(gen, blinkerPattern, 1, 2)

	gen2 := newGeneration(cfg)
	stampPattern(gen2, blinkerPattern, 1, 2)

	stepScalar(gen)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := uint8(0)
			if x == 2 && y >= 1 && y <= 3 {
				want = 1
			}
			if gen.at(x, y) != want {
				t.Fatalf("cell (%d,%d) = %d after one step, expected %d", x, y, gen.at(x, y), want)
			}
		}
	}

	stepScalar(gen)
	if !bytes.Equal(gen.cells(), gen2.cells()) {
		t.Fatal("blinker did not return to its original phase after two steps")
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	cfg := gridConfig{width: 20, height: 11, tileW: 8, tileH: 8}
	gen := newGeneration(cfg)
	stepScalar(gen)
	for i, v := range gen.cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after stepping an all-dead grid", i, v)
		}
	}
}

func TestValuesStayBinary(t *testing.T) {
	cfg := gridConfig{width: 20, height: 20, tileW: 16, tileH: 16}
	gen := newGeneration(cfg)
	randomizeGeneration(gen, 42, 0.4)
	for step := 0; step < 10; step++ {
		for i, v := range gen.cells() {
			if v > 1 {
				t.Fatalf("cell %d = %d before step %d, expected 0 or 1", i, v, step)
			}
		}
		stepScalar(gen)
	}
	for i, v := range gen.cells() {
		if v > 1 {
			t.Fatalf("cell %d = %d after stepping, expected 0 or 1", i, v)
		}
	}
}

// A live corner cell must count as a diagonal neighbor of the opposite
// corner in both directions.
func TestToroidalCornerAdjacency(t *testing.T) {
	cfg := gridConfig{width: 7, height: 5, tileW: 16, tileH: 16}

	gen := newGeneration(cfg)
	gen.set(0, 0, 1)
	gen.set(cfg.width-1, 0, 1)
	gen.set(0, cfg.height-1, 1)
	stepScalar(gen)
	if gen.at(cfg.width-1, cfg.height-1) != 1 {
		t.Fatal("cell at (w-1,h-1) was not born from its wrapped neighbors, including (0,0)")
	}

	gen = newGeneration(cfg)
	gen.set(cfg.width-1, cfg.height-1, 1)
	gen.set(1, 0, 1)
	gen.set(0, 1, 1)
	stepScalar(gen)
	if gen.at(0, 0) != 1 {
		t.Fatal("cell at (0,0) was not born from its wrapped neighbors, including (w-1,h-1)")
	}
}
