package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game drives the windowed simulation: it advances generations through
// the solver each tick and renders the current generation.
type Game struct {
	cfg    gridConfig
	gen    *generation
	solver solver

	paused          bool
	generationCount int
	stepsPerTick    int
	lastSimDuration time.Duration

	seed    int64
	density float64

	pixels []byte
}

// newGame wires an already-seeded generation to a solver.
func newGame(cfg gridConfig, sol solver, gen *generation, seed int64, density float64) *Game {
	return &Game{
		cfg:          cfg,
		gen:          gen,
		solver:       sol,
		stepsPerTick: *stepsPerTickFlag,
		seed:         seed,
		density:      density,
	}
}

// Update processes input and advances the simulation. Space pauses,
// period single-steps while paused, R reseeds, and -/+ adjust the
// generations advanced per tick.
func (g *Game) Update() error {
	g.handleControls()

	steps := 0
	switch {
	case !g.paused:
		steps = g.stepsPerTick
	case inpututil.IsKeyJustPressed(ebiten.KeyPeriod):
		steps = 1
	}
	if steps == 0 {
		return nil
	}

	simStart := time.Now()
	if err := g.solver.Step(g.gen, steps); err != nil {
		return err
	}
	g.generationCount += steps
	g.lastSimDuration = time.Since(simStart)
	return nil
}

// handleControls processes pause, reseed, and speed hotkeys.
func (g *Game) handleControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed++
		randomizeGeneration(g.gen, g.seed, g.density)
		g.generationCount = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustStepsPerTick(-stepsPerTickStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustStepsPerTick(stepsPerTickStep)
	}
}

// adjustStepsPerTick clamps the per-tick batch size within bounds.
func (g *Game) adjustStepsPerTick(delta int) {
	g.stepsPerTick += delta
	if g.stepsPerTick < minStepsPerTick {
		g.stepsPerTick = minStepsPerTick
	} else if g.stepsPerTick > maxStepsPerTick {
		g.stepsPerTick = maxStepsPerTick
	}
}
