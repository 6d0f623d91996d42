package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders the current generation and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if len(g.pixels) != g.cfg.cells()*4 {
		g.pixels = make([]byte, g.cfg.cells()*4)
	}
	for i, v := range g.gen.cells() {
		var intensity byte
		if v == 1 {
			intensity = 0xff
		}
		base := i * 4
		g.pixels[base] = intensity
		g.pixels[base+1] = intensity
		g.pixels[base+2] = intensity
		g.pixels[base+3] = 0xff
	}
	screen.WritePixels(g.pixels)

	if *debugFlag {
		simMS := g.lastSimDuration.Seconds() * 1000
		state := "running"
		if g.paused {
			state = "paused"
		}
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nGeneration: %d (%s)\nPopulation: %d\nSteps/tick: %d (+/-)\nSim: %.2f ms\nSolver: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.generationCount, state,
			g.gen.population(), g.stepsPerTick, simMS, g.solver.Name())
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.width, g.cfg.height
}
