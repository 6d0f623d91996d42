package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// runASCII drives the simulation headless, printing each generation to
// the terminal: live cells as block glyphs, a row break every width
// cells. A non-zero deadline stops the loop, otherwise it runs until
// interrupted.
func runASCII(gen *generation, sol solver, stepsPerTick int, deadline time.Time) error {
	var sb strings.Builder
	for frame := 0; ; frame++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil
		}
		sb.Reset()
		sb.WriteString("\033[H\033[2J")
		cells := gen.cells()
		for y := 0; y < gen.height; y++ {
			row := cells[y*gen.width : (y+1)*gen.width]
			for _, v := range row {
				if v == 1 {
					sb.WriteString("██")
				} else {
					sb.WriteString("  ")
				}
			}
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Generation %d  (%dx%d)  population %d  [%s]\n",
			frame*stepsPerTick, gen.width, gen.height, gen.population(), sol.Name())
		os.Stdout.WriteString(sb.String())

		if err := sol.Step(gen, stepsPerTick); err != nil {
			return err
		}
		time.Sleep(asciiFrameDelay)
	}
}
