package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	cfg := gridConfig{
		width:  *widthFlag,
		height: *heightFlag,
		tileW:  *tileWFlag,
		tileH:  *tileHFlag,
	}
	if err := cfg.validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := newGeneration(cfg)
	randomizeGeneration(gen, seed, *densityFlag)

	sol := newSolver(cfg, *cpuFlag)
	defer sol.Close()
	log.Printf("stepping %dx%d grid in %dx%d tiles using %s",
		cfg.width, cfg.height, cfg.tileW, cfg.tileH, sol.Name())

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording("default.pgo")
		if err != nil {
			log.Fatalf("starting PGO capture: %v", err)
		}
		defer stop()
	}

	if *asciiFlag {
		var deadline time.Time
		if *recordDefaultPGO {
			deadline = time.Now().Add(pgoRecordDuration)
		}
		if err := runASCII(gen, sol, *stepsPerTickFlag, deadline); err != nil {
			log.Fatalf("simulation failed: %v", err)
		}
		return
	}

	game := newGame(cfg, sol, gen, seed, *densityFlag)
	ebiten.SetWindowSize(cfg.width*windowScale, cfg.height*windowScale)
	ebiten.SetWindowTitle("Toroidal Life")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
}
