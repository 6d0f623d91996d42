package main

import "time"

// Default simulation and rendering configuration. Grid and tile sizes
// are defaults only; the effective values travel in a gridConfig built
// from the command line so independent runs (and tests) can use their
// own dimensions.
const (
	defaultGridW = 256
	defaultGridH = 256
	defaultTileW = 16
	defaultTileH = 16

	windowScale         = 3
	defaultStepsPerTick = 1
	stepsPerTickStep    = 1
	minStepsPerTick     = 1
	maxStepsPerTick     = 1000

	defaultSeedDensity = 0.25

	asciiFrameDelay   = 80 * time.Millisecond
	pgoRecordDuration = 15 * time.Second
)
