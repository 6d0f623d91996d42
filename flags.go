package main

import "flag"

// Command-line flags that control grid geometry, seeding, and runtime
// behavior.
var (
	// widthFlag and heightFlag set the toroidal grid dimensions.
	widthFlag  = flag.Int("width", defaultGridW, "grid width in cells")
	heightFlag = flag.Int("height", defaultGridH, "grid height in cells")

	// tileWFlag and tileHFlag set the interior tile covered by each
	// compute block; every block additionally loads a one-cell halo.
	tileWFlag = flag.Int("tile-w", defaultTileW, "interior tile width per compute block")
	tileHFlag = flag.Int("tile-h", defaultTileH, "interior tile height per compute block")

	// seedFlag selects the RNG seed for the initial generation.
	seedFlag = flag.Int64("seed", 0, "seed for the initial generation (0 = time-based)")

	// densityFlag controls the fraction of live cells in the seed.
	densityFlag = flag.Float64("density", defaultSeedDensity, "live-cell density of the initial generation (0-1)")

	// cpuFlag forces the host worker-pool solver instead of OpenCL.
	cpuFlag = flag.Bool("cpu", false, "use the host reference solver instead of OpenCL")

	// asciiFlag renders generations to the terminal instead of a window.
	asciiFlag = flag.Bool("ascii", false, "render to the terminal instead of opening a window")

	// stepsPerTickFlag sets how many generations advance per frame.
	stepsPerTickFlag = flag.Int("steps-per-tick", defaultStepsPerTick, "generations advanced per rendered frame")

	// debugFlag enables the FPS and simulation overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation stats overlay")

	// recordDefaultPGO captures a CPU profile to default.pgo while the
	// simulation runs.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "capture default.pgo while running")
)
