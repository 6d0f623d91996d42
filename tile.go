package main

// The tiled step is a two-phase local computation: a gather phase loads
// a bordered neighborhood through the wrap-aware indexer, then a compute
// phase reads neighbors from the tile only. The OpenCL kernel follows
// the same protocol with the gather and compute phases separated by a
// work-group barrier; keeping a host-side version of both phases makes
// the rule logic testable without a device.

// tileDims returns the bordered tile edge lengths: interior plus one
// halo cell on each side.
func tileDims(cfg gridConfig) (int, int) {
	return cfg.tileW + 2, cfg.tileH + 2
}

// loadTile gathers the bordered neighborhood for the block at
// block-grid position (bx, by). Every tile slot, halo ring included,
// reads its wrapped source cell exactly once. tile must have
// tileDims(cfg) capacity.
func loadTile(src []uint8, cfg gridConfig, bx, by int, tile []uint8) {
	tw, th := tileDims(cfg)
	originX := bx * cfg.tileW
	originY := by * cfg.tileH
	for ly := 0; ly < th; ly++ {
		gy := originY + ly - 1
		row := tile[ly*tw : (ly+1)*tw]
		for lx := 0; lx < tw; lx++ {
			gx := originX + lx - 1
			row[lx] = src[wrapIndex(gx, gy, cfg.width, cfg.height)]
		}
	}
}

// computeTile sums the 8 tile neighbors of every interior cell and
// writes the rule result to dst at the cell's global index. Interior
// positions whose global coordinate falls outside the grid (partial
// edge blocks) produce no output.
func computeTile(tile []uint8, cfg gridConfig, bx, by int, dst []uint8) {
	tw, _ := tileDims(cfg)
	for ly := 1; ly <= cfg.tileH; ly++ {
		gy := by*cfg.tileH + ly - 1
		if gy >= cfg.height {
			break
		}
		for lx := 1; lx <= cfg.tileW; lx++ {
			gx := bx*cfg.tileW + lx - 1
			if gx >= cfg.width {
				break
			}
			base := ly*tw + lx
			sum := int(tile[base-tw-1]) + int(tile[base-tw]) + int(tile[base-tw+1]) +
				int(tile[base-1]) + int(tile[base+1]) +
				int(tile[base+tw-1]) + int(tile[base+tw]) + int(tile[base+tw+1])
			dst[gy*cfg.width+gx] = nextCellState(tile[base], sum)
		}
	}
}
