package main

// nextCellState applies the survival/birth rule to one cell. The
// expression must stay (alive && sum==2) || sum==3; folding it into
// alive && (sum==2 || sum==3) silently drops dead-cell births.
func nextCellState(alive uint8, neighbors int) uint8 {
	if (alive == 1 && neighbors == 2) || neighbors == 3 {
		return 1
	}
	return 0
}

// stepScalar advances gen by one generation with a plain per-cell
// neighbor walk through wrapIndex. It is the golden reference the tiled
// steppers are checked against.
func stepScalar(gen *generation) {
	w, h := gen.width, gen.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					sum += int(gen.cur[wrapIndex(x+dx, y+dy, w, h)])
				}
			}
			gen.nxt[y*w+x] = nextCellState(gen.cur[y*w+x], sum)
		}
	}
	gen.swap()
}
