package main

// generation holds the double-buffered cell state for one run. cur is
// the generation visible to callers, nxt receives stepper output, and
// the two swap roles after every completed step. Cell values are always
// 0 or 1.
type generation struct {
	width, height int
	cur           []uint8
	nxt           []uint8
	dirty         bool
}

// newGeneration allocates both buffers sized to the configured grid.
func newGeneration(cfg gridConfig) *generation {
	cells := make([]uint8, cfg.cells())
	return &generation{
		width:  cfg.width,
		height: cfg.height,
		cur:    cells,
		nxt:    make([]uint8, len(cells)),
	}
}

// cells exposes the current generation buffer.
func (g *generation) cells() []uint8 { return g.cur }

// at returns the value of the current generation at (x, y).
func (g *generation) at(x, y int) uint8 {
	return g.cur[y*g.width+x]
}

// set writes a value into the current generation at (x, y) and marks the
// host copy as modified so device backends re-upload it.
func (g *generation) set(x, y int, v uint8) {
	g.cur[y*g.width+x] = v
	g.dirty = true
}

// swap exchanges the current and next buffer roles.
func (g *generation) swap() {
	g.cur, g.nxt = g.nxt, g.cur
}

// clear kills every cell in the current generation.
func (g *generation) clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
	g.dirty = true
}

// population counts the live cells in the current generation.
func (g *generation) population() int {
	n := 0
	for _, v := range g.cur {
		n += int(v)
	}
	return n
}

// markDirty flags the host copy as newer than any device-resident copy.
func (g *generation) markDirty() { g.dirty = true }

// wasModified reports whether the host copy changed since the last
// upload.
func (g *generation) wasModified() bool { return g.dirty }

// clearDirty acknowledges an upload of the host copy.
func (g *generation) clearDirty() { g.dirty = false }
