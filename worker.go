package main

import (
	"fmt"
	"runtime"
	"sync"
)

// blockRef identifies one tile block by its block-grid coordinates.
type blockRef struct {
	bx, by int
}

// cpuSolver is the host reference backend. A pool of persistent worker
// goroutines stands in for the device's compute units, each stepping its
// assigned tile blocks through the same gather/compute phases as the
// kernel, and all work is issued through an execStream so the
// submit/join discipline matches the accelerated path.
type cpuSolver struct {
	cfg         gridConfig
	stream      *execStream
	workerCount int
	assignments [][]blockRef
	tiles       [][]uint8

	mu      sync.Mutex
	cond    *sync.Cond
	pending int
	step    int
	closed  bool
	src     []uint8
	dst     []uint8
}

// newCPUSolver builds the worker pool and its block assignments.
func newCPUSolver(cfg gridConfig) *cpuSolver {
	workers := runtime.NumCPU()
	bx, by := cfg.blocks()
	if blocks := bx * by; workers > blocks {
		workers = blocks
	}
	if workers < 1 {
		workers = 1
	}
	s := &cpuSolver{
		cfg:         cfg,
		stream:      newExecStream(),
		workerCount: workers,
		assignments: assignBlocks(workers, cfg),
		tiles:       make([][]uint8, workers),
	}
	s.cond = sync.NewCond(&s.mu)
	tw, th := tileDims(cfg)
	for i := 0; i < workers; i++ {
		s.tiles[i] = make([]uint8, tw*th)
		go s.workerLoop(i)
	}
	return s
}

// assignBlocks distributes tile blocks across workers in round robin
// fashion.
func assignBlocks(workerCount int, cfg gridConfig) [][]blockRef {
	if workerCount < 1 {
		workerCount = 1
	}
	bx, by := cfg.blocks()
	out := make([][]blockRef, workerCount)
	i := 0
	for y := 0; y < by; y++ {
		for x := 0; x < bx; x++ {
			out[i%workerCount] = append(out[i%workerCount], blockRef{bx: x, by: y})
			i++
		}
	}
	return out
}

// workerLoop steps the assigned tile blocks each time the step counter
// advances. Workers only read the current buffer and only write their
// own interior cells of the next buffer, so no further coordination is
// needed between the broadcast and the pending countdown.
func (s *cpuSolver) workerLoop(index int) {
	tile := s.tiles[index]
	lastStep := 0
	s.mu.Lock()
	for {
		for s.step == lastStep && !s.closed {
			s.cond.Wait()
		}
		if s.closed {
			s.mu.Unlock()
			return
		}
		lastStep = s.step
		blocks := s.assignments[index]
		src, dst := s.src, s.dst
		s.mu.Unlock()

		for _, b := range blocks {
			loadTile(src, s.cfg, b.bx, b.by, tile)
			computeTile(tile, s.cfg, b.bx, b.by, dst)
		}

		s.mu.Lock()
		s.pending--
		if s.pending == 0 {
			s.cond.Broadcast()
		}
	}
}

// runKernel executes one block-parallel generation step and swaps the
// buffer roles.
func (s *cpuSolver) runKernel(gen *generation) {
	s.mu.Lock()
	s.src = gen.cur
	s.dst = gen.nxt
	s.pending = s.workerCount
	s.step++
	s.cond.Broadcast()
	for s.pending > 0 {
		s.cond.Wait()
	}
	s.mu.Unlock()
	gen.swap()
}

// Step advances gen by steps generations. The work is issued to the
// stream and joined before returning, so the output is valid as soon as
// Step returns.
func (s *cpuSolver) Step(gen *generation, steps int) error {
	if steps <= 0 {
		return nil
	}
	s.stream.submit(func() error {
		for i := 0; i < steps; i++ {
			s.runKernel(gen)
		}
		gen.clearDirty()
		return nil
	})
	return s.stream.join()
}

// Name identifies the backend for logging and overlays.
func (s *cpuSolver) Name() string {
	return fmt.Sprintf("cpu (%d workers)", s.workerCount)
}

// Close stops the worker pool and the stream. Call exactly once.
func (s *cpuSolver) Close() {
	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
	s.stream.close()
}
