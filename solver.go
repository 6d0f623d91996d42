package main

import "log"

// solver advances generations behind a common interface so the
// accelerated and host backends are interchangeable. A solver owns the
// buffer-role state for its run and is not safe for concurrent use.
type solver interface {
	// Step advances gen by steps generations. Implementations must join
	// their execution stream before returning; callers may read the
	// generation as soon as Step returns with a nil error.
	Step(gen *generation, steps int) error
	Name() string
	Close()
}

// newSolver selects the backend. Device setup failure has no recovery
// path and terminates the run.
func newSolver(cfg gridConfig, forceCPU bool) solver {
	if forceCPU {
		return newCPUSolver(cfg)
	}
	s, err := newOpenCLLifeSolver(cfg)
	if err != nil {
		log.Fatalf("OpenCL initialization failed: %v", err)
	}
	log.Printf("OpenCL solver enabled (device: %s)", s.DeviceName())
	return s
}
