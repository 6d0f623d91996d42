//go:build !opencl

package main

import "errors"

type openCLLifeSolver struct{}

func newOpenCLLifeSolver(cfg gridConfig) (*openCLLifeSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl or pass -cpu")
}

func (s *openCLLifeSolver) Step(gen *generation, steps int) error {
	return errors.New("OpenCL solver unavailable")
}

func (s *openCLLifeSolver) Close() {}

func (s *openCLLifeSolver) Name() string { return "opencl (disabled)" }

func (s *openCLLifeSolver) DeviceName() string { return "" }
