//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLLifeSolver owns the device-resident state for one run: a
// context, a command queue acting as the execution stream, the compiled
// step kernel, and two cell buffers whose current/next roles swap after
// every step.
type openCLLifeSolver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	currBuf    *cl.MemObject
	nextBuf    *cl.MemObject
	cfg        gridConfig
	deviceName string
	coldStart  bool
	boundCurr  *cl.MemObject
	boundNext  *cl.MemObject
}

// lifeKernelSource implements the tiled step. Each work-group covers a
// TILE_W x TILE_H interior region; every work-item, halo ring included,
// loads exactly one wrapped cell into local memory before the barrier.
// After the barrier, halo items and items outside the grid retire
// without output, and the remaining items sum their 8 tile neighbors
// and store the rule result at their global index. TILE_W and TILE_H
// are injected as build options.
const lifeKernelSource = `__kernel void life_step(
    const int width,
    const int height,
    __global const uchar* curr,
    __global uchar* next_gen)
{
    __local uchar tile[(TILE_H + 2) * (TILE_W + 2)];
    const int stride = TILE_W + 2;
    int lx = get_local_id(0);
    int ly = get_local_id(1);
    int gx = get_group_id(0) * TILE_W + lx - 1;
    int gy = get_group_id(1) * TILE_H + ly - 1;
    int wx = (gx + width) % width;
    int wy = (gy + height) % height;
    tile[ly * stride + lx] = curr[wy * width + wx];
    barrier(CLK_LOCAL_MEM_FENCE);
    if (lx == 0 || ly == 0 || lx == TILE_W + 1 || ly == TILE_H + 1) {
        return;
    }
    if (gx >= width || gy >= height) {
        return;
    }
    int base = ly * stride + lx;
    int sum = tile[base - stride - 1] + tile[base - stride] + tile[base - stride + 1]
        + tile[base - 1] + tile[base + 1]
        + tile[base + stride - 1] + tile[base + stride] + tile[base + stride + 1];
    uchar alive = tile[base];
    next_gen[wy * width + wx] = ((alive && sum == 2) || (sum == 3)) ? (uchar)1 : (uchar)0;
}`

// newOpenCLLifeSolver locates a device, compiles the kernel for the
// configured tile size, and allocates both generation buffers. Any
// failure here is unrecoverable for the run.
func newOpenCLLifeSolver(cfg gridConfig) (*openCLLifeSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{lifeKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	options := fmt.Sprintf("-DTILE_W=%d -DTILE_H=%d", cfg.tileW, cfg.tileH)
	if err := program.BuildProgram([]*cl.Device{device}, options); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("life_step")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating life kernel: %w", err)
	}
	size := cfg.cells()
	currBuf, err := context.CreateEmptyBuffer(cl.MemReadWrite, size)
	if err != nil {
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating current buffer: %w", err)
	}
	nextBuf, err := context.CreateEmptyBuffer(cl.MemReadWrite, size)
	if err != nil {
		currBuf.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating next buffer: %w", err)
	}

	solver := &openCLLifeSolver{
		context:    context,
		queue:      queue,
		program:    program,
		kernel:     kernel,
		currBuf:    currBuf,
		nextBuf:    nextBuf,
		cfg:        cfg,
		deviceName: device.Name(),
		coldStart:  true,
	}

	if err := solver.kernel.SetArgs(
		int32(cfg.width),
		int32(cfg.height),
		solver.currBuf,
		solver.nextBuf,
	); err != nil {
		solver.Close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}

	return solver, nil
}

// bindBuffers rebinds the kernel's buffer arguments after a role swap.
func (s *openCLLifeSolver) bindBuffers() error {
	if s.boundCurr != s.currBuf {
		if err := s.kernel.SetArgBuffer(2, s.currBuf); err != nil {
			return err
		}
		s.boundCurr = s.currBuf
	}
	if s.boundNext != s.nextBuf {
		if err := s.kernel.SetArgBuffer(3, s.nextBuf); err != nil {
			return err
		}
		s.boundNext = s.nextBuf
	}
	return nil
}

// Step advances gen by steps generations on the device. The host copy
// is uploaded only when it changed since the last upload; the result
// download is asynchronous and the queue is drained before returning,
// so the host copy is valid as soon as Step returns.
func (s *openCLLifeSolver) Step(gen *generation, steps int) error {
	if steps <= 0 {
		return nil
	}
	size := s.cfg.cells()
	if len(gen.cur) != size {
		return fmt.Errorf("unexpected generation buffer size")
	}
	if s.coldStart || gen.wasModified() {
		if _, err := s.queue.EnqueueWriteBuffer(s.currBuf, false, 0, size, unsafe.Pointer(&gen.cur[0]), nil); err != nil {
			return fmt.Errorf("uploading current generation: %w", err)
		}
		gen.clearDirty()
	}
	tw, th := tileDims(s.cfg)
	bx, by := s.cfg.blocks()
	global := []int{bx * tw, by * th}
	local := []int{tw, th}
	for i := 0; i < steps; i++ {
		if err := s.bindBuffers(); err != nil {
			return fmt.Errorf("binding buffers: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, local, nil); err != nil {
			return fmt.Errorf("enqueueing life kernel: %w", err)
		}
		s.currBuf, s.nextBuf = s.nextBuf, s.currBuf
	}
	if _, err := s.queue.EnqueueReadBuffer(s.currBuf, false, 0, size, unsafe.Pointer(&gen.cur[0]), nil); err != nil {
		return fmt.Errorf("downloading generation: %w", err)
	}
	// The download above is asynchronous; the queue must drain before
	// the host copy may be read.
	if err := s.queue.Finish(); err != nil {
		return fmt.Errorf("waiting for stream completion: %w", err)
	}
	s.coldStart = false
	return nil
}

// Name identifies the backend for logging and overlays.
func (s *openCLLifeSolver) Name() string {
	return "opencl (" + s.deviceName + ")"
}

// DeviceName reports the selected OpenCL device.
func (s *openCLLifeSolver) DeviceName() string {
	return s.deviceName
}

// Close releases all device resources. Call exactly once.
func (s *openCLLifeSolver) Close() {
	if s.nextBuf != nil {
		s.nextBuf.Release()
		s.nextBuf = nil
	}
	if s.currBuf != nil {
		s.currBuf.Release()
		s.currBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}
