package main

import "sync"

// execStream is an ordered queue of asynchronous tasks modeled on a
// device command queue: submission returns without waiting, tasks run
// one at a time in issue order, and join blocks until everything
// submitted before it has completed. Output produced by a task must not
// be read until a join has returned.
type execStream struct {
	tasks chan streamTask

	mu  sync.Mutex
	err error
}

type streamTask struct {
	run func() error
	ack chan struct{}
}

// newExecStream starts the stream's worker goroutine.
func newExecStream() *execStream {
	s := &execStream{tasks: make(chan streamTask, 64)}
	go s.loop()
	return s
}

func (s *execStream) loop() {
	for t := range s.tasks {
		if t.run != nil {
			if err := t.run(); err != nil {
				s.mu.Lock()
				if s.err == nil {
					s.err = err
				}
				s.mu.Unlock()
			}
		}
		if t.ack != nil {
			close(t.ack)
		}
	}
}

// submit queues fn for execution and returns immediately. Once issued,
// a task runs to completion or failure; there is no cancellation.
func (s *execStream) submit(fn func() error) {
	s.tasks <- streamTask{run: fn}
}

// join waits for every previously submitted task to finish and returns
// the first error recorded since the last join.
func (s *execStream) join() error {
	ack := make(chan struct{})
	s.tasks <- streamTask{ack: ack}
	<-ack
	s.mu.Lock()
	err := s.err
	s.err = nil
	s.mu.Unlock()
	return err
}

// close drains pending work and stops the worker goroutine. The stream
// must not be used afterwards.
func (s *execStream) close() {
	close(s.tasks)
}
