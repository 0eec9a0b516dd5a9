// Package cancel provides the solve engine's cooperative cancellation
// primitive: an advisory signal observed only at suspension points
// inside the solve loop, never preempting it (spec.md §4.5).
package cancel

import (
	"sync"
	"sync/atomic"
)

// Signal is a one-shot, concurrency-safe abort flag. The zero value is
// not usable; construct one with New.
type Signal struct {
	aborted atomic.Bool
	once    sync.Once
	waker   chan struct{}
}

// New returns a Signal that has not been aborted.
func New() *Signal {
	return &Signal{waker: make(chan struct{})}
}

// Abort marks the signal as aborted and closes the waker channel,
// waking anything blocked in a select on Done(). Safe to call more
// than once or from multiple goroutines.
func (s *Signal) Abort() {
	s.aborted.Store(true)
	s.once.Do(func() { close(s.waker) })
}

// Aborted reports whether Abort has been called.
func (s *Signal) Aborted() bool {
	return s.aborted.Load()
}

// Done returns a channel that is closed once Abort has been called,
// for use alongside a solve's completion channel in a select.
func (s *Signal) Done() <-chan struct{} {
	return s.waker
}
