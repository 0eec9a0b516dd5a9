// Package yieldtimer implements the solve loop's cooperative yield to
// the host scheduler (spec.md §4.4). The original Rust/WASM engine
// forced a macrotask boundary with a zero-duration setTimeout; the Go
// analogue is runtime.Gosched() on a wall-clock interval, checked only
// every few thousand inner-loop iterations to keep the check itself
// cheap.
package yieldtimer

import (
	"runtime"
	"time"

	"github.com/coder/quartz"
)

const (
	// YieldInterval is the minimum wall-clock gap between calls to
	// runtime.Gosched() from inside the solve loop.
	YieldInterval = 50 * time.Millisecond

	// Stride is how many inner-loop iterations elapse between checks
	// of the wall clock, so the check itself doesn't dominate runtime.
	Stride = 2000

	// ProgressEvery is the minimum wall-clock gap between progress
	// callbacks.
	ProgressEvery = time.Second
)

// Timer tracks solve-loop progress against quartz.Clock and decides
// when to yield and when to report progress. It is built fresh per
// solve and is not safe for concurrent use.
type Timer struct {
	clock        quartz.Clock
	iterations   uint64
	lastYield    time.Time
	lastProgress time.Time
	onProgress   func(iterations uint64)
}

// New constructs a Timer against clock, invoking onProgress (if
// non-nil) no more often than ProgressEvery.
func New(clock quartz.Clock, onProgress func(iterations uint64)) *Timer {
	now := clock.Now()
	return &Timer{
		clock:        clock,
		lastYield:    now,
		lastProgress: now,
		onProgress:   onProgress,
	}
}

// Tick must be called once per inner-loop iteration. Every Stride
// calls it consults the wall clock and, if enough time has passed,
// yields to the scheduler and/or reports progress. It returns true
// when it actually yielded, marking a suspension point at which the
// caller should also check for cancellation (spec.md §4.5, §9).
func (t *Timer) Tick() (yielded bool) {
	t.iterations++
	if t.iterations%Stride != 0 {
		return false
	}

	now := t.clock.Now()
	if now.Sub(t.lastYield) >= YieldInterval {
		runtime.Gosched()
		t.lastYield = now
		yielded = true
	}
	if t.onProgress != nil && now.Sub(t.lastProgress) >= ProgressEvery {
		t.onProgress(t.iterations)
		t.lastProgress = now
	}
	return yielded
}

// Iterations reports the total number of Tick calls so far.
func (t *Timer) Iterations() uint64 {
	return t.iterations
}
