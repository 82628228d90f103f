package profiling

import (
	"errors"
	"sync/atomic"
)

// ErrAlreadySet is returned by SetProfiler after a profiler has been
// installed; the registry is a one-way latch, not a replace slot.
var ErrAlreadySet = errors.New("profiling: profiler already set")

const (
	stateUnset uint32 = iota
	stateSetting
	stateSet
)

var (
	profilerState uint32
	theProfiler   Profiler
)

// SetProfiler installs the process-wide profiler. It succeeds exactly
// once; every later call returns ErrAlreadySet and leaves the installed
// profiler in place.
//
// The profiler slot itself is not lock-protected. Call this before
// unmasking any interrupt that can touch the profiler and before
// starting any other goroutine — on single-core targets, inside
// InterruptFree.
func SetProfiler(p Profiler) error {
	if p == nil {
		return errors.New("profiling: nil profiler")
	}
	if !atomic.CompareAndSwapUint32(&profilerState, stateUnset, stateSetting) {
		return ErrAlreadySet
	}
	theProfiler = p
	atomic.StoreUint32(&profilerState, stateSet)
	return nil
}

// ActiveProfiler returns the installed profiler, or the no-op profiler
// if none has been set. It never fails, so call sites need no
// initialization check.
func ActiveProfiler() Profiler {
	if atomic.LoadUint32(&profilerState) == stateSet {
		return theProfiler
	}
	return noopProfiler{}
}

// StartSnapshot begins a span on the active profiler.
func StartSnapshot() Instant {
	return Start(ActiveProfiler())
}

// EndSnapshot finishes a span on the active profiler. Nil means the
// clock wrapped mid-span; skip the measurement.
func EndSnapshot(start Instant, name string) *Snapshot {
	return End(ActiveProfiler(), start, name)
}

// LogSnapshot emits s through the active profiler's sink.
func LogSnapshot(s *Snapshot) {
	Log(ActiveProfiler(), s)
}
