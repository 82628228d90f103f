// Package pintoggle is a profiler for hardware too small for a
// free-running counter: it never measures time, it only raises an
// output pin when a span starts and lowers it when the span ends. A
// logic analyzer on the pin does the actual measuring.
package pintoggle

import (
	"sync"

	"microprof/profiling"
)

// Pin is a single digital output the profiler owns.
type Pin interface {
	Set(high bool)
}

// Profiler implements profiling.Profiler by toggling a pin at the span
// boundaries. Its clock is pinned at zero, so every span yields a
// zero-length snapshot and nothing useful goes to a sink.
//
// The span API only sees profilers through shared references, so the
// mutable pin sits behind a mutex.
type Profiler struct {
	mu  sync.Mutex
	pin Pin
}

// New takes ownership of pin; the pin must already be configured as an
// output.
func New(pin Pin) *Profiler {
	return &Profiler{pin: pin}
}

// Free releases and returns the pin. The profiler must not be used
// afterwards.
func (p *Profiler) Free() Pin {
	p.mu.Lock()
	defer p.mu.Unlock()
	pin := p.pin
	p.pin = nil
	return pin
}

// ReadClock always returns the zero instant; this profiler has no
// notion of time.
func (p *Profiler) ReadClock() profiling.Instant {
	return profiling.InstantFromTicks(0)
}

// AtStart raises the pin.
func (p *Profiler) AtStart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pin != nil {
		p.pin.Set(true)
	}
}

// AtEnd lowers the pin.
func (p *Profiler) AtEnd() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pin != nil {
		p.pin.Set(false)
	}
}
