// Package systick profiles with the Cortex-M SysTick timer, a 24-bit
// down-counter that reloads from a fixed value when it reaches zero.
// Its native range is only 2^24 core cycles, so extended mode — which
// counts reloads through the SysTick exception — is the usual way to
// run it.
package systick

import (
	"errors"
	"fmt"

	"microprof/profiling"
)

const (
	// Reload is the reload value programmed into the timer, the highest
	// raw reading it can produce.
	Reload = 0x00FF_FFFF

	// Resolution is the native period of the timer, 2^24 states.
	Resolution = uint64(0x0100_0000)
)

var (
	// ErrFreqMismatch is returned when the declared core frequency does
	// not match the one observed from the clock tree.
	ErrFreqMismatch = errors.New("systick: declared frequency does not match sysclk")

	// ErrNarrowContainer is returned when extended mode is requested on
	// the 32-bit container build.
	ErrNarrowContainer = errors.New("systick: extended mode requires the containeru64 build")
)

// Ticker is the down-counting timer peripheral the profiler owns.
// Constructors take it by transfer: nothing else may reconfigure the
// timer afterwards.
type Ticker interface {
	// Start configures the timer to run from reload down to zero on the
	// core clock, reloading forever.
	Start(reload uint32)

	// Current returns the raw down-counting value.
	Current() uint32

	// ArmRollover configures the reload interrupt to run handler once
	// per wrap. Only called in extended mode.
	ArmRollover(handler func())
}

// Profiler implements profiling.Profiler on a Ticker.
type Profiler struct {
	ticker   Ticker
	frac     profiling.Fraction
	rollover profiling.Rollover
	extended bool
	out      profiling.LogWriter
}

// New takes ownership of t, starts it counting down from Reload, and
// returns the profiler. freq is the declared core frequency, sysclk the
// measured one; they must agree. Without extended mode the usable span
// length is one timer period (2^24 cycles), and readings that straddle
// a reload surface as "no duration" from the span API.
func New(t Ticker, freq, sysclk uint32, extended bool) (*Profiler, error) {
	if freq == 0 || freq != sysclk {
		return nil, fmt.Errorf("%w: declared %d Hz, sysclk %d Hz", ErrFreqMismatch, freq, sysclk)
	}
	if extended && profiling.ContainerBits < 64 {
		return nil, ErrNarrowContainer
	}

	p := &Profiler{
		ticker:   t,
		frac:     profiling.Reduce(uint64(freq)),
		extended: extended,
	}

	t.Start(Reload)
	if extended {
		t.ArmRollover(p.rollover.Increment)
	}
	return p, nil
}

// ReadClock returns the elapsed cycle count since the timer started as
// a microsecond instant. The raw reading counts down, so it is inverted
// against Reload; in extended mode reloads are folded in with the
// double-read protocol.
func (p *Profiler) ReadClock() profiling.Instant {
	var count uint64
	if p.extended {
		count = p.rollover.ExtendDown(p.ticker.Current, Reload, Resolution)
	} else {
		count = uint64(Reload - p.ticker.Current())
	}
	return profiling.InstantFromTicks(profiling.Container(p.frac.Scale(count)))
}

// SetLogWriter directs snapshot output. The default is to drop
// snapshots.
func (p *Profiler) SetLogWriter(w profiling.LogWriter) {
	p.out = w
}

// LogSnapshot renders the snapshot to the configured writer.
func (p *Profiler) LogSnapshot(s *profiling.Snapshot) {
	if p.out != nil {
		p.out(s.String())
	}
}
