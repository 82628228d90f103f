// Package cyclecounter profiles with an up-counting CPU cycle counter,
// such as the DWT cycle counter on Cortex-M parts. The counter is
// free-running at the core clock and wraps every 2^32 cycles; extended
// mode widens it with a rollover interrupt so long spans stay valid.
package cyclecounter

import (
	"errors"
	"fmt"

	"microprof/profiling"
)

// Resolution is the native period of the 32-bit cycle counter.
const Resolution = uint64(1) << 32

var (
	// ErrFreqMismatch is returned when the declared core frequency does
	// not match the one observed from the clock tree. The two coming
	// apart means the adapter was wired against the wrong clock
	// configuration, which is a programming error worth failing on.
	ErrFreqMismatch = errors.New("cyclecounter: declared frequency does not match sysclk")

	// ErrNarrowContainer is returned when extended mode is requested on
	// the 32-bit container build; rollover extension needs the headroom
	// of the containeru64 build tag.
	ErrNarrowContainer = errors.New("cyclecounter: extended mode requires the containeru64 build")
)

// Counter is the cycle-counter peripheral the profiler owns. The
// constructor takes it by transfer: nothing else may touch the hardware
// unit afterwards.
type Counter interface {
	// Enable powers on the counting hardware.
	Enable()

	// Reset zeroes the counter.
	Reset()

	// Read returns the current raw count.
	Read() uint32

	// ArmRollover configures the overflow interrupt to run handler once
	// per counter wrap. Only called in extended mode.
	ArmRollover(handler func())
}

// Profiler implements profiling.Profiler on a Counter.
type Profiler struct {
	counter  Counter
	frac     profiling.Fraction
	rollover profiling.Rollover
	extended bool
	out      profiling.LogWriter
}

// New takes ownership of c, enables and zeroes it, and returns the
// profiler. freq is the declared core frequency; sysclk is the measured
// one from the board's clock setup, and the two must agree. With
// extended set, the overflow interrupt is armed and rollovers are folded
// into every reading.
func New(c Counter, freq, sysclk uint32, extended bool) (*Profiler, error) {
	if freq == 0 || freq != sysclk {
		return nil, fmt.Errorf("%w: declared %d Hz, sysclk %d Hz", ErrFreqMismatch, freq, sysclk)
	}
	if extended && profiling.ContainerBits < 64 {
		return nil, ErrNarrowContainer
	}

	p := &Profiler{
		counter:  c,
		frac:     profiling.Reduce(uint64(freq)),
		extended: extended,
	}

	c.Enable()
	c.Reset()
	if extended {
		c.ArmRollover(p.rollover.Increment)
	}
	return p, nil
}

// ReadClock returns the current cycle count, rollover-extended if
// configured, as a microsecond instant.
func (p *Profiler) ReadClock() profiling.Instant {
	var count uint64
	if p.extended {
		count = p.rollover.ExtendUp(p.counter.Read, Resolution)
	} else {
		count = uint64(p.counter.Read())
	}
	return profiling.InstantFromTicks(profiling.Container(p.frac.Scale(count)))
}

// ResetClock zeroes the counter.
func (p *Profiler) ResetClock() {
	p.counter.Reset()
}

// SetLogWriter directs snapshot output, e.g. at a USB serial writer.
// The default is to drop snapshots.
func (p *Profiler) SetLogWriter(w profiling.LogWriter) {
	p.out = w
}

// LogSnapshot renders the snapshot to the configured writer.
func (p *Profiler) LogSnapshot(s *profiling.Snapshot) {
	if p.out != nil {
		p.out(s.String())
	}
}
