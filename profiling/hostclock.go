//go:build !tinygo

package profiling

import (
	"log"
	"time"
)

// HostProfiler measures spans with the host monotonic clock. It exists
// for tests and for exercising instrumented code on a development
// machine before flashing; firmware uses the hardware adapters instead.
type HostProfiler struct {
	epoch time.Time
	out   LogWriter
}

// NewHostProfiler returns a profiler anchored at the current time,
// logging through the standard logger.
func NewHostProfiler() *HostProfiler {
	return &HostProfiler{
		epoch: time.Now(),
		out:   func(s string) { log.Print(s) },
	}
}

// SetLogWriter redirects snapshot output. A nil writer silences it.
func (h *HostProfiler) SetLogWriter(w LogWriter) {
	h.out = w
}

// ReadClock returns the microseconds elapsed since the profiler was
// created, truncated to the container width.
func (h *HostProfiler) ReadClock() Instant {
	return InstantFromTicks(Container(time.Since(h.epoch).Microseconds()))
}

// LogSnapshot writes the rendered snapshot to the configured writer.
func (h *HostProfiler) LogSnapshot(s *Snapshot) {
	if h.out != nil {
		h.out(s.String())
	}
}
