// Package profiling measures the wall-clock time of named code regions
// on bare-metal targets. It needs no heap, no OS and no floating point:
// clock adapters normalize hardware tick counts to microseconds with
// reduced integer fractions, and completed measurements go to a
// pluggable sink (log line, serial write, GPIO pulse, or nothing).
//
// A profiler is installed once per process with SetProfiler, in the
// manner of a log backend. Until then every operation runs against a
// no-op profiler, so instrumented code never has to check whether
// profiling is configured.
package profiling

// Profiler is the capability every clock adapter provides: a reading of
// its clock, normalized to microsecond ticks. Everything else is
// optional; adapters with more capabilities additionally implement
// SnapshotLogger, ClockResetter or SpanHooks.
type Profiler interface {
	ReadClock() Instant
}

// SnapshotLogger is implemented by profilers that can emit a completed
// snapshot to some sink. Sinks are best-effort: a failing transport must
// be swallowed, never propagated into the profiled code path.
type SnapshotLogger interface {
	LogSnapshot(*Snapshot)
}

// ClockResetter is implemented by profilers whose counter can be reset
// to zero.
type ClockResetter interface {
	ResetClock()
}

// SpanHooks is implemented by profilers that want a side effect at the
// span boundaries, before the clock reads. The pin-toggle profiler uses
// them to raise and lower a trigger line.
type SpanHooks interface {
	AtStart()
	AtEnd()
}

// LogWriter consumes one rendered snapshot line. Hardware adapters hold
// one of these so the board code decides where log output goes (USB
// serial, UART, nowhere).
type LogWriter func(string)

// Start begins a span on p: the AtStart hook fires first if p has one,
// then the clock is read.
func Start(p Profiler) Instant {
	if h, ok := p.(SpanHooks); ok {
		h.AtStart()
	}
	return p.ReadClock()
}

// End finishes a span begun at start. The AtEnd hook fires first if p
// has one, then the clock is read again and checked-subtracted from
// start. A nil snapshot means the counter wrapped during the span and no
// valid duration exists; callers skip logging and move on.
func End(p Profiler, start Instant, name string) *Snapshot {
	if h, ok := p.(SpanHooks); ok {
		h.AtEnd()
	}
	now := p.ReadClock()
	d, ok := now.DurationSince(start)
	if !ok {
		return nil
	}
	return &Snapshot{Name: name, Duration: d}
}

// Log hands s to p's sink. Profilers without a SnapshotLogger silently
// drop it.
func Log(p Profiler, s *Snapshot) {
	if l, ok := p.(SnapshotLogger); ok {
		l.LogSnapshot(s)
	}
}

// noopProfiler stands in while no profiler has been set. Its clock is
// pinned at zero and it logs nothing.
type noopProfiler struct{}

func (noopProfiler) ReadClock() Instant { return 0 }

func (noopProfiler) LogSnapshot(*Snapshot) {}
