package profiling

import "strconv"

// Instant is a point in time expressed in microsecond ticks since an
// arbitrary epoch. Instants from different profilers are not comparable;
// clock adapters normalize their native tick rate to microseconds before
// constructing one.
type Instant Container

// InstantFromTicks builds an Instant from already-normalized microsecond ticks.
func InstantFromTicks(ticks Container) Instant {
	return Instant(ticks)
}

// Ticks returns the microsecond tick count of the instant.
func (i Instant) Ticks() Container {
	return Container(i)
}

// DurationSince returns the elapsed time between earlier and i.
// The second return value is false if earlier is not actually earlier,
// which happens when the underlying counter wrapped between the two
// readings. Callers must skip the measurement in that case.
func (i Instant) DurationSince(earlier Instant) (Duration, bool) {
	if i < earlier {
		return 0, false
	}
	return Duration(i - earlier), true
}

// Duration is a non-negative elapsed time in microseconds. Durations are
// produced only by Instant.DurationSince, never constructed from a
// negative difference.
type Duration Container

// Microseconds returns the duration in microseconds.
func (d Duration) Microseconds() Container {
	return Container(d)
}

func (d Duration) String() string {
	return strconv.FormatUint(uint64(d), 10) + "µs"
}

// Snapshot is one completed measurement: a caller-supplied label paired
// with the elapsed time of the span. Snapshots are handed to a sink right
// after the span ends and are not retained.
type Snapshot struct {
	Name     string
	Duration Duration
}

func (s *Snapshot) String() string {
	return "<EPSS " + s.Name + ": " + s.Duration.String() + ">"
}
