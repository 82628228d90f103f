package profiling

// Span is a scoped measurement: Begin starts it, End finishes and logs
// it. Deferring End covers every exit path of the enclosing block,
// which is the intended way to profile a whole function:
//
//	func decode(buf []byte) error {
//		defer profiling.Begin("decode").End()
//		// ...
//	}
type Span struct {
	p     Profiler
	name  string
	start Instant
}

// Begin starts a named span on the active profiler.
func Begin(name string) *Span {
	return BeginOn(ActiveProfiler(), name)
}

// BeginOn starts a named span on a specific profiler.
func BeginOn(p Profiler, name string) *Span {
	return &Span{p: p, name: name, start: Start(p)}
}

// End finishes the span and logs the snapshot if a valid duration was
// measured.
func (s *Span) End() {
	if snap := End(s.p, s.start, s.name); snap != nil {
		Log(s.p, snap)
	}
}

// Profile runs target as a named span on the active profiler and returns
// its result unchanged. Per invocation there is exactly one
// start/end/log cycle: begin hook, clock read, target, end hook, clock
// read, sink.
func Profile[R any](name string, target func() R) R {
	start := StartSnapshot()
	ret := target()
	if snap := EndSnapshot(start, name); snap != nil {
		LogSnapshot(snap)
	}
	return ret
}

// ProfileFunc is Profile for targets with no return value.
func ProfileFunc(name string, target func()) {
	start := StartSnapshot()
	target()
	if snap := EndSnapshot(start, name); snap != nil {
		LogSnapshot(snap)
	}
}
