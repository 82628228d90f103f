package systick

// SimTicker is a software stand-in for the SysTick timer, used on
// hosted builds and in tests. Advance runs it down and fires the armed
// reload handler on every wrap, mimicking the SysTick exception.
type SimTicker struct {
	value      uint32
	reload     uint32
	running    bool
	onRollover func()
}

// Start configures the down-counter.
func (s *SimTicker) Start(reload uint32) {
	s.reload = reload
	s.value = reload
	s.running = true
}

// Current returns the raw down-counting value.
func (s *SimTicker) Current() uint32 { return s.value }

// ArmRollover installs the reload handler.
func (s *SimTicker) ArmRollover(handler func()) { s.onRollover = handler }

// Running reports whether Start has been called.
func (s *SimTicker) Running() bool { return s.running }

// Set forces the raw value, without reload detection.
func (s *SimTicker) Set(v uint32) { s.value = v }

// Advance runs the timer n cycles, reloading and firing the handler as
// many times as the count passes zero.
func (s *SimTicker) Advance(n uint32) {
	for n > 0 {
		if n <= s.value {
			s.value -= n
			return
		}
		// consume the cycles down to zero plus the reload edge
		n -= s.value + 1
		s.value = s.reload
		if s.onRollover != nil {
			s.onRollover()
		}
	}
}
