package cyclecounter

// SimCounter is a software stand-in for the hardware cycle counter,
// used on hosted builds and in tests. Advance moves it forward and
// fires the armed rollover handler when the count wraps, mimicking the
// overflow interrupt.
type SimCounter struct {
	value      uint32
	enabled    bool
	onRollover func()
}

// Enable marks the counter as running.
func (c *SimCounter) Enable() { c.enabled = true }

// Reset zeroes the count.
func (c *SimCounter) Reset() { c.value = 0 }

// Read returns the current count.
func (c *SimCounter) Read() uint32 { return c.value }

// ArmRollover installs the overflow handler.
func (c *SimCounter) ArmRollover(handler func()) { c.onRollover = handler }

// Enabled reports whether Enable has been called.
func (c *SimCounter) Enabled() bool { return c.enabled }

// Set forces the raw count, without rollover detection.
func (c *SimCounter) Set(v uint32) { c.value = v }

// Advance moves the counter forward n ticks, invoking the rollover
// handler once if the count wraps past the 32-bit boundary.
func (c *SimCounter) Advance(n uint32) {
	next := c.value + n
	if next < c.value && c.onRollover != nil {
		c.onRollover()
	}
	c.value = next
}
