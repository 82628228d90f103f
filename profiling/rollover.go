package profiling

import "sync/atomic"

// Rollover counts how many times a free-running hardware counter has
// wrapped. It is incremented from exactly one overflow interrupt handler
// and read from clock adapters; together with the double-read protocol
// in ExtendUp/ExtendDown it widens a narrow counter to a 64-bit tick
// count. This is the one piece of shared mutable state in the package.
type Rollover struct {
	count uint32
}

// Increment records one counter wrap. Call it from the overflow
// interrupt handler and nowhere else.
func (r *Rollover) Increment() {
	atomic.AddUint32(&r.count, 1)
}

// Count returns the number of wraps observed so far.
func (r *Rollover) Count() uint32 {
	return atomic.LoadUint32(&r.count)
}

// ExtendUp reads an up-counting counter that wraps from its maximum back
// to zero and returns the extended tick count rollover*resolution+raw.
//
// The counter can wrap between the rollover read and the raw read, which
// would make the result off by one full counter period. To detect that,
// the raw counter is read twice with the rollover read sandwiched in
// between. If the second reading did not go backwards, no wrap happened
// and the rollover value is valid for the first reading. If it did, the
// rollover is re-read (the interrupt has had time to fire) and paired
// with the second reading.
func (r *Rollover) ExtendUp(read func() uint32, resolution uint64) uint64 {
	first := read()
	count := uint64(r.Count())
	second := read()

	if second >= first {
		return count*resolution + uint64(first)
	}
	count = uint64(r.Count())
	return count*resolution + uint64(second)
}

// ExtendDown is ExtendUp for a down-counting reload timer: the counter
// runs from reload down to zero and then reloads. The raw reading is
// inverted to an elapsed count (reload - raw) and wrap detection uses
// the opposite ordering, since between two reads the value normally
// decreases.
func (r *Rollover) ExtendDown(read func() uint32, reload uint32, resolution uint64) uint64 {
	first := read()
	count := uint64(r.Count())
	second := read()

	if first > second {
		return count*resolution + uint64(reload-first)
	}
	count = uint64(r.Count())
	return count*resolution + uint64(reload-second)
}
