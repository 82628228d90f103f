package profiling

import "testing"

// scriptedReads returns a read function that pops values off the script
// one call at a time, failing the test if the tracker reads more than
// the scenario provides.
func scriptedReads(t *testing.T, script []uint32) func() uint32 {
	t.Helper()
	i := 0
	return func() uint32 {
		if i >= len(script) {
			t.Fatalf("read #%d beyond script of %d values", i+1, len(script))
		}
		v := script[i]
		i++
		return v
	}
}

func TestExtendUpNoWrap(t *testing.T) {
	var r Rollover
	r.Increment()
	r.Increment()

	const resolution = uint64(1) << 32
	read := scriptedReads(t, []uint32{100, 101})

	got := r.ExtendUp(read, resolution)
	want := 2*resolution + 100
	if got != want {
		t.Errorf("ExtendUp = %d, want %d", got, want)
	}
}

func TestExtendUpWrapBetweenReads(t *testing.T) {
	// The counter wraps from 0xFFFFFFFF to a small value between the two
	// raw reads, and the interrupt increments the rollover in the same
	// window. The tracker must discard the stale first reading and pair
	// the re-read rollover with the second one.
	var r Rollover
	const resolution = uint64(1) << 32

	i := 0
	read := func() uint32 {
		i++
		if i == 1 {
			return 0xFFFF_FFFF
		}
		r.Increment() // interrupt fired before the second read
		return 3
	}

	got := r.ExtendUp(read, resolution)
	want := 1*resolution + 3
	if got != want {
		t.Errorf("ExtendUp across wrap = %d, want %d", got, want)
	}
}

func TestExtendUpMonotonicAcrossWrap(t *testing.T) {
	// Reads straddling the wrap must give a strictly increasing extended
	// sequence with no jump of a full counter period.
	var r Rollover
	const resolution = uint64(1) << 32

	before := r.ExtendUp(scriptedReads(t, []uint32{0xFFFF_FFFE, 0xFFFF_FFFF}), resolution)
	r.Increment() // the wrap
	after := r.ExtendUp(scriptedReads(t, []uint32{0, 1}), resolution)

	if after <= before {
		t.Fatalf("extended count went backwards: %d then %d", before, after)
	}
	if diff := after - before; diff > 2 {
		t.Errorf("discontinuity of %d ticks across wrap, want <= 2", diff)
	}
}

func TestExtendDownNoWrap(t *testing.T) {
	var r Rollover
	const (
		reload     = uint32(0x00FF_FFFF)
		resolution = uint64(0x0100_0000)
	)

	read := scriptedReads(t, []uint32{reload - 500, reload - 510})
	got := r.ExtendDown(read, reload, resolution)
	if got != 500 {
		t.Errorf("ExtendDown = %d, want 500", got)
	}
}

func TestExtendDownReloadBoundary(t *testing.T) {
	// One read right before the reload and one right after must differ by
	// one extended tick, not by the reload value.
	var r Rollover
	const (
		reload     = uint32(0x00FF_FFFF)
		resolution = uint64(0x0100_0000)
	)

	before := r.ExtendDown(scriptedReads(t, []uint32{0, 0}), reload, resolution)
	r.Increment()
	after := r.ExtendDown(scriptedReads(t, []uint32{reload, reload}), reload, resolution)

	if after-before != 1 {
		t.Errorf("reload boundary step = %d ticks, want 1", after-before)
	}
}

func TestExtendDownWrapBetweenReads(t *testing.T) {
	var r Rollover
	const (
		reload     = uint32(0x00FF_FFFF)
		resolution = uint64(0x0100_0000)
	)

	i := 0
	read := func() uint32 {
		i++
		if i == 1 {
			return 2 // almost at zero
		}
		r.Increment() // reload happened, interrupt fired
		return reload - 1
	}

	got := r.ExtendDown(read, reload, resolution)
	want := 1*resolution + 1
	if got != want {
		t.Errorf("ExtendDown across reload = %d, want %d", got, want)
	}
}

func TestRolloverCount(t *testing.T) {
	var r Rollover
	if r.Count() != 0 {
		t.Fatalf("fresh Rollover count = %d, want 0", r.Count())
	}
	for i := 0; i < 5; i++ {
		r.Increment()
	}
	if r.Count() != 5 {
		t.Errorf("count = %d after 5 increments", r.Count())
	}
}
