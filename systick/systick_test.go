package systick

import (
	"errors"
	"testing"

	"microprof/profiling"
)

const coreFreq = 120_000_000

func TestNewRejectsFreqMismatch(t *testing.T) {
	testCases := []struct {
		name   string
		freq   uint32
		sysclk uint32
	}{
		{"mismatch", coreFreq, 48_000_000},
		{"zero", 0, 0},
	}

	for _, tc := range testCases {
		if _, err := New(&SimTicker{}, tc.freq, tc.sysclk, false); !errors.Is(err, ErrFreqMismatch) {
			t.Errorf("%s: New error = %v, want ErrFreqMismatch", tc.name, err)
		}
	}
}

func TestNewStartsTimerAtReload(t *testing.T) {
	sim := &SimTicker{}
	p, err := New(sim, coreFreq, coreFreq, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !sim.Running() {
		t.Error("timer not started at construction")
	}

	// A freshly reloaded timer reads the full reload value, which is
	// zero elapsed ticks.
	if ticks := p.ReadClock().Ticks(); ticks != 0 {
		t.Errorf("ReadClock just after reload = %dµs, want 0", ticks)
	}
}

func TestReadClockScalesToMicros(t *testing.T) {
	sim := &SimTicker{}
	p, err := New(sim, coreFreq, coreFreq, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// 120_000 cycles at 120 MHz is 1000µs
	sim.Set(Reload - 120_000)
	if ticks := p.ReadClock().Ticks(); ticks != 1_000 {
		t.Errorf("ReadClock = %dµs, want 1000µs", ticks)
	}
}

func TestSpanAcrossReloadWithoutExtension(t *testing.T) {
	// Without rollover tracking a reload mid-span makes the end reading
	// smaller than the start; the span API must yield no snapshot.
	sim := &SimTicker{}
	p, err := New(sim, coreFreq, coreFreq, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sim.Set(100) // almost expired
	start := profiling.Start(p)
	sim.Advance(200) // runs through the reload
	if snap := profiling.End(p, start, "wrapped"); snap != nil {
		t.Errorf("End = %v, want nil across an untracked reload", snap)
	}
}

func TestExtendedMode(t *testing.T) {
	if profiling.ContainerBits < 64 {
		sim := &SimTicker{}
		if _, err := New(sim, coreFreq, coreFreq, true); !errors.Is(err, ErrNarrowContainer) {
			t.Fatalf("New extended error = %v, want ErrNarrowContainer", err)
		}
		return
	}

	sim := &SimTicker{}
	p, err := New(sim, coreFreq, coreFreq, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Readings immediately before and after a reload must differ by one
	// native tick, not by a full timer period.
	sim.Set(0)
	before := p.ReadClock()
	sim.Advance(1) // reload edge, handler fires
	after := p.ReadClock()

	d, ok := after.DurationSince(before)
	if !ok {
		t.Fatal("extended reading went backwards across reload")
	}
	if d.Microseconds() != 0 {
		// one 120 MHz cycle is well under a microsecond
		t.Errorf("duration across reload = %dµs, want 0", d.Microseconds())
	}

	// And a longer span across the reload still measures correctly.
	sim.Set(120_000)
	start := profiling.Start(p)
	sim.Advance(240_000) // passes through a reload
	snap := profiling.End(p, start, "long")
	if snap == nil {
		t.Fatal("End returned nil in extended mode")
	}
	if snap.Duration.Microseconds() != 2_000 {
		t.Errorf("duration = %dµs, want 2000µs", snap.Duration.Microseconds())
	}
}

func TestLogWriter(t *testing.T) {
	sim := &SimTicker{}
	p, err := New(sim, coreFreq, coreFreq, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var lines []string
	p.SetLogWriter(func(s string) { lines = append(lines, s) })
	p.LogSnapshot(&profiling.Snapshot{Name: "tick", Duration: 7})
	if len(lines) != 1 || lines[0] != "<EPSS tick: 7µs>" {
		t.Errorf("logged %v", lines)
	}
}
