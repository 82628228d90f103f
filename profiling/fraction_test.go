package profiling

import "testing"

func TestGCD(t *testing.T) {
	testCases := []struct {
		u, v, want uint64
	}{
		{0, 5, 5},
		{5, 0, 5},
		{1, 1, 1},
		{12, 8, 4},
		{8, 12, 4},
		{1_000_000, 120_000_000, 1_000_000},
		{1_000_000, 48_000_000, 1_000_000},
		{1_000_000, 32_768, 64},
		{1_000_000, 1_000_000, 1_000_000},
		{270, 192, 6},
	}

	for _, tc := range testCases {
		if got := gcd(tc.u, tc.v); got != tc.want {
			t.Errorf("gcd(%d, %d) = %d, want %d", tc.u, tc.v, got, tc.want)
		}
	}
}

func TestReduce(t *testing.T) {
	testCases := []struct {
		rate     uint64
		num, den uint64
	}{
		{120_000_000, 1, 120},
		{48_000_000, 1, 48},
		{1_000_000, 1, 1},
		{8_000_000, 1, 8},
		{500_000, 2, 1},
		{32_768, 15625, 512},
	}

	for _, tc := range testCases {
		f := Reduce(tc.rate)
		if f.Num != tc.num || f.Den != tc.den {
			t.Errorf("Reduce(%d) = %d/%d, want %d/%d", tc.rate, f.Num, f.Den, tc.num, tc.den)
		}
		if g := gcd(f.Num, f.Den); g != 1 {
			t.Errorf("Reduce(%d) = %d/%d not fully reduced, gcd %d", tc.rate, f.Num, f.Den, g)
		}
	}
}

func TestScaleMatchesUnreduced(t *testing.T) {
	rates := []uint64{120_000_000, 48_000_000, 8_000_000, 1_000_000, 500_000, 32_768}
	ticks := []uint64{0, 1, 119, 120, 121, 120_000, 0x00FF_FFFF, 1 << 32}

	for _, rate := range rates {
		f := Reduce(rate)
		for _, tk := range ticks {
			want := tk * MicrosPerSecond / rate
			if got := f.Scale(tk); got != want {
				t.Errorf("rate %d: Scale(%d) = %d, want %d", rate, tk, got, want)
			}
		}
	}
}

func TestScale120MHz(t *testing.T) {
	// 120_000 cycles at 120 MHz is exactly one millisecond
	f := Reduce(120_000_000)
	if got := f.Scale(120_000); got != 1_000 {
		t.Errorf("Scale(120000) = %dµs, want 1000µs", got)
	}
}
