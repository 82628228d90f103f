package profiling

import "math/bits"

// MicrosPerSecond is the tick rate of Instant and Duration.
const MicrosPerSecond = 1_000_000

// Fraction is a reduced ratio used to convert native clock ticks to
// microsecond ticks with integer math only. For a clock running at
// `rate` Hz, ticks*Num/Den == ticks*1_000_000/rate with the smallest
// possible intermediate values.
type Fraction struct {
	Num uint64
	Den uint64
}

// Reduce computes the reduced conversion fraction for a native clock
// rate in Hz. Adapters call this once at construction; 120 MHz reduces
// to 1/120.
func Reduce(rate uint64) Fraction {
	g := gcd(MicrosPerSecond, rate)
	return Fraction{Num: MicrosPerSecond / g, Den: rate / g}
}

// Scale converts a native tick count to microsecond ticks.
func (f Fraction) Scale(ticks uint64) uint64 {
	return ticks * f.Num / f.Den
}

// gcd is the binary GCD: strip the common power-of-two factor with
// trailing-zero counts, reduce by subtraction on odd operands, then
// restore the factor.
func gcd(u, v uint64) uint64 {
	if u == 0 {
		return v
	}
	if v == 0 {
		return u
	}

	i := bits.TrailingZeros64(u)
	u >>= i
	j := bits.TrailingZeros64(v)
	v >>= j

	k := i
	if j < k {
		k = j
	}

	for {
		// u and v are both odd here
		if u > v {
			u, v = v, u
		}
		v -= u

		if v == 0 {
			return u << k
		}

		v >>= bits.TrailingZeros64(v)
	}
}
