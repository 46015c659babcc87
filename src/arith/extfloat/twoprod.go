package extfloat

import "math"

// Split decomposes a into hi + lo where hi carries the top 26 mantissa
// bits and lo the remaining 26, so that any product of halves is exact in
// float64. This is Dekker's splitting. For |a| beyond maxSplittable the
// splitConst multiply overflows and the halves come out non-finite.
func Split(a float64) (hi, lo float64) {
	t := splitConst * a
	hi = t - (t - a)
	lo = a - hi
	return hi, lo
}

// TwoProdSplit returns p = fl(a*b) together with the exact residual e,
// using mantissa splitting only. It is the portable strategy for targets
// whose fused multiply-add cannot be trusted to round once.
//
// The grouping of the residual is load-bearing: aHi*bHi must absorb -p
// before any cross term joins, and the cross terms fold in left to right.
// Reordering changes the low bits.
func TwoProdSplit(a, b float64) (p, e float64) {
	p = a * b
	aHi, aLo := Split(a)
	bHi, bLo := Split(b)
	e = ((aHi*bHi - p) + aHi*bLo + aLo*bHi) + aLo*bLo
	return p, e
}

// TwoProdFMA returns p = fl(a*b) together with the exact residual e,
// computed as a single fused multiply-add. math.FMA rounds once even on
// targets without an fma instruction (the runtime falls back to a
// correctly rounded software path), so the residual is exact everywhere
// the product does not overflow.
func TwoProdFMA(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)
	return p, e
}
