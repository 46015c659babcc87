package extfloat

import (
	"math"
	"math/big"
	"strconv"
)

// DoubleDouble is an extended-precision value held as the unevaluated sum
// of two float64 words: hi carries the leading 53 mantissa bits and lo the
// rounding residual of hi, normalized so |lo| <= ulp(hi)/2. Together the
// pair behaves like a float with roughly 106 mantissa bits.
//
// The arithmetic is compensated, not correctly rounded: operator results
// carry an O(ulp(hi)^2) double-rounding error. Values are immutable and
// copied by value; every operator returns a fresh pair, so concurrent use
// needs no locking.
//
// Whenever hi is NaN or infinite, lo carries no information. Operators
// leave whatever the IEEE propagation produced there (typically NaN) and
// consumers treat it as zero.
type DoubleDouble struct {
	hi float64
	lo float64
}

// DoubleDoubleFromFloat64 widens x. The residual word starts at zero.
func DoubleDoubleFromFloat64(x float64) DoubleDouble {
	return DoubleDouble{hi: x}
}

// DoubleDoubleFromParts rebuilds a value from words that crossed an
// interop boundary as two plain scalars. The pair is renormalized through
// TwoSum, so the words need not arrive ordered or normalized.
func DoubleDoubleFromParts(hi, lo float64) DoubleDouble {
	s, e := TwoSum(hi, lo)
	return normalize(s, e)
}

// normalize runs the final QuickTwoSum pass of every operator. A
// non-finite leading word short-circuits with a zeroed residual: the
// error-free transforms leave NaN in the residual whenever the leading
// sum or product is NaN or infinite, and folding that NaN back in would
// clobber an infinity that native semantics say should propagate.
func normalize(s, lo float64) DoubleDouble {
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return DoubleDouble{hi: s}
	}
	s, e := QuickTwoSum(s, lo)
	return DoubleDouble{hi: s, lo: e}
}

// Hi returns the leading word.
func (d DoubleDouble) Hi() float64 { return d.hi }

// Lo returns the residual word. It is meaningless whenever Hi is NaN or
// infinite.
func (d DoubleDouble) Lo() float64 { return d.lo }

// ToFloat64 rounds the value to a single float64. The pair is not
// renormalized first; hi + lo under native rounding is the contract. An
// infinite hi short-circuits so that a don't-care NaN in lo cannot
// clobber the propagated infinity.
func (d DoubleDouble) ToFloat64() float64 {
	if math.IsInf(d.hi, 0) {
		return d.hi
	}
	return d.hi + d.lo
}

// IsNaN reports whether the value is not-a-number.
func (d DoubleDouble) IsNaN() bool {
	return math.IsNaN(d.hi)
}

// IsInf reports whether the value is infinite in either direction.
func (d DoubleDouble) IsInf() bool {
	return math.IsInf(d.hi, 0)
}

// Equal reports word-wise equality. It follows float64 comparison
// semantics, so NaN values never compare equal.
func (d DoubleDouble) Equal(n DoubleDouble) bool {
	return d.hi == n.hi && d.lo == n.lo
}

// Add returns d + n as a normalized pair.
func (d DoubleDouble) Add(n DoubleDouble) DoubleDouble {
	s, e := TwoSum(d.hi, n.hi)
	return normalize(s, d.lo+n.lo+e)
}

// AddFloat64 returns d + b, one addition cheaper than widening b and
// calling Add.
func (d DoubleDouble) AddFloat64(b float64) DoubleDouble {
	s, e := TwoSum(d.hi, b)
	return normalize(s, d.lo+e)
}

// Neg returns -d. Negating both words is exact.
func (d DoubleDouble) Neg() DoubleDouble {
	return DoubleDouble{hi: -d.hi, lo: -d.lo}
}

// Sub returns d - n as a normalized pair.
func (d DoubleDouble) Sub(n DoubleDouble) DoubleDouble {
	s, e := TwoDiff(d.hi, n.hi)
	return normalize(s, d.lo-n.lo+e)
}

// SubFloat64 returns d - b.
func (d DoubleDouble) SubFloat64(b float64) DoubleDouble {
	s, e := TwoDiff(d.hi, b)
	return normalize(s, d.lo+e)
}

// mulCross folds the hi*hi, hi*lo and lo*hi partial products of d*n. The
// accumulation order is fixed: the leading product first, then the cross
// terms one at a time through Add. Float addition is not associative, so
// reordering would change the low bits.
func (d DoubleDouble) mulCross(n DoubleDouble) DoubleDouble {
	p, e := TwoProd(d.hi, n.hi)
	r := DoubleDouble{hi: p, lo: e}
	p, e = TwoProd(d.hi, n.lo)
	r = r.Add(DoubleDouble{hi: p, lo: e})
	p, e = TwoProd(d.lo, n.hi)
	return r.Add(DoubleDouble{hi: p, lo: e})
}

// Mul returns d * n with all four partial products folded in, lo*lo last.
func (d DoubleDouble) Mul(n DoubleDouble) DoubleDouble {
	r := d.mulCross(n)
	p, e := TwoProd(d.lo, n.lo)
	return r.Add(DoubleDouble{hi: p, lo: e})
}

// MulFast returns d * n without the lo*lo partial product, trading the
// bottom few bits of the residual for one fewer error-free transform and
// one fewer Add. Use Mul where those bits matter.
func (d DoubleDouble) MulFast(n DoubleDouble) DoubleDouble {
	return d.mulCross(n)
}

// MulFloat64 returns d * b.
func (d DoubleDouble) MulFloat64(b float64) DoubleDouble {
	p, e := TwoProd(d.hi, b)
	return normalize(p, d.lo*b+e)
}

// AsBigFloat returns hi + lo evaluated at the package reference precision,
// for checking results against exact arithmetic.
func (d DoubleDouble) AsBigFloat() *big.Float {
	f := new(big.Float).SetPrec(refPrec).SetFloat64(d.hi)
	return f.Add(f, new(big.Float).SetPrec(refPrec).SetFloat64(d.lo))
}

// String renders both words at full precision so failures show the whole
// 106-bit state, not just the rounded value.
func (d DoubleDouble) String() string {
	return "(" + strconv.FormatFloat(d.hi, 'g', 17, 64) +
		", " + strconv.FormatFloat(d.lo, 'g', 17, 64) + ")"
}
