package extfloat

import (
	"math"
	"math/big"
)

const (
	// Epsilon is the float64 unit roundoff, 2^-52.
	Epsilon = 0x1p-52

	// EpsilonDD is the double-double unit roundoff, 2^-104. A normalized
	// (hi, lo) pair carries roughly 106 mantissa bits, but the operators
	// are compensated rather than correctly rounded, so results are only
	// guaranteed to this granularity.
	EpsilonDD = 0x1p-104

	// splitConst is Dekker's multiplier 2^27 + 1. Multiplying by it and
	// subtracting rounds a mantissa to its top 26 bits, which is what lets
	// the half-products in TwoProdSplit come out exact.
	splitConst = 134217729.0

	mantissaBits   = 53
	ddMantissaBits = 2 * mantissaBits
)

var (
	// maxSplittable is the largest magnitude Split handles without the
	// splitConst multiply overflowing. Beyond it the split degrades to
	// non-finite halves; that is an accepted edge case, not corrected.
	maxSplittable = math.MaxFloat64 / (1 << 28)

	// refPrec is the working precision for big.Float reference values in
	// the tests and drivers. 200 bits covers the 106-bit double-double
	// mantissa plus the residual of a second rounding with a lot of slack.
	refPrec = uint(200)

	// floatDiffLimit is the maximum disagreement tolerated between a
	// float64 result and the same computation carried out in big.Float.
	//
	// Calculate like so:
	//	return math.Nextafter(1.0, 2.0) - 1.0
	//
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")
)
