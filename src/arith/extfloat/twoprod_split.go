//go:build extfloatsplit

package extfloat

// TwoProd returns p = fl(a*b) together with the exact residual e. This
// build was made with the extfloatsplit tag, so the residual comes from
// Dekker splitting rather than math.FMA.
func TwoProd(a, b float64) (p, e float64) {
	return TwoProdSplit(a, b)
}
