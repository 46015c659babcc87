//go:build !extfloatsplit

package extfloat

// TwoProd returns p = fl(a*b) together with the exact residual e. Default
// builds take the fused multiply-add strategy; build with the
// extfloatsplit tag to force Dekker splitting instead. Both strategies
// produce bit-identical results wherever the product and the split stay
// finite.
func TwoProd(a, b float64) (p, e float64) {
	return TwoProdFMA(a, b)
}
