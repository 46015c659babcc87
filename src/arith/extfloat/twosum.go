package extfloat

// TwoSum returns s = fl(a+b) together with the exact residual e, so that
// s + e reconstructs a + b in real arithmetic. It places no constraint on
// the relative magnitudes of a and b. With a non-finite operand, or a sum
// that overflows, e comes out NaN; callers that normalize through
// QuickTwoSum afterwards mask that per the usual IEEE propagation rules.
func TwoSum(a, b float64) (s, e float64) {
	s = a + b
	v := s - a
	e = (a - (s - v)) + (b - v)
	return s, e
}

// QuickTwoSum is TwoSum minus three additions for callers that already
// know |a| >= |b|. Violating the precondition silently yields a wrong,
// non-exact residual rather than a crash; every call site inside this
// package supplies operands in the required order. Builds made with the
// extfloatcheck tag panic on misuse instead.
func QuickTwoSum(a, b float64) (s, e float64) {
	assertOrdered(a, b)
	s = a + b
	e = b - (s - a)
	return s, e
}

// TwoDiff returns s = fl(a-b) together with the exact residual e, the
// subtractive counterpart of TwoSum.
func TwoDiff(a, b float64) (s, e float64) {
	s = a - b
	v := s - a
	e = (a - (s - v)) - (b + v)
	return s, e
}
