//go:build extfloatcheck

package extfloat

import (
	"fmt"
	"math"
)

// assertOrdered backs QuickTwoSum's |a| >= |b| precondition in builds made
// with the extfloatcheck tag. A zero leading operand is exempt: the
// operators reach that state after full cancellation, and the transform
// stays exact there. NaN operands pass, since every comparison on them is
// false and the residual is don't-care anyway.
func assertOrdered(a, b float64) {
	if a != 0 && math.Abs(a) < math.Abs(b) {
		panic(fmt.Sprintf("extfloat: QuickTwoSum operands out of order: |%g| < |%g|", a, b))
	}
}
