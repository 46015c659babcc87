//go:build !extfloatcheck

package extfloat

// assertOrdered compiles to nothing unless the extfloatcheck build tag is
// set, keeping QuickTwoSum branch-free in release builds.
func assertOrdered(a, b float64) {}
