package cmd

import (
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"dekker/src/arith/extfloat"
	"dekker/src/report"
)

// refBits is the big.Float working precision for truth values, well past
// the 106-bit double-double mantissa.
const refBits = 200

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare double-double precision and cost against native float64",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		runBench(cfg.Bench, report.NewConsole(os.Stdout))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func runBench(cfg BenchConfig, rep report.Reporter) {
	rep.Begin("double-double precision benchmark")
	rep.Report(refineTrial(cfg))
	rep.Report(cancellationTrial())
	rep.Report(summationTrial(cfg))
	rep.Report(productTrial(cfg))
	rep.End()
}

// mul returns the configured double-double multiply: the full product
// with the lo*lo cross term, or the faster variant without it.
func (cfg BenchConfig) mul() func(a, b extfloat.DoubleDouble) extfloat.DoubleDouble {
	if cfg.CrossTerm {
		return extfloat.DoubleDouble.Mul
	}
	return extfloat.DoubleDouble.MulFast
}

func newRef() *big.Float {
	return new(big.Float).SetPrec(refBits)
}

func ddAsRef(d extfloat.DoubleDouble) *big.Float {
	f := newRef().SetFloat64(d.Hi())
	return f.Add(f, newRef().SetFloat64(d.Lo()))
}

func absErr(got, truth *big.Float) float64 {
	diff := newRef().Sub(got, truth)
	f, _ := diff.Abs(diff).Float64()
	return f
}

// refineTrial approximates 1/3 by Newton iteration x <- x + x*(1 - 3x)
// run entirely in double-double arithmetic from the float64 seed.
func refineTrial(cfg BenchConfig) report.Trial {
	truth := newRef().SetRat(big.NewRat(1, 3))
	native := 1.0 / 3.0

	mul := cfg.mul()
	one := extfloat.DoubleDoubleFromFloat64(1)
	x := extfloat.DoubleDoubleFromFloat64(native)
	for i := 0; i < cfg.RefineSteps; i++ {
		e := one.Sub(x.MulFloat64(3))
		x = x.Add(mul(x, e))
	}

	expected, _ := truth.Float64()
	return report.Trial{
		Name:     "representing 1/3",
		Expected: expected,
		Methods: []report.Method{
			{Name: "float64", Value: native, AbsErr: absErr(newRef().SetFloat64(native), truth)},
			{Name: "double-double", Value: x.ToFloat64(), AbsErr: absErr(ddAsRef(x), truth)},
		},
	}
}

// cancellationTrial recovers a small addend through (1 + 1e-16) - 1,
// which collapses to zero in plain float64.
func cancellationTrial() report.Trial {
	const small = 1e-16
	truth := newRef().SetFloat64(small)

	native := (1.0 + small) - 1.0
	dd := extfloat.DoubleDoubleFromFloat64(1).
		Add(extfloat.DoubleDoubleFromFloat64(small)).
		AddFloat64(-1)

	return report.Trial{
		Name:     "catastrophic cancellation: (1 + 1e-16) - 1",
		Expected: small,
		Methods: []report.Method{
			{Name: "float64", Value: native, AbsErr: absErr(newRef().SetFloat64(native), truth)},
			{Name: "double-double", Value: dd.ToFloat64(), AbsErr: absErr(ddAsRef(dd), truth)},
		},
	}
}

// summationTrial accumulates a small value many times, timing native,
// Kahan-compensated and double-double loops against the exact sum.
func summationTrial(cfg BenchConfig) report.Trial {
	n := cfg.SumIterations
	small := cfg.SmallValue

	truth := newRef().SetFloat64(small)
	truth.Mul(truth, newRef().SetInt64(int64(n)))

	sw := report.NewStopwatch()
	var native float64
	for i := 0; i < n; i++ {
		native += small
	}
	nativeTime := sw.Elapsed()

	sw.Reset()
	var kahanSum, kahanC float64
	for i := 0; i < n; i++ {
		y := small - kahanC
		t := kahanSum + y
		kahanC = (t - kahanSum) - y
		kahanSum = t
	}
	kahanTime := sw.Elapsed()

	sw.Reset()
	ddSum := extfloat.DoubleDoubleFromFloat64(0)
	ddSmall := extfloat.DoubleDoubleFromFloat64(small)
	for i := 0; i < n; i++ {
		ddSum = ddSum.Add(ddSmall)
	}
	ddTime := sw.Elapsed()

	expected, _ := truth.Float64()
	return report.Trial{
		Name:     "summation of many small values",
		Expected: expected,
		Methods: []report.Method{
			{Name: "float64", Value: native, AbsErr: absErr(newRef().SetFloat64(native), truth), Elapsed: nativeTime},
			{Name: "kahan", Value: kahanSum, AbsErr: absErr(newRef().SetFloat64(kahanSum), truth), Elapsed: kahanTime},
			{Name: "double-double", Value: ddSum.ToFloat64(), AbsErr: absErr(ddAsRef(ddSum), truth), Elapsed: ddTime},
		},
	}
}

// productTrial multiplies a near-unity factor many times. The truth is
// computed alongside in big.Float rather than through the exp()
// approximation, so the reported errors are honest.
func productTrial(cfg BenchConfig) report.Trial {
	n := cfg.ProductIterations
	nearOne := 1.0 + 1e-8

	factor := newRef().SetFloat64(nearOne)
	truth := newRef().SetInt64(1)
	for i := 0; i < n; i++ {
		truth.Mul(truth, factor)
	}

	mul := cfg.mul()

	sw := report.NewStopwatch()
	native := 1.0
	for i := 0; i < n; i++ {
		native *= nearOne
	}
	nativeTime := sw.Elapsed()

	sw.Reset()
	ddProd := extfloat.DoubleDoubleFromFloat64(1)
	ddNearOne := extfloat.DoubleDoubleFromFloat64(nearOne)
	for i := 0; i < n; i++ {
		ddProd = mul(ddProd, ddNearOne)
	}
	ddTime := sw.Elapsed()

	expected, _ := truth.Float64()
	return report.Trial{
		Name:     "product of near-unity values",
		Expected: expected,
		Methods: []report.Method{
			{Name: "float64", Value: native, AbsErr: absErr(newRef().SetFloat64(native), truth), Elapsed: nativeTime},
			{Name: "double-double", Value: ddProd.ToFloat64(), AbsErr: absErr(ddAsRef(ddProd), truth), Elapsed: ddTime},
		},
	}
}
