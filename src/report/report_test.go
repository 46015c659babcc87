package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTrialBest(t *testing.T) {
	require.Nil(t, Trial{}.Best())

	tr := Trial{
		Name:     "summation",
		Expected: 0.1,
		Methods: []Method{
			{Name: "float64", AbsErr: 3.2e-10},
			{Name: "double-double", AbsErr: 1.1e-25},
			{Name: "kahan", AbsErr: 2.2e-17},
		},
	}
	require.Equal(t, "double-double", tr.Best().Name)

	// Ties resolve to the earlier entry.
	tie := Trial{Methods: []Method{
		{Name: "a", AbsErr: 1},
		{Name: "b", AbsErr: 1},
	}}
	require.Equal(t, "a", tie.Best().Name)
}

func TestConsoleRendersPlainToBuffer(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Begin("precision benchmark")
	c.Report(Trial{
		Name:     "cancellation",
		Expected: 1e-16,
		Methods: []Method{
			{Name: "float64", Value: 0, AbsErr: 1e-16},
			{Name: "double-double", Value: 1e-16, AbsErr: 0, Elapsed: 42 * time.Microsecond},
		},
	})
	c.End()

	out := buf.String()
	require.Contains(t, out, "precision benchmark")
	require.Contains(t, out, c.RunID())
	require.Contains(t, out, "cancellation")
	require.Contains(t, out, "float64")
	require.Contains(t, out, "double-double")
	require.Contains(t, out, "42µs")
	// A buffer is not a terminal: no escape sequences.
	require.NotContains(t, out, "\x1b[")
}

func TestStopwatch(t *testing.T) {
	sw := NewStopwatch()
	require.GreaterOrEqual(t, sw.Elapsed(), time.Duration(0))

	before := sw.Elapsed()
	time.Sleep(time.Millisecond)
	require.Greater(t, sw.Elapsed(), before)

	sw.Reset()
	require.Less(t, sw.Elapsed(), time.Second)
}
