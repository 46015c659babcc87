package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dekker/src/report"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
	require.True(t, cfg.Bench.CrossTerm)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dekker.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[bench]
sum-iterations = 1000
cross-term = false
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.Bench.SumIterations)
	require.False(t, cfg.Bench.CrossTerm)
	// Unset keys keep their defaults.
	require.Equal(t, defaultConfig().Bench.SmallValue, cfg.Bench.SmallValue)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

// captureReporter records trials so the trial builders can be checked
// without parsing console output.
type captureReporter struct {
	session string
	trials  []report.Trial
	ended   bool
}

func (c *captureReporter) Begin(session string) { c.session = session }
func (c *captureReporter) Report(t report.Trial) {
	c.trials = append(c.trials, t)
}
func (c *captureReporter) End() { c.ended = true }

func TestRunBenchTrials(t *testing.T) {
	cfg := BenchConfig{
		SumIterations:     10_000,
		SmallValue:        1e-8,
		ProductIterations: 1_000,
		RefineSteps:       3,
		CrossTerm:         true,
	}

	rep := &captureReporter{}
	runBench(cfg, rep)

	require.True(t, rep.ended)
	require.Len(t, rep.trials, 4)

	// The pair must win every trial outright.
	for _, trial := range rep.trials {
		best := trial.Best()
		require.NotNil(t, best, trial.Name)
		require.Equal(t, "double-double", best.Name,
			"%s: expected double-double to have the smallest error", trial.Name)
	}
}

func TestCancellationTrialRecoversAddend(t *testing.T) {
	trial := cancellationTrial()
	require.Len(t, trial.Methods, 2)
	require.Equal(t, 0.0, trial.Methods[0].Value, "plain float64 must lose the addend")
	require.Equal(t, 1e-16, trial.Methods[1].Value)
	require.Zero(t, trial.Methods[1].AbsErr)
}
