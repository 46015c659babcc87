package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config drives the demonstration tools. Every knob has a default, so the
// tools run without a file.
type Config struct {
	Bench BenchConfig `toml:"bench"`
}

type BenchConfig struct {
	// SumIterations and SmallValue shape the accumulation trial: the sum
	// of SmallValue repeated SumIterations times.
	SumIterations int     `toml:"sum-iterations"`
	SmallValue    float64 `toml:"small-value"`

	// ProductIterations is the length of the near-unity product trial.
	ProductIterations int `toml:"product-iterations"`

	// RefineSteps is the Newton iteration count for the 1/3 trial.
	RefineSteps int `toml:"refine-steps"`

	// CrossTerm selects the full double-double multiply, which folds in
	// the lo*lo partial product. Disabling it uses the cheaper variant
	// that drops the bottom few result bits.
	CrossTerm bool `toml:"cross-term"`
}

func defaultConfig() Config {
	return Config{
		Bench: BenchConfig{
			SumIterations:     10_000_000,
			SmallValue:        1e-8,
			ProductIterations: 100_000,
			RefineSteps:       3,
			CrossTerm:         true,
		},
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}
