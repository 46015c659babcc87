package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dekker",
	Short: "Double-double arithmetic demonstration tools",
	Long: `dekker exercises the extfloat double-double arithmetic core.

Tools:
  bench    - precision and timing comparison against native float64
  bits     - bit-level dump of double-double add and mul results
  version  - build information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
}
