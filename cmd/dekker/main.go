package main

import (
	"os"

	"dekker/cmd/dekker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
