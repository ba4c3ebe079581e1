// Package main is the entry point for the accounting CLI.
package main

import (
	"os"

	"accounting-formulas/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
