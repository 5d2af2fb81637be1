// Package main provides the entry point for the algostep CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/algostep/cmd/algostep/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
