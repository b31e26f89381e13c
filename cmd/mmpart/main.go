// SPDX-License-Identifier: MIT

// Package main provides the entry point for the mmpart CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/mmpart/cmd/mmpart/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(commands.ExitCode(err))
	}
}
