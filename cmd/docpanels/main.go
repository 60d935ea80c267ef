package main

import (
	"os"

	"github.com/Makepad-fr/docpanels/internal/cli"
)

func main() {
	// Hand everything to the CLI runner; it owns flags and exit codes.
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
