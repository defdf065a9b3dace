package main

import (
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
)

func main() {
	// Hand the args to the CLI runner.
	os.Exit(cli.Run(os.Args[1:]))
}
