// Package main provides the entry point for asn1dump, a CLI that runs
// this module's seed scenarios against its own encoders and decoders
// and reports which ones round-trip.
package main

import (
	"os"
)

func main() {
	exitCode := run(os.Args)
	os.Exit(exitCode)
}

// run executes the CLI and returns an exit code. Separated from main()
// to facilitate testing.
func run(args []string) int {
	if len(args) < 2 {
		return runCmd(nil)
	}

	switch args[1] {
	case "run":
		return runCmd(args[2:])
	case "list":
		return listCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return 0
	default:
		return runCmd(args[1:])
	}
}
