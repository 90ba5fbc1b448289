package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `asn1dump - seed-scenario self-test runner for this module's codecs

Usage:
  asn1dump [run] [options]
  asn1dump list

Commands:
  run         Run every seed scenario and report PASS/FAIL (default)
  list        List the available seed scenarios without running them

Options:
  -json       Emit one diagnostic line per scenario as JSON instead of text
  -quiet      Suppress per-scenario PASS lines; still prints failures and the summary

Use "asn1dump help" for this message.
`)
}
