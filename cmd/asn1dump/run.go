package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/asn1rt/asn1rt/internal/diag"
	"github.com/fatih/color"
)

// runCmd runs every seed scenario and prints a PASS/FAIL line for each,
// colored the way a terminal test runner would (green pass, red fail).
func runCmd(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "emit JSON diagnostics instead of colored text")
	quiet := fs.Bool("quiet", false, "suppress PASS lines")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	format := diag.FormatText
	if *asJSON {
		format = diag.FormatJSON
	}
	log := diag.New(os.Stdout, diag.LevelDebug, format)

	failures := 0
	for _, sc := range scenarios() {
		err := sc.run()
		if err != nil {
			failures++
			log.Error("scenario failed", "name", sc.name, "desc", sc.desc, "err", err.Error())
			printResult(os.Stdout, sc.name, false)
			continue
		}
		if !*quiet {
			log.Info("scenario passed", "name", sc.name, "desc", sc.desc)
			printResult(os.Stdout, sc.name, true)
		}
	}

	total := len(scenarios())
	fmt.Fprintf(os.Stdout, "\n%d/%d scenarios passed\n", total-failures, total)
	if failures > 0 {
		return 1
	}
	return 0
}

func printResult(w io.Writer, name string, ok bool) {
	label := "PASS"
	printer := color.New(color.FgGreen)
	if !ok {
		label = "FAIL"
		printer = color.New(color.FgRed, color.Bold)
	}
	fmt.Fprintf(w, "%s  %s\n", printer.SprintFunc()(label), name)
}

// listCmd prints every seed scenario's name and description without
// running it.
func listCmd(args []string) int {
	for _, sc := range scenarios() {
		fmt.Printf("%-28s %s\n", sc.name, sc.desc)
	}
	return 0
}
