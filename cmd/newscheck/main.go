// ABOUTME: Command line front end for the analysis pipeline
// ABOUTME: Analyzes one URL or text and prints the result as JSON

package main

import (
	"os"

	"news-summarizer-api/newscheck"
)

// Exit codes
const (
	exitOK       = 0
	exitPipeline = 1
	exitInput    = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case newscheck.IsInputError(err), isUsageError(err):
		return exitInput
	default:
		return exitPipeline
	}
}
