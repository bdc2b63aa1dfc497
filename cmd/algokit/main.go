// SPDX-License-Identifier: MIT

// Command algokit runs one utility card per invocation:
//
//	algokit reverse hello world      -> dlrow olleh
//	algokit even-odd -3              -> Odd
//	echo "3, 7, two" | algokit max-csv -> 7
//	algokit list                     -> card names and titles
//
// Arguments are joined with single spaces; with no arguments stdin is read.
package main

import "os"

// exitCodeFailure is returned when a card cannot read its input or write its result.
const exitCodeFailure = 1

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command with args and returns the process exit code.
func run(args []string) int {
	rootCommand := newRootCommand()
	rootCommand.SetArgs(args)
	if executeError := rootCommand.Execute(); executeError != nil {
		return exitCodeFailure
	}
	return 0
}
