// Package main is the trim command line tool.
//
// Usage:
//
//	trim [flags] <command> [args]
//
// Commands:
//
//	process  - Run a WAV file through the trim processor
//	analyze  - Measure lag, gain and polarity between two WAV files
//	params   - List the processor parameters
//	monitor  - Play a file or test signal with live key control
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-trim/cmd/trim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
