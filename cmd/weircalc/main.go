// Command weircalc runs the weir and drop structure calculations from the
// command line and prints the results as JSON.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
