// Command wafflecheck validates a batch of waffle puzzles: every word
// dictionary-resident and used once, exactly one solution, and the
// starting permutation solvable in the number of swaps a five-star
// rating requires.
package main

import (
	"os"

	"github.com/crossplay/waffle/cmd/wafflecheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
