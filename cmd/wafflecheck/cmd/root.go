package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "wafflecheck",
	Short: "Validate waffle puzzles against the dictionary and solvers",
	Long: `wafflecheck runs every puzzle in a batch through the same checks the
puzzle pipeline applies before publication: dictionary membership,
duplicate words, a unique solution, and the minimum swap count a
five-star rating requires.`,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}
