package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/crossplay/waffle/internal/validator"
	"github.com/crossplay/waffle/pkg/dictionary"
	"github.com/spf13/cobra"
)

var (
	checkPuzzlesFile    string
	checkDictionaryFile string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every puzzle in a file, one grid string per line",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkPuzzlesFile, "puzzles", "p", "puzzles.txt", "file with one puzzle grid string per line")
	checkCmd.Flags().StringVarP(&checkDictionaryFile, "dictionary", "d", "data/dictionary.bin", "packed dictionary file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dictData, err := os.ReadFile(checkDictionaryFile)
	if err != nil {
		return fmt.Errorf("%s: %w", checkDictionaryFile, err)
	}
	dict := dictionary.New(dictData)

	puzzles, err := readLines(checkPuzzlesFile)
	if err != nil {
		return fmt.Errorf("%s: %w", checkPuzzlesFile, err)
	}
	if len(puzzles) == 0 {
		return fmt.Errorf("%s: empty file", checkPuzzlesFile)
	}

	messages := validator.Run(dict, puzzles)

	for _, m := range messages {
		fmt.Fprintln(os.Stderr, m)
	}

	if len(messages) > 0 {
		os.Exit(1)
	}

	return nil
}

func readLines(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
