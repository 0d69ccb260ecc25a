// Command makewafdict packs a word list into the trie format the
// dictionary loader expects: one word per line on stdin (or --input),
// written to --output as a packed dictionary file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/crossplay/waffle/pkg/dictionary"
)

func main() {
	input := flag.String("input", "", "word list file, one word per line (default: stdin)")
	output := flag.String("output", "", "output path for the packed dictionary (required)")
	sample := flag.Int("sample", 0, "print this many words read back from the built dictionary by index, as a sanity check")
	flag.Parse()

	if *output == "" {
		fmt.Fprintln(os.Stderr, "makewafdict: --output is required")
		flag.Usage()
		os.Exit(2)
	}

	words, err := readWords(*input)
	if err != nil {
		log.Fatalf("failed to read word list: %v", err)
	}
	if len(words) == 0 {
		log.Fatal("word list is empty")
	}

	builder := dictionary.NewBuilder()
	for _, w := range words {
		builder.AddWord(w)
	}
	packed := builder.Build()

	if err := os.WriteFile(*output, packed, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *output, err)
	}
	log.Printf("wrote %s: %d words, %d bytes", *output, len(words), len(packed))

	if *sample > 0 {
		printSample(packed, *sample)
	}
}

func readWords(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// printSample walks the built dictionary back out by index, proving
// the packed buffer round-trips through WordAt before it's shipped.
func printSample(packed []byte, n int) {
	dict := dictionary.New(packed)
	for i := 0; i < n; i++ {
		word, ok := dict.WordAt(uint64(i))
		if !ok {
			fmt.Printf("%d: <end of dictionary>\n", i)
			break
		}
		fmt.Printf("%d: %s\n", i, word)
	}
}
