package validator

import "strings"

// suffixes are grammatical endings stripped before comparing two
// words as the "same" word for the duplicate-word check, longest and
// most specific endings first so a word is never stemmed by a suffix
// that is itself the tail of an earlier, more specific one.
var suffixes = []string{
	"AJN", "OJN",
	"AN", "ON", "AJ", "OJ", "IS", "AS", "US", "OS", "EN",
	"U", "O", "I", "A", "E",
}

// stem strips the first matching suffix from word, or returns it
// unchanged if none match.
func stem(word string) string {
	for _, suffix := range suffixes {
		if rest, ok := strings.CutSuffix(word, suffix); ok {
			return rest
		}
	}
	return word
}
