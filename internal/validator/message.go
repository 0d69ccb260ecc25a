package validator

import (
	"fmt"
	"strings"

	"github.com/crossplay/waffle/pkg/grid"
	"github.com/crossplay/waffle/pkg/wordgrid"
)

// MessageKind is one diagnostic a check can raise against a puzzle.
type MessageKind struct {
	kind string

	gridErr      *grid.ParseError
	letterErr    *wordgrid.ParseError
	count        int
	word         string
}

func kindGridParseError(err *grid.ParseError) MessageKind {
	return MessageKind{kind: "grid-parse-error", gridErr: err}
}

func kindLetterGridParseError(err *wordgrid.ParseError) MessageKind {
	return MessageKind{kind: "letter-grid-parse-error", letterErr: err}
}

// kindSolutionCount reports that the puzzle does not have exactly one
// solution.
func kindSolutionCount(n int) MessageKind {
	return MessageKind{kind: "solution-count", count: n}
}

func kindNoSwapSolutionFound() MessageKind {
	return MessageKind{kind: "no-swap-solution-found"}
}

func kindMinimumSwaps(n int) MessageKind {
	return MessageKind{kind: "minimum-swaps", count: n}
}

func kindBadWord(word string) MessageKind {
	return MessageKind{kind: "bad-word", word: word}
}

func kindDuplicateWord(word string) MessageKind {
	return MessageKind{kind: "duplicate-word", word: word}
}

// Name returns the diagnostic's short kind identifier (e.g.
// "bad-word"), stable across releases, for callers that want to
// switch on kind without parsing the rendered message text.
func (k MessageKind) Name() string {
	return k.kind
}

func (k MessageKind) String() string {
	switch k.kind {
	case "grid-parse-error":
		return k.gridErr.Error()
	case "letter-grid-parse-error":
		return k.letterErr.Error()
	case "solution-count":
		return fmt.Sprintf("puzzle has %d solutions", k.count)
	case "no-swap-solution-found":
		return "no solution found by swapping letters"
	case "minimum-swaps":
		return fmt.Sprintf("minimum number of swaps is %d", k.count)
	case "bad-word":
		return fmt.Sprintf("%q is not in the dictionary", strings.ToUpper(k.word))
	case "duplicate-word":
		return fmt.Sprintf("%q appears more than once", strings.ToUpper(k.word))
	default:
		return "invalid"
	}
}

// Message pairs a diagnostic with the sequence number of the puzzle
// that raised it. The queue hands puzzles out front to back, so the
// sequence number is the puzzle's zero-based position in the input.
type Message struct {
	PuzzleNum int
	Kind      MessageKind
}

func (m Message) String() string {
	return fmt.Sprintf("puzzle %d: %s", m.PuzzleNum+1, m.Kind)
}
