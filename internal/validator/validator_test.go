package validator

import (
	"testing"

	"github.com/crossplay/waffle/pkg/dictionary"
	"github.com/crossplay/waffle/pkg/grid"
)

func buildDict(words ...string) *dictionary.Dictionary {
	b := dictionary.NewBuilder()
	for _, w := range words {
		b.AddWord(w)
	}
	return dictionary.New(b.Build())
}

// wordGrid builds a Grid with an identity permutation and the six
// words KATON / KATOJ / TIGER / TIGHT / JUTES / NORMS, chosen so that
// KATON and KATOJ share the stem "KAT" (the "-ON"/"-OJ" endings both
// strip) while every other word is unrelated.
func wordGrid() *grid.Grid {
	g := &grid.Grid{}
	set := func(pos int, ch rune) { g.Solution[pos] = ch }

	for i, ch := range "KATON" {
		set(i, ch) // row 0: positions 0-4
	}
	for i, pos := range [5]int{0, 5, 10, 15, 20} {
		set(pos, []rune("KATOJ")[i]) // col 0
	}
	for i, pos := range [5]int{10, 11, 12, 13, 14} {
		set(pos, []rune("TIGER")[i]) // row 2
	}
	for i, pos := range [5]int{2, 7, 12, 17, 22} {
		set(pos, []rune("TIGHT")[i]) // col 2
	}
	for i, pos := range [5]int{20, 21, 22, 23, 24} {
		set(pos, []rune("JUTES")[i]) // row 4
	}
	for i, pos := range [5]int{4, 9, 14, 19, 24} {
		set(pos, []rune("NORMS")[i]) // col 4
	}

	for i := range g.Puzzle {
		g.Puzzle[i].Position = i
	}

	return g
}

func TestCheckWordsReportsDuplicateAndBadWord(t *testing.T) {
	dict := buildDict("KATON", "TIGER", "TIGHT", "JUTES")
	g := wordGrid()

	var got []Message
	checkWords(dict, 0, g, func(m Message) { got = append(got, m) })

	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2: %v", len(got), got)
	}
	if got[0].Kind.word != "KATOJ" || got[0].Kind.kind != "duplicate-word" {
		t.Errorf("first message = %+v, want DuplicateWord(KATOJ)", got[0])
	}
	if got[1].Kind.word != "NORMS" || got[1].Kind.kind != "bad-word" {
		t.Errorf("second message = %+v, want BadWord(NORMS)", got[1])
	}
}

func TestCheckWordsAcceptsCleanGrid(t *testing.T) {
	dict := buildDict("KATON", "KATOJ", "TIGER", "TIGHT", "JUTES", "NORMS")
	g := wordGrid()

	var got []Message
	checkWords(dict, 0, g, func(m Message) { got = append(got, m) })

	// KATOJ still duplicates KATON's stem regardless of dictionary
	// membership.
	if len(got) != 1 || got[0].Kind.kind != "duplicate-word" {
		t.Fatalf("got %v, want exactly one DuplicateWord message", got)
	}
}

const identityGrid = "ABCDEFHJKLMNOPRTUVWXY" + "abcdefhjklmnoprtuvwxy"
const oneSwapGrid = "ABCDEFHJKLMNOPRTUVWXY" + "bacdefhjklmnoprtuvwxy"

func TestMinimumSwapsOfSolvedGridIsZero(t *testing.T) {
	g, err := grid.Parse(identityGrid)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	swaps, ok := minimumSwaps(g)
	if !ok || swaps != 0 {
		t.Fatalf("minimumSwaps = (%d, %v), want (0, true)", swaps, ok)
	}
}

func TestMinimumSwapsCountsOneTranspositionNeeded(t *testing.T) {
	g, err := grid.Parse(oneSwapGrid)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	swaps, ok := minimumSwaps(g)
	if !ok || swaps != 1 {
		t.Fatalf("minimumSwaps = (%d, %v), want (1, true)", swaps, ok)
	}
}

func TestRunReportsGridParseError(t *testing.T) {
	dict := buildDict()
	messages := Run(dict, []string{"not a valid grid"})

	if len(messages) == 0 {
		t.Fatal("expected at least one message for an unparsable grid")
	}
	if messages[0].Kind.kind != "grid-parse-error" {
		t.Fatalf("got %v, want a GridParseError first", messages[0])
	}
}

func TestRunOrdersMessagesByPuzzleSequence(t *testing.T) {
	dict := buildDict()
	messages := Run(dict, []string{"bad-one", "bad-two", "bad-three"})

	for i, m := range messages {
		if m.PuzzleNum < 0 || m.PuzzleNum >= 3 {
			t.Fatalf("message %d has out-of-range puzzle num %d", i, m.PuzzleNum)
		}
	}

	// Every message must be a GridParseError here, grouped by
	// ascending puzzle number even though workers race to dequeue.
	last := -1
	for _, m := range messages {
		if m.PuzzleNum < last {
			t.Fatalf("messages out of order: %v", messages)
		}
		last = m.PuzzleNum
	}
}
