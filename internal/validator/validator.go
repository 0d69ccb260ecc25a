// Package validator runs the checks a finished puzzle must pass
// before publication: every word is dictionary-resident and used
// only once, the grid has exactly one solution, and the puzzle's
// starting permutation can be solved in the intended number of
// swaps. A pool of worker goroutines drains a shared queue; Run
// returns the diagnostics grouped by puzzle in input order, while
// RunStreaming hands each one to a callback as it is produced.
package validator

import (
	"runtime"
	"sync"

	"github.com/crossplay/waffle/pkg/dictionary"
	"github.com/crossplay/waffle/pkg/grid"
	"github.com/crossplay/waffle/pkg/gridsolver"
	"github.com/crossplay/waffle/pkg/swapsolver"
	"github.com/crossplay/waffle/pkg/wordgrid"
)

// minimumSwapsTarget is the number of swaps a puzzle must require to
// earn the maximum star rating.
const minimumSwapsTarget = grid.MaximumSwaps - grid.MaximumStars

func minimumSwaps(g *grid.Grid) (int, bool) {
	puzzleLetters := make([]rune, grid.NumCells)
	for i, square := range g.Puzzle {
		puzzleLetters[i] = g.Solution[square.Position]
	}

	solution, ok := swapsolver.Solve(puzzleLetters, g.Solution[:], nil)
	if !ok {
		return 0, false
	}
	return len(solution), true
}

func countSolutions(lg *wordgrid.Grid, dict *dictionary.Dictionary) int {
	return gridsolver.Count(lg, dict, 0)
}

// checkWords reports a BadWord diagnostic for the first occurrence of
// any of the grid's six words that isn't in the dictionary, and a
// DuplicateWord diagnostic for every occurrence beyond the first of
// words that share a stem (so "KATO" and "KATOJ" count as the same
// word even though their letters differ).
func checkWords(dict *dictionary.Dictionary, puzzleNum int, g *grid.Grid, report func(Message)) {
	seen := make(map[string]int)

	for _, positions := range grid.WordPositions() {
		letters := make([]rune, len(positions))
		for i, pos := range positions {
			letters[i] = g.Solution[pos]
		}
		word := string(letters)
		key := stem(word)

		count := seen[key]
		seen[key] = count + 1

		if count > 0 {
			report(Message{PuzzleNum: puzzleNum, Kind: kindDuplicateWord(word)})
			continue
		}

		if !dict.Contains(word) {
			report(Message{PuzzleNum: puzzleNum, Kind: kindBadWord(word)})
		}
	}
}

// checkPuzzle runs every check against one puzzle line, reporting
// each failure via report. A grid that fails to parse short-circuits
// the remaining checks, since none of them can run without one.
func checkPuzzle(dict *dictionary.Dictionary, puzzleNum int, line string, report func(Message)) {
	g, err := grid.Parse(line)
	if err != nil {
		var parseErr *grid.ParseError
		if pe, ok := err.(*grid.ParseError); ok {
			parseErr = pe
		}
		report(Message{PuzzleNum: puzzleNum, Kind: kindGridParseError(parseErr)})
		return
	}

	checkWords(dict, puzzleNum, g, report)

	letterGrid := wordgrid.FromGrid(g)
	if n := countSolutions(letterGrid, dict); n != 1 {
		report(Message{PuzzleNum: puzzleNum, Kind: kindSolutionCount(n)})
	}

	if swaps, ok := minimumSwaps(g); ok {
		if swaps != minimumSwapsTarget {
			report(Message{PuzzleNum: puzzleNum, Kind: kindMinimumSwaps(swaps)})
		}
	} else {
		report(Message{PuzzleNum: puzzleNum, Kind: kindNoSwapSolutionFound()})
	}
}

// Run checks every line in puzzles against dict, using up to
// runtime.GOMAXPROCS(0) worker goroutines (never more than there are
// puzzles), and returns every diagnostic raised, ordered by the
// sequence number each puzzle was dequeued with.
func Run(dict *dictionary.Dictionary, puzzles []string) []Message {
	if len(puzzles) == 0 {
		return nil
	}

	queue := NewQueue(puzzles)

	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > len(puzzles) {
		nWorkers = len(puzzles)
	}

	messages := make(chan Message)
	done := make(chan struct{})

	for i := 0; i < nWorkers; i++ {
		go func() {
			for {
				puzzleNum, line, ok := queue.Next()
				if !ok {
					break
				}
				checkPuzzle(dict, puzzleNum, line, func(m Message) { messages <- m })
			}
			done <- struct{}{}
		}()
	}

	go func() {
		for i := 0; i < nWorkers; i++ {
			<-done
		}
		close(messages)
	}()

	byPuzzle := make(map[int][]Message)
	for m := range messages {
		byPuzzle[m.PuzzleNum] = append(byPuzzle[m.PuzzleNum], m)
	}

	var result []Message
	for num := 0; num < len(puzzles); num++ {
		result = append(result, byPuzzle[num]...)
	}
	return result
}

// RunStreaming checks every line in puzzles the same way Run does, but
// invokes onMessage as each diagnostic is produced instead of batching
// and re-ordering the whole run first. Delivery order races across
// worker goroutines, same as the underlying channel fan-in; a caller
// that needs deterministic per-puzzle ordering should use Run instead.
// This trades that guarantee for the ability to watch a large corpus
// validate live, which Run's batch-then-return shape cannot offer.
//
// onMessage is invoked by whichever worker goroutine produced the
// diagnostic, but RunStreaming serializes those calls with an internal
// mutex: onMessage itself never needs to be safe for concurrent use,
// and two calls never overlap. It must still not block indefinitely —
// doing so stalls every worker waiting to report its next diagnostic.
func RunStreaming(dict *dictionary.Dictionary, puzzles []string, onMessage func(Message)) {
	if len(puzzles) == 0 {
		return
	}

	queue := NewQueue(puzzles)

	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > len(puzzles) {
		nWorkers = len(puzzles)
	}

	var mu sync.Mutex
	report := func(m Message) {
		mu.Lock()
		defer mu.Unlock()
		onMessage(m)
	}

	var wg sync.WaitGroup
	wg.Add(nWorkers)
	for i := 0; i < nWorkers; i++ {
		go func() {
			defer wg.Done()
			for {
				puzzleNum, line, ok := queue.Next()
				if !ok {
					return
				}
				checkPuzzle(dict, puzzleNum, line, report)
			}
		}()
	}
	wg.Wait()
}
