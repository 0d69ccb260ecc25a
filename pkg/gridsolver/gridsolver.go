// Package gridsolver backtracks over a letter grid's six words, most
// constrained first, filling each from the word solver until every
// word is dictionary-resident.
package gridsolver

import (
	"sort"

	"github.com/crossplay/waffle/pkg/dictionary"
	"github.com/crossplay/waffle/pkg/wordgrid"
	"github.com/crossplay/waffle/pkg/wordsolver"
)

// Solver lazily enumerates every grid that fills all movable letters
// with dictionary-resident words.
type Solver struct {
	dictionary *dictionary.Dictionary
	stack      []*stackEntry
}

type stackEntry struct {
	grid       *wordgrid.Grid
	wordNum    int
	wordSolver *wordsolver.Iter
	isSolved   bool
}

// New builds a Solver seeded with g.
func New(g *wordgrid.Grid, dict *dictionary.Dictionary) *Solver {
	s := &Solver{dictionary: dict}
	s.pushGrid(g)
	return s
}

func allWords(g *wordgrid.Grid) []wordgrid.Word {
	words := make([]wordgrid.Word, 0, wordgrid.WordsOnAxis*2)
	words = append(words, g.HorizontalWords()...)
	words = append(words, g.VerticalWords()...)
	return words
}

func countMovable(w wordgrid.Word) int {
	n := 0
	for _, l := range w.Letters {
		if l.State == wordgrid.Movable {
			n++
		}
	}
	return n
}

func (s *Solver) pushGrid(g *wordgrid.Grid) {
	words := allWords(g)

	wordNum := 0
	isSolved := false
	best := -1

	for i, w := range words {
		n := countMovable(w)
		if n > 0 && (best == -1 || n < best) {
			best = n
			wordNum = i
		}
	}

	if best == -1 {
		wordNum = 0
		isSolved = true
	}

	var spares []rune
	for _, l := range g.Letters() {
		if l.State == wordgrid.Movable {
			spares = append(spares, l.Value)
		}
	}
	sort.Slice(spares, func(i, j int) bool { return spares[i] < spares[j] })

	var template wordsolver.Template
	for i, l := range words[wordNum].Letters {
		state := wordsolver.Fixed
		if l.State == wordgrid.Movable {
			state = wordsolver.Movable
		}
		template[i] = wordsolver.TemplateLetter{Value: l.Value, State: state}
	}

	s.stack = append(s.stack, &stackEntry{
		grid:       g,
		wordNum:    wordNum,
		wordSolver: wordsolver.New(s.dictionary, template, spares),
		isSolved:   isSolved,
	})
}

// Next advances to the next candidate solution grid, returning false
// once the search is exhausted.
func (s *Solver) Next() (*wordgrid.Grid, bool) {
	for len(s.stack) > 0 {
		entry := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if entry.isSolved {
			if s.verify(entry.grid) {
				return entry.grid, true
			}
			continue
		}

		if word, ok := entry.wordSolver.Next(); ok {
			var next *wordgrid.Grid
			if entry.wordNum < wordgrid.WordsOnAxis {
				next = entry.grid.FixHorizontalWord(entry.wordNum, word)
			} else {
				next = entry.grid.FixVerticalWord(entry.wordNum-wordgrid.WordsOnAxis, word)
			}

			s.stack = append(s.stack, entry)
			s.pushGrid(next)
		}
	}

	return nil, false
}

// verify re-checks every word of a candidate solution against the
// dictionary: fixing one word can set crossing cells in another word
// to values that were never independently validated.
func (s *Solver) verify(g *wordgrid.Grid) bool {
	for _, w := range allWords(g) {
		letters := make([]rune, len(w.Letters))
		for i, l := range w.Letters {
			letters[i] = l.Value
		}
		if !s.dictionary.Contains(string(letters)) {
			return false
		}
	}
	return true
}

// Count drains the solver and returns how many distinct solutions it
// finds, capped at limit to bound pathological inputs (0 means
// unbounded).
func Count(g *wordgrid.Grid, dict *dictionary.Dictionary, limit int) int {
	s := New(g, dict)
	n := 0
	for {
		if limit > 0 && n >= limit {
			return n
		}
		if _, ok := s.Next(); !ok {
			return n
		}
		n++
	}
}
