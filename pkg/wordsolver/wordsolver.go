// Package wordsolver enumerates dictionary-resident fills for a
// five-position template from a multiset of spare letters.
package wordsolver

import (
	"github.com/crossplay/waffle/pkg/dictionary"
	"github.com/crossplay/waffle/pkg/permute"
)

// LetterState marks a template position as already decided or open to
// fill.
type LetterState int

const (
	Fixed LetterState = iota
	Movable
)

// TemplateLetter is one position of a word template. For Fixed
// positions Value is the required character; for Movable positions it
// is the letter currently occupying that position, which the solver
// must change.
type TemplateLetter struct {
	Value rune
	State LetterState
}

// Template is a five-position word template.
type Template [5]TemplateLetter

// Iter lazily enumerates every dictionary word matching a template
// from a sorted multiset of spare letters, suppressing selections that
// only differ by choosing a different copy of a repeated letter and
// selections that leave a Movable position unchanged.
type Iter struct {
	dictionary *dictionary.Dictionary
	selection  *permute.Selection[int]
	spares     []rune
	template   Template
	buf        []rune
}

// New builds an Iter. spares must already be sorted ascending.
func New(dict *dictionary.Dictionary, template Template, spares []rune) *Iter {
	nGaps := 0
	for _, l := range template {
		if l.State == Movable {
			nGaps++
		}
	}

	indices := make([]int, len(spares))
	for i := range indices {
		indices[i] = i
	}

	return &Iter{
		dictionary: dict,
		selection:  permute.NewSelection(indices, nGaps),
		spares:     spares,
		template:   template,
		buf:        make([]rune, len(template)),
	}
}

// Next advances to the next matching word, returning false once the
// enumeration is exhausted.
func (it *Iter) Next() (string, bool) {
	for it.selection.Next() {
		chosen := it.selection.Current()

		if !acceptablePermutation(chosen, it.spares) {
			continue
		}

		chosenIdx := 0
		identity := false

		for i, tl := range it.template {
			if tl.State != Movable {
				it.buf[i] = tl.Value
				continue
			}

			value := it.spares[chosen[chosenIdx]]
			chosenIdx++

			if value == tl.Value {
				identity = true
				break
			}

			it.buf[i] = value
		}

		if identity {
			continue
		}

		word := string(it.buf)
		if it.dictionary.Contains(word) {
			return word, true
		}
	}

	return "", false
}

// acceptablePermutation reports whether chosen, a set of indices into
// the sorted spares slice, consumes duplicates of each letter value
// left to right: using index j requires every earlier index holding
// the same letter to be used too.
func acceptablePermutation(chosen []int, spares []rune) bool {
	used := make(map[int]bool, len(chosen))
	for _, idx := range chosen {
		used[idx] = true
	}

	for _, idx := range chosen {
		for j := idx - 1; j >= 0 && spares[j] == spares[idx]; j-- {
			if !used[j] {
				return false
			}
		}
	}

	return true
}
