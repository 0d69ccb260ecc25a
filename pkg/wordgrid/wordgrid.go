// Package wordgrid provides the letter-grid view the word solver and
// grid solver operate on: six five-letter words (three horizontal,
// three vertical) sharing letters at their even intersections, each
// letter tagged Fixed or Movable.
package wordgrid

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/crossplay/waffle/pkg/grid"
)

const (
	// WordLength is the length of every word in the grid.
	WordLength = 5
	// WordsOnAxis is the number of words sharing one axis.
	WordsOnAxis = (WordLength + 1) / 2
	// spacingLetters is the number of non-intersection letters per
	// word on the other axis.
	spacingLetters = WordLength - WordsOnAxis
)

// LetterState distinguishes a letter the grid solver must still place
// from one already nailed down.
type LetterState int

const (
	Fixed LetterState = iota
	Movable
)

// Letter is a single grid cell: its value plus whether it is free to
// change.
type Letter struct {
	Value rune
	State LetterState
}

func (l Letter) String() string {
	if l.State == Fixed {
		return string(unicode.ToUpper(l.Value))
	}
	return string(unicode.ToLower(l.Value))
}

// Word is one of the grid's six five-letter words.
type Word struct {
	Letters [WordLength]Letter
}

var defaultWord = Word{Letters: [WordLength]Letter{
	{Value: 'a', State: Movable},
	{Value: 'a', State: Movable},
	{Value: 'a', State: Movable},
	{Value: 'a', State: Movable},
	{Value: 'a', State: Movable},
}}

// Grid is the letter-grid view: three horizontal words followed by
// three vertical words, sharing cells at even intersections.
type Grid struct {
	words [WordsOnAxis * 2]Word
}

// HorizontalWords returns the three horizontal words.
func (g *Grid) HorizontalWords() []Word {
	return g.words[0:WordsOnAxis]
}

// VerticalWords returns the three vertical words.
func (g *Grid) VerticalWords() []Word {
	return g.words[WordsOnAxis : WordsOnAxis*2]
}

func (g *Grid) horizontalWordsMut() []Word {
	return g.words[0:WordsOnAxis]
}

func (g *Grid) verticalWordsMut() []Word {
	return g.words[WordsOnAxis : WordsOnAxis*2]
}

// FixHorizontalWord returns a copy of g with horizontal word wordNum
// set to word, every letter Fixed, propagating the even-index letters
// into the crossing vertical words.
func (g *Grid) FixHorizontalWord(wordNum int, word string) *Grid {
	next := *g

	for i, ch := range []rune(word) {
		letter := Letter{Value: ch, State: Fixed}
		next.horizontalWordsMut()[wordNum].Letters[i] = letter

		if i%2 == 0 {
			next.verticalWordsMut()[i/2].Letters[wordNum*2] = letter
		}
	}

	return &next
}

// FixVerticalWord returns a copy of g with vertical word wordNum set
// to word, every letter Fixed, propagating the even-index letters into
// the crossing horizontal words.
func (g *Grid) FixVerticalWord(wordNum int, word string) *Grid {
	next := *g

	for i, ch := range []rune(word) {
		letter := Letter{Value: ch, State: Fixed}
		next.verticalWordsMut()[wordNum].Letters[i] = letter

		if i%2 == 0 {
			next.horizontalWordsMut()[i/2].Letters[wordNum*2] = letter
		}
	}

	return &next
}

// String renders the five-line textual form: alternating word rows and
// spacing rows, uppercase for Fixed, lowercase for Movable, space for
// the gap between vertical-word letters.
func (g *Grid) String() string {
	var b strings.Builder

	for i, word := range g.HorizontalWords() {
		for _, letter := range word.Letters {
			b.WriteString(letter.String())
		}

		verticalLetter := i*2 + 1
		if verticalLetter < WordLength {
			b.WriteByte('\n')

			for j, vword := range g.VerticalWords() {
				b.WriteString(vword.Letters[verticalLetter].String())
				if j+1 < WordsOnAxis {
					b.WriteByte(' ')
				}
			}

			b.WriteByte('\n')
		}
	}

	return b.String()
}

// ParseErrorKind enumerates textual-form decode failures.
type ParseErrorKind int

const (
	UnexpectedCharacter ParseErrorKind = iota
	BadLowercase
	LineTooLong
	LineTooShort
	NotEnoughLines
	TooManyLines
)

// ParseError reports a textual-form decode failure with line and, when
// applicable, offending character.
type ParseError struct {
	Kind ParseErrorKind
	Line int
	Char rune
}

func formatChar(ch rune) string {
	if unicode.IsControl(ch) {
		return fmt.Sprintf("U+%04x", ch)
	}
	return string(ch)
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("line %d: unexpected character: %s", e.Line+1, formatChar(e.Char))
	case BadLowercase:
		return fmt.Sprintf("line %d: letter doesn't have simple case: %s", e.Line+1, formatChar(e.Char))
	case LineTooLong:
		return fmt.Sprintf("line %d: line too long", e.Line+1)
	case LineTooShort:
		return fmt.Sprintf("line %d: line too short", e.Line+1)
	case NotEnoughLines:
		return "not enough lines"
	case TooManyLines:
		return "too many lines"
	default:
		return "invalid grid"
	}
}

func letterFromChar(line int, ch rune) (Letter, error) {
	if unicode.IsUpper(ch) {
		lower := strings.ToLower(string(ch))
		lowerRunes := []rune(lower)
		if len(lowerRunes) != 1 {
			return Letter{}, &ParseError{Kind: BadLowercase, Line: line, Char: ch}
		}
		return Letter{Value: lowerRunes[0], State: Fixed}, nil
	}
	if unicode.IsLower(ch) {
		return Letter{Value: ch, State: Movable}, nil
	}
	return Letter{}, &ParseError{Kind: UnexpectedCharacter, Line: line, Char: ch}
}

// Parse decodes the five-line textual grid form.
func Parse(s string) (*Grid, error) {
	g := &Grid{}
	for i := range g.words {
		g.words[i] = defaultWord
	}

	lines := strings.Split(s, "\n")

	lineNum := 0
	for _, line := range lines {
		if lineNum >= WordLength {
			return nil, &ParseError{Kind: TooManyLines}
		}

		var err error
		if lineNum%2 == 0 {
			err = g.setHorizontalWord(lineNum, line)
		} else {
			err = g.setVerticalWordLetters(lineNum, line)
		}
		if err != nil {
			return nil, err
		}

		lineNum++
	}

	if lineNum < WordLength {
		return nil, &ParseError{Kind: NotEnoughLines}
	}

	return g, nil
}

func (g *Grid) setHorizontalWord(lineNum int, line string) error {
	letterNum := 0
	wordOffset := lineNum / 2

	for _, ch := range line {
		if letterNum >= WordLength {
			return &ParseError{Kind: LineTooLong, Line: lineNum}
		}

		letter, err := letterFromChar(lineNum, ch)
		if err != nil {
			return err
		}

		g.horizontalWordsMut()[wordOffset].Letters[letterNum] = letter

		if letterNum%2 == 0 {
			g.verticalWordsMut()[letterNum/2].Letters[lineNum] = letter
		}

		letterNum++
	}

	if letterNum < WordLength {
		return &ParseError{Kind: LineTooShort, Line: lineNum}
	}
	return nil
}

func (g *Grid) setVerticalWordLetters(lineNum int, line string) error {
	charNum := 0

	for _, ch := range line {
		if charNum >= WordLength {
			return &ParseError{Kind: LineTooLong, Line: lineNum}
		}

		if charNum%2 == 0 {
			letter, err := letterFromChar(lineNum, ch)
			if err != nil {
				return err
			}
			g.verticalWordsMut()[charNum/2].Letters[lineNum] = letter
		} else if ch != ' ' {
			return &ParseError{Kind: UnexpectedCharacter, Line: lineNum, Char: ch}
		}

		charNum++
	}

	if charNum < WordLength {
		return &ParseError{Kind: LineTooShort, Line: lineNum}
	}
	return nil
}

// FromGrid derives a letter-grid view from a solution+puzzle Grid: the
// displayed value at each cell is the solution letter the permutation
// currently points at, Fixed iff that cell is Correct.
func FromGrid(src *grid.Grid) *Grid {
	g := &Grid{}
	for i := range g.words {
		g.words[i] = defaultWord
	}

	for position := 0; position < grid.NumCells; position++ {
		x, y := position%grid.Size, position/grid.Size
		if grid.IsGap(x, y) {
			continue
		}

		state := Movable
		if src.Puzzle[position].State == grid.Correct {
			state = Fixed
		}

		letter := Letter{Value: src.Solution[src.Puzzle[position].Position], State: state}

		if y%2 == 0 {
			g.horizontalWordsMut()[y/2].Letters[x] = letter
			if x%2 == 0 {
				g.verticalWordsMut()[x/2].Letters[y] = letter
			}
		} else {
			g.verticalWordsMut()[x/2].Letters[y] = letter
		}
	}

	return g
}

// Letters yields every letter in the grid in horizontal-words-first,
// then vertical-spacing-letters order — the order the original fixed
// letter iterator used to derive the spare-letter multiset.
func (g *Grid) Letters() []Letter {
	letters := make([]Letter, 0, WordsOnAxis*(WordLength+spacingLetters))

	for _, word := range g.HorizontalWords() {
		letters = append(letters, word.Letters[:]...)
	}
	for _, word := range g.VerticalWords() {
		for i := 0; i < spacingLetters; i++ {
			letters = append(letters, word.Letters[i*2+1])
		}
	}

	return letters
}
