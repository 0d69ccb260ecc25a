// Package dictionary implements the packed-trie word-list codec: a
// minimised, deduplicated trie serialised into a single byte buffer
// supporting membership tests, full enumeration, pattern search, and
// raw child/sibling navigation.
package dictionary

import (
	"strings"
	"unicode"
)

// bitsPerChoice is the width of each sibling-skip digit packed into a
// WordAt index.
const bitsPerChoice = 5

// Dictionary is an immutable, packed trie. The zero value is an empty
// dictionary (no words).
type Dictionary struct {
	data []byte
}

// New wraps a packed buffer produced by Build/Builder.Build (or read
// back from a dictionary file) as a Dictionary.
func New(data []byte) *Dictionary {
	return &Dictionary{data: data}
}

// Node is an opaque handle on one trie node, usable with NextSibling,
// FirstChild and Letter. The zero Node is invalid.
type Node struct {
	d         *Dictionary
	valid     bool
	letter    rune
	remainder []byte
	child     int
	sibling   int
}

func (d *Dictionary) nodeAt(data []byte) (Node, bool) {
	n, ok := extractNode(data)
	if !ok {
		return Node{}, false
	}
	return Node{
		d:       d,
		valid:   true,
		letter:  n.letter,
		remainder: n.remainder,
		child:   n.childOffset,
		sibling: n.siblingOffset,
	}, true
}

// FirstNode returns the dictionary's root node, or false if the buffer
// is empty or malformed.
func (d *Dictionary) FirstNode() (Node, bool) {
	return d.nodeAt(d.data)
}

// Letter returns the node's character. The root node's letter carries
// no meaning.
func (n Node) Letter() rune {
	return n.letter
}

// FirstChild returns the node's first child, or false if it has none.
func (n Node) FirstChild() (Node, bool) {
	if !n.valid || n.child == 0 {
		return Node{}, false
	}
	rest, ok := sliceFrom(n.remainder, n.child)
	if !ok {
		return Node{}, false
	}
	return n.d.nodeAt(rest)
}

// NextSibling returns the node immediately following this one in its
// parent's child list, or false if it is the last sibling.
func (n Node) NextSibling() (Node, bool) {
	if !n.valid || n.sibling == 0 {
		return Node{}, false
	}
	rest, ok := sliceFrom(n.remainder, n.sibling)
	if !ok {
		return Node{}, false
	}
	return n.d.nodeAt(rest)
}

// Contains reports whether word is stored in the dictionary. The
// comparison case-folds both the query and the stored characters.
func (d *Dictionary) Contains(word string) bool {
	root, ok := d.FirstNode()
	if !ok {
		return false
	}

	cur, ok := root.FirstChild()
	if !ok {
		return false
	}

	letters := []rune(word)
	pos := 0

	for {
		var want rune
		if pos < len(letters) {
			want = unicode.ToLower(letters[pos])
		} else {
			want = nulLetter
		}

		if unicode.ToLower(cur.Letter()) == want {
			if pos >= len(letters) {
				return true
			}

			pos++

			next, ok := cur.FirstChild()
			if !ok {
				return false
			}
			cur = next
		} else {
			next, ok := cur.NextSibling()
			if !ok {
				return false
			}
			cur = next
		}
	}
}

// Enumerate returns every word stored in the dictionary, in ascending
// sibling order, each exactly once. Shared suffixes introduced by
// deduplication during Build are re-expanded: enumeration follows the
// tree view of the trie, not the packed DAG.
func (d *Dictionary) Enumerate() []string {
	var words []string

	root, ok := d.FirstNode()
	if !ok {
		return words
	}

	first, ok := root.FirstChild()
	if !ok {
		return words
	}

	type frame struct {
		node   Node
		prefix string
	}

	stack := []frame{{node: first, prefix: ""}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if sib, ok := top.node.NextSibling(); ok {
			stack = append(stack, frame{node: sib, prefix: top.prefix})
		}

		if top.node.Letter() == nulLetter {
			words = append(words, top.prefix)
			continue
		}

		if child, ok := top.node.FirstChild(); ok {
			stack = append(stack, frame{
				node:   child,
				prefix: top.prefix + string(top.node.Letter()),
			})
		}
	}

	return words
}

// PatternSearch yields every stored word matching pattern, where '.'
// matches any single character and any other character matches by
// case-folded equality. Only words whose length equals the pattern's
// length can match.
func (d *Dictionary) PatternSearch(pattern string) []string {
	patternRunes := []rune(pattern)

	var matches []string

	for _, word := range d.Enumerate() {
		wordRunes := []rune(word)
		if len(wordRunes) != len(patternRunes) {
			continue
		}

		if wildcardMatch(patternRunes, wordRunes) {
			matches = append(matches, word)
		}
	}

	return matches
}

func wildcardMatch(pattern, word []rune) bool {
	for i, p := range pattern {
		if p == '.' {
			continue
		}
		if unicode.ToLower(p) != unicode.ToLower(word[i]) {
			return false
		}
	}
	return true
}

// WordAt decodes the word addressed by index, where index packs a
// sequence of bitsPerChoice-wide sibling-skip counts (least-significant
// group first), one per trie level, in the same encoding a puzzle
// generator would use to pick a pseudo-random word. It reports false
// if index does not address a valid word.
func (d *Dictionary) WordAt(index uint64) (string, bool) {
	root, ok := d.FirstNode()
	if !ok {
		return "", false
	}

	cur, ok := root.FirstChild()
	if !ok {
		return "", false
	}

	var b strings.Builder

	for {
		toSkip := index & ((1 << bitsPerChoice) - 1)
		index >>= bitsPerChoice

		for i := uint64(0); i < toSkip; i++ {
			next, ok := cur.NextSibling()
			if !ok {
				return "", false
			}
			cur = next
		}

		if cur.Letter() == nulLetter {
			return b.String(), true
		}

		b.WriteRune(cur.Letter())

		next, ok := cur.FirstChild()
		if !ok {
			return "", false
		}
		cur = next
	}
}
