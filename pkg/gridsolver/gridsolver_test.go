package gridsolver

import (
	"testing"

	"github.com/crossplay/waffle/pkg/dictionary"
	"github.com/crossplay/waffle/pkg/wordgrid"
)

func buildDict(words ...string) *dictionary.Dictionary {
	b := dictionary.NewBuilder()
	for _, w := range words {
		b.AddWord(w)
	}
	return dictionary.New(b.Build())
}

const solvedGridText = "ABCDE\nF G H\nIJKLM\nN O P\nQRSTU"

func TestAlreadySolvedGridIsReturnedOnce(t *testing.T) {
	g, err := wordgrid.Parse(solvedGridText)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	dict := buildDict("abcde", "ijklm", "qrstu", "afinq", "cgkos", "ehmpu")

	s := New(g, dict)

	if _, ok := s.Next(); !ok {
		t.Fatal("expected the already-solved grid to be yielded")
	}
	if _, ok := s.Next(); ok {
		t.Fatal("expected exactly one solution")
	}
}

func TestRejectsWhenWordNotInDictionary(t *testing.T) {
	g, err := wordgrid.Parse(solvedGridText)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// "ijklm" is missing, so the post-candidate verification must
	// reject the only candidate.
	dict := buildDict("abcde", "qrstu", "afinq", "cgkos", "ehmpu")

	s := New(g, dict)
	if _, ok := s.Next(); ok {
		t.Fatal("expected no solutions when a word is missing from the dictionary")
	}
}

func TestFindsSingleMovableWordSolution(t *testing.T) {
	// Only the two non-intersecting letters of the top row are
	// movable ('b' and 'd'); every other word is already complete.
	g, err := wordgrid.Parse("AbCdE\nF G H\nIJKLM\nN O P\nQRSTU")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	dict := buildDict("adcbe", "ijklm", "qrstu", "afinq", "cgkos", "ehmpu")

	s := New(g, dict)

	solution, ok := s.Next()
	if !ok {
		t.Fatal("expected a solution")
	}

	got := solution.HorizontalWords()[0]
	want := "adcbe"
	for i, ch := range want {
		if got.Letters[i].Value != ch {
			t.Errorf("solved row 0 letter %d = %q, want %q", i, got.Letters[i].Value, ch)
		}
	}

	if _, ok := s.Next(); ok {
		t.Fatal("expected exactly one solution: the identity fill must have been excluded")
	}
}
