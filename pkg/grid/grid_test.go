package grid

import "testing"

const exampleGrid = "ABCDEFHJKLMNOPRTUVWXY" + "bacdefhjklmnoprtuvwxy"

func TestParseSerializeRoundTrip(t *testing.T) {
	g, err := Parse(exampleGrid)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := g.Serialize(); got != exampleGrid {
		t.Fatalf("Serialize() = %q, want %q", got, exampleGrid)
	}
}

func TestParseTooShort(t *testing.T) {
	_, err := Parse("ABCDEFHJKLMNOPRTUVWXYbacdefhjklm")
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != TooShort {
		t.Fatalf("got %v, want TooShort", err)
	}
}

func TestParseTooLong(t *testing.T) {
	_, err := Parse(exampleGrid + "z")
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != TooLong {
		t.Fatalf("got %v, want TooLong", err)
	}
}

func TestParseNonUppercase(t *testing.T) {
	bad := "aBCDEFHJKLMNOPRTUVWXY" + "bacdefhjklmnoprtuvwxy"
	_, err := Parse(bad)
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != NonUppercaseLetter {
		t.Fatalf("got %v, want NonUppercaseLetter", err)
	}
}

func TestParseDuplicateIndex(t *testing.T) {
	bad := "ABCDEFHJKLMNOPRTUVWXY" + "bbcdefhjklmnoprtuvwxy"
	_, err := Parse(bad)
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != DuplicateIndex {
		t.Fatalf("got %v, want DuplicateIndex", err)
	}
}

func TestIsSolvedIffIdentityPermutation(t *testing.T) {
	solved := "ABCDEFHJKLMNOPRTUVWXY" + "abcdefhjklmnoprtuvwxy"
	g, err := Parse(solved)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !g.IsSolved() {
		t.Fatal("expected identity permutation to be solved")
	}

	g2, err := Parse(exampleGrid)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g2.IsSolved() {
		t.Fatal("expected non-identity permutation to be unsolved")
	}
}

func TestWordPositionsOrder(t *testing.T) {
	words := WordPositions()

	if words[0] != [Size]int{0, 1, 2, 3, 4} {
		t.Fatalf("word 0 (horizontal row 0) = %v", words[0])
	}
	if words[1] != [Size]int{0, 5, 10, 15, 20} {
		t.Fatalf("word 1 (vertical col 0) = %v", words[1])
	}
	if words[2] != [Size]int{10, 11, 12, 13, 14} {
		t.Fatalf("word 2 (horizontal row 2) = %v", words[2])
	}
	if words[4] != [Size]int{20, 21, 22, 23, 24} {
		t.Fatalf("word 4 (horizontal row 4) = %v", words[4])
	}
}

func TestPermutationCodeIsDirectGridPosition(t *testing.T) {
	g, err := Parse(exampleGrid)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// exampleGrid's permutation swaps the first two non-gap cells
	// (codes 'b','a' at positions 0 and 1) and leaves the rest as the
	// identity; "abcdefhjklmnoprtuvwxy" enumerates a..y skipping the
	// four gap letters g,i,q,s in order.
	if g.Puzzle[0].Position != 1 {
		t.Errorf("Puzzle[0].Position = %d, want 1", g.Puzzle[0].Position)
	}
	if g.Puzzle[1].Position != 0 {
		t.Errorf("Puzzle[1].Position = %d, want 0", g.Puzzle[1].Position)
	}
	for i := 2; i < NumCells; i++ {
		x, y := i%Size, i/Size
		if IsGap(x, y) {
			continue
		}
		if g.Puzzle[i].Position != i {
			t.Errorf("Puzzle[%d].Position = %d, want %d (identity)", i, g.Puzzle[i].Position, i)
		}
	}
}

func TestParseRejectsGapLetterAsPermutationCode(t *testing.T) {
	// 'g' encodes direct position 6, a gap cell: not a valid target.
	bad := "ABCDEFHJKLMNOPRTUVWXY" + "gacdefhjklmnoprtuvwxy"
	_, err := Parse(bad)
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != InvalidIndex {
		t.Fatalf("got %v, want InvalidIndex", err)
	}
}

func TestIsGap(t *testing.T) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			want := x%2 == 1 && y%2 == 1
			if got := IsGap(x, y); got != want {
				t.Errorf("IsGap(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSquareStatesDuplicateAwareRemarking(t *testing.T) {
	// Solution word "ABABA" at row 0; puzzle shows "BAABA" (positions
	// 0 and 1 swapped). Position 0 wants 'A', sees 'B'; position 1
	// wants 'B', sees 'A'. Both should resolve to WrongPosition, not
	// leave one Wrong while the other borrows incorrectly.
	g := &Grid{}
	for i := range g.Solution {
		g.Solution[i] = 'X'
	}
	row0 := []rune("ABABA")
	for i, ch := range row0 {
		g.Solution[i] = ch
	}
	for i := range g.Puzzle {
		g.Puzzle[i] = PuzzleSquare{Position: i}
	}
	g.Puzzle[0].Position = 1
	g.Puzzle[1].Position = 0

	g.updateSquareStates()

	if g.Puzzle[0].State != WrongPosition {
		t.Errorf("position 0 state = %v, want WrongPosition", g.Puzzle[0].State)
	}
	if g.Puzzle[1].State != WrongPosition {
		t.Errorf("position 1 state = %v, want WrongPosition", g.Puzzle[1].State)
	}
	for i := 2; i < 5; i++ {
		if g.Puzzle[i].State != Correct {
			t.Errorf("position %d state = %v, want Correct", i, g.Puzzle[i].State)
		}
	}
}
