package dictionary

import "testing"

func TestExtractNode(t *testing.T) {
	n, ok := extractNode([]byte{7, 8, 'c'})
	if !ok {
		t.Fatal("expected ok")
	}
	if n.siblingOffset != 7 || n.childOffset != 8 || n.letter != 'c' {
		t.Fatalf("got %+v", n)
	}
	if string(n.remainder) != "c" {
		t.Fatalf("remainder = %q", n.remainder)
	}

	n, ok = extractNode([]byte{7, 8, 0xc4, 0x89})
	if !ok || n.letter != 'ĉ' {
		t.Fatalf("got %+v, ok=%v", n, ok)
	}

	n, ok = extractNode([]byte{7, 8, 0xc4, 0x89, 0xc4, 0xa5})
	if !ok || n.letter != 'ĉ' || len(n.remainder) != 4 {
		t.Fatalf("got %+v, ok=%v", n, ok)
	}

	if _, ok := extractNode([]byte{7, 8, 0xc4}); ok {
		t.Fatal("expected truncated utf8 to fail")
	}

	n, ok = extractNode([]byte{0xff, 0x7f, 0x80, 0x40, 'c'})
	if !ok {
		t.Fatal("expected ok")
	}
	if n.siblingOffset != 0b11111111111111 || n.childOffset != 0b10000000000000 || n.letter != 'c' {
		t.Fatalf("got %+v", n)
	}
}

// dictionaryBytes contains "a", "b", "c", "apple", "app", "ĉapelo".
var dictionaryBytes = []byte{
	0x00, 0x01, 0x2a, 0x01, 0x07, 'a', 0x01, 0x29, 'b', 0x04, 0x26,
	'c', 0x08, 0x00, 0x00, 0x00, 0x02, 0xc4, 0x89, 0x00, 0x07, 'a',
	0x00, 0x01, 'p', 0x00, 0x04, 'p', 0x00, 0x04, 'p', 0x04, 0x00,
	0x00, 0x00, 0x04, 'e', 0x00, 0x04, 'l', 0x00, 0x04, 'l', 0x00,
	0x04, 'e', 0x00, 0x01, 'o', 0x00, 0x00, 0x00,
}

func TestContains(t *testing.T) {
	d := New(dictionaryBytes)

	for _, word := range []string{"a", "b", "c", "apple", "app", "ĉapelo"} {
		if !d.Contains(word) {
			t.Errorf("expected Contains(%q) = true", word)
		}
	}

	for _, word := range []string{"", "d", "appl", "apples", "eĥo"} {
		if d.Contains(word) {
			t.Errorf("expected Contains(%q) = false", word)
		}
	}

	for _, word := range []string{"APPLE", "ĈAPelo"} {
		if !d.Contains(word) {
			t.Errorf("expected case-folded Contains(%q) = true", word)
		}
	}
}

func TestEnumerateFixture(t *testing.T) {
	d := New(dictionaryBytes)

	got := d.Enumerate()
	want := []string{"a", "app", "apple", "b", "c", "ĉapelo"}

	if len(got) != len(want) {
		t.Fatalf("Enumerate() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Enumerate() = %v, want %v", got, want)
		}
	}
}
