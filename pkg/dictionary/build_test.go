package dictionary

import (
	"reflect"
	"testing"
)

func TestBuildRoundTrip(t *testing.T) {
	words := []string{"a", "b", "c", "app", "apple", "ĉapelo"}

	data := Build(words)
	d := New(data)

	for _, w := range words {
		if !d.Contains(w) {
			t.Errorf("Contains(%q) = false after build", w)
		}
	}

	for _, w := range []string{"", "d", "appl", "apples"} {
		if d.Contains(w) {
			t.Errorf("Contains(%q) = true, want false", w)
		}
	}

	got := d.Enumerate()
	want := []string{"a", "app", "apple", "b", "c", "ĉapelo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Enumerate() = %v, want %v", got, want)
	}
}

func TestBuildPatternSearch(t *testing.T) {
	words := []string{"etoso", "haŭto", "ninĵo", "ratoj"}
	d := New(Build(words))

	got := d.PatternSearch("....o")
	want := []string{"etoso", "haŭto", "ninĵo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PatternSearch(....o) = %v, want %v", got, want)
	}

	if got := d.PatternSearch("......"); len(got) != 0 {
		t.Fatalf("PatternSearch(......) = %v, want empty", got)
	}
}

func TestBuildDeduplicatesSharedSuffixes(t *testing.T) {
	// "all" and "ball" share the suffix "all", which the minimised
	// trie is expected to collapse into a single shared subtree, while
	// Enumerate still reports each word exactly once.
	words := []string{"all", "ball", "call", "tall"}
	d := New(Build(words))

	for _, w := range words {
		if !d.Contains(w) {
			t.Errorf("Contains(%q) = false", w)
		}
	}

	got := d.Enumerate()
	want := []string{"all", "ball", "call", "tall"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Enumerate() = %v, want %v", got, want)
	}
}

func TestBuildCaseFolding(t *testing.T) {
	d := New(Build([]string{"Apple"}))

	if !d.Contains("apple") || !d.Contains("APPLE") || !d.Contains("Apple") {
		t.Fatal("expected case-insensitive match after build with mixed case input")
	}
}

func TestBuildEmpty(t *testing.T) {
	d := New(Build(nil))

	if d.Contains("anything") {
		t.Fatal("empty dictionary must not contain anything")
	}
	if got := d.Enumerate(); len(got) != 0 {
		t.Fatalf("Enumerate() on empty dictionary = %v", got)
	}
}
