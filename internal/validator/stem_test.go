package validator

import "testing"

func TestStem(t *testing.T) {
	cases := map[string]string{
		"OPAJN": "OP",
		"OPOJN": "OP",
		"KAFAN": "KAF",
		"KAFON": "KAF",
		"KAFAJ": "KAF",
		"KAFOJ": "KAF",
		"KAFIS": "KAF",
		"KAFAS": "KAF",
		"KAFUS": "KAF",
		"KAFOS": "KAF",
		"KAFEN": "KAF",
		"KANTU": "KANT",
		"KANTO": "KANT",
		"KANTI": "KANT",
		"KANTA": "KANT",
		"KANTE": "KANT",
		"ANKAŬ": "ANKAŬ",
	}

	for word, want := range cases {
		if got := stem(word); got != want {
			t.Errorf("stem(%q) = %q, want %q", word, got, want)
		}
	}
}
