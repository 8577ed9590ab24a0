package wordbank

import (
	"testing"
	"unicode/utf8"
)

func TestStopWordFiltering(t *testing.T) {
	bank := New()
	bank.Add([]string{"the", "wonderful", "and", "beautiful"}, "poems.txt")

	if bank.Contains("the") || bank.Contains("and") {
		t.Error("stop words must not be admitted")
	}
	if !bank.Contains("wonderful") || !bank.Contains("beautiful") {
		t.Error("non-stop words must be admitted")
	}
	if got := bank.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestMinimumWordLength(t *testing.T) {
	bank := New()
	bank.Add([]string{"hi", "ox", "hello"}, "a.txt")

	if got := bank.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
	if !bank.Contains("hello") {
		t.Error("expected 'hello' to be admitted")
	}
}

func TestDeduplication(t *testing.T) {
	bank := New()
	bank.Add([]string{"fox", "fox", "fox"}, "a.txt")
	bank.Add([]string{"fox"}, "b.txt")

	if got := bank.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}

	words := bank.Words()
	if len(words) != 1 || words[0] != "fox" {
		t.Errorf("Words() = %v, want [fox]", words)
	}
}

func TestFirstSourceWins(t *testing.T) {
	bank := New()
	bank.Add([]string{"driftwood"}, "first.txt")
	bank.Add([]string{"driftwood"}, "second.txt")

	src, ok := bank.Source("driftwood")
	if !ok {
		t.Fatal("expected source for 'driftwood'")
	}
	if src != "first.txt" {
		t.Errorf("Source() = %q, want %q", src, "first.txt")
	}
}

func TestSourceUnknownWord(t *testing.T) {
	bank := New()
	if _, ok := bank.Source("ghost"); ok {
		t.Error("Source() reported a word that was never added")
	}
}

func TestCustomStopWords(t *testing.T) {
	bank := NewWithStopWords([]string{"sea"})
	bank.Add([]string{"sea", "the", "shore"}, "a.txt")

	if bank.Contains("sea") {
		t.Error("custom stop word 'sea' must be rejected")
	}
	// "the" is not in the custom list, so it is admitted.
	if !bank.Contains("the") || !bank.Contains("shore") {
		t.Errorf("unexpected vocabulary: %v", bank.Words())
	}
}

// Every finalized vocabulary member must satisfy both admission filters.
func TestFilterInvariant(t *testing.T) {
	bank := New()
	bank.Add([]string{"the", "a", "ox", "over", "quick-brown", "fox", "were", "scatter"}, "x.txt")

	stop := make(map[string]bool)
	for _, w := range DefaultStopWords() {
		stop[w] = true
	}

	for _, w := range bank.Words() {
		if utf8.RuneCountInString(w) < MinWordLength {
			t.Errorf("word %q shorter than %d runes", w, MinWordLength)
		}
		if stop[w] {
			t.Errorf("stop word %q in vocabulary", w)
		}
	}
}

func TestRuneLengthNotByteLength(t *testing.T) {
	bank := New()
	// "héé" is 3 runes (admitted), "éé" is 2 runes but 4 bytes (rejected).
	bank.Add([]string{"héé", "éé"}, "a.txt")

	if !bank.Contains("héé") {
		t.Error("3-rune word must be admitted")
	}
	if bank.Contains("éé") {
		t.Error("2-rune word must be rejected regardless of byte length")
	}
}
