// Package wordbank accumulates normalized words into a deduplicated,
// filtered vocabulary.
//
// Words are admitted once, at insertion time: anything shorter than
// MinWordLength or present in the stop-word list is dropped silently.
// The bank never re-checks admitted words, so the vocabulary is stable
// once documents stop being added.
package wordbank

import "unicode/utf8"

// MinWordLength is the minimum length, in runes, for a word to be
// admitted to the vocabulary.
const MinWordLength = 3

// Bank is a deduplicated, filtered vocabulary. Each entry remembers the
// first source document that contributed it. The zero value is not
// usable; construct with New or NewWithStopWords.
type Bank struct {
	words map[string]string // word -> first contributing source
	stop  map[string]struct{}
}

// New creates an empty Bank using the default stop-word list.
func New() *Bank {
	return NewWithStopWords(defaultStopWords)
}

// NewWithStopWords creates an empty Bank that filters against the given
// stop-word list instead of the default one.
func NewWithStopWords(stopWords []string) *Bank {
	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[w] = struct{}{}
	}
	return &Bank{
		words: make(map[string]string),
		stop:  stop,
	}
}

// Add inserts words into the vocabulary, attributing new entries to
// source. Words failing the length or stop-word filter are dropped, and
// re-inserting a known word is a no-op, so Add never fails.
func (b *Bank) Add(words []string, source string) {
	for _, w := range words {
		if utf8.RuneCountInString(w) < MinWordLength {
			continue
		}
		if _, isStop := b.stop[w]; isStop {
			continue
		}
		if _, seen := b.words[w]; seen {
			continue // first source wins
		}
		b.words[w] = source
	}
}

// Words returns the vocabulary as a flat slice. Order is unspecified.
func (b *Bank) Words() []string {
	out := make([]string, 0, len(b.words))
	for w := range b.words {
		out = append(out, w)
	}
	return out
}

// Count returns the number of distinct words in the vocabulary.
func (b *Bank) Count() int {
	return len(b.words)
}

// Contains reports whether the vocabulary holds word.
func (b *Bank) Contains(word string) bool {
	_, ok := b.words[word]
	return ok
}

// Source returns the document that first contributed word.
func (b *Bank) Source(word string) (string, bool) {
	src, ok := b.words[word]
	return src, ok
}
