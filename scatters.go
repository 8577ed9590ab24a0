// Package scatters turns a corpus of text-like documents into randomized
// spatial arrangements of words on a character grid.
//
// Basic usage:
//
//	words, warnings, err := scatters.Open("poems.epub").Words()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", scatters.FormatWarnings(warnings))
//	}
//
// Building a vocabulary from a whole directory and generating a scatter:
//
//	c := scatters.NewCollector()
//	if err := c.AddDir("poems/"); err != nil {
//	    // handle error
//	}
//	if _, err := c.Finalize(); err != nil {
//	    // empty vocabulary
//	}
//	gen := scatters.NewGeneratorFromBank(c.Bank())
//	placements := gen.Generate(80, 24, 1.0)
//
// The lower-level format readers (textdoc, mddoc, epubdoc) and the
// wordbank and scatter packages are also available directly.
package scatters

import (
	"github.com/tsawler/scatters/scatter"
	"github.com/tsawler/scatters/wordbank"
)

// PoolFromBank extracts a bank's vocabulary as a placement pool,
// carrying each word's source attribution.
func PoolFromBank(b *wordbank.Bank) []scatter.Word {
	words := b.Words()
	pool := make([]scatter.Word, 0, len(words))
	for _, w := range words {
		src, _ := b.Source(w)
		pool = append(pool, scatter.Word{Text: w, Source: src})
	}
	return pool
}

// NewGeneratorFromBank builds a scatter generator over a bank's
// vocabulary, carrying each word's source attribution into placements.
func NewGeneratorFromBank(b *wordbank.Bank) *scatter.Generator {
	return scatter.NewGenerator(PoolFromBank(b))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	words := scatters.Must(scatters.NewCollector().Finalize())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustWords wraps a call to Words() and panics if the error is non-nil,
// discarding warnings.
//
// Example:
//
//	words := scatters.MustWords(scatters.Open("poems.txt").Words())
func MustWords(val []string, _ []Warning, err error) []string {
	if err != nil {
		panic(err)
	}
	return val
}
