// Package token implements the word normalization rule shared by every
// document format. All ingestion paths must tokenize through this package
// so that the same input text always yields the same words regardless of
// which format it arrived in.
package token

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Split breaks text on whitespace runs and normalizes each piece with
// Normalize. Pieces that are empty after normalization are dropped.
// The input is NFC-normalized first so that visually identical words
// from different documents compare equal.
func Split(text string) []string {
	fields := strings.Fields(norm.NFC.String(text))

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := Normalize(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Normalize trims leading and trailing runes that are not letters or
// digits, then lowercases the remainder. Interior punctuation (hyphens,
// apostrophes) is preserved: "Quick-Brown!" becomes "quick-brown".
func Normalize(piece string) string {
	trimmed := strings.TrimFunc(piece, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(trimmed)
}
