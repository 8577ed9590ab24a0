package epubdoc

import "strings"

// StripTags removes markup tag spans from page content using a minimal
// state machine: characters are dropped between an opening '<' and the
// next '>'. Tag semantics, nesting, and entities are deliberately
// ignored; the output only needs to be good enough for whitespace
// tokenization, not for display.
func StripTags(markup string) string {
	var b strings.Builder
	b.Grow(len(markup))

	insideTag := false
	for _, r := range markup {
		switch {
		case r == '<':
			insideTag = true
		case r == '>':
			insideTag = false
		case !insideTag:
			b.WriteRune(r)
		}
	}

	return b.String()
}
