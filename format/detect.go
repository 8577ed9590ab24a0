// Package format provides file format detection for the scatters library.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Plain indicates a plain text (.txt) document.
	Plain
	// Markdown indicates a Markdown (.md, .markdown) document.
	Markdown
	// EPUB indicates an EPUB (.epub) e-book container.
	EPUB
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Plain:
		return "Plain"
	case Markdown:
		return "Markdown"
	case EPUB:
		return "EPUB"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Plain:
		return ".txt"
	case Markdown:
		return ".md"
	case EPUB:
		return ".epub"
	default:
		return ""
	}
}

// Detect determines file format from the filename extension. Unrecognized
// extensions map to Unknown; callers treat Unknown documents as
// contributing no words rather than as errors.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return Plain
	case ".md", ".markdown":
		return Markdown
	case ".epub":
		return EPUB
	default:
		return Unknown
	}
}
