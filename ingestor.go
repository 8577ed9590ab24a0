package scatters

import (
	"errors"
	"fmt"

	"github.com/tsawler/scatters/epubdoc"
	"github.com/tsawler/scatters/format"
	"github.com/tsawler/scatters/mddoc"
	"github.com/tsawler/scatters/textdoc"
	"github.com/tsawler/scatters/token"
)

// ErrNoFilename indicates an Ingestor was built without a document path.
var ErrNoFilename = errors.New("scatters: no filename specified")

// Ingestor provides a fluent interface for extracting normalized words
// from a single document. Each configuration method returns a new
// Ingestor instance, making it safe to fork a chain.
type Ingestor struct {
	// Source
	filename string

	// Configuration
	options IngestOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// Open prepares a document for ingestion. The format is detected from
// the filename extension; an unrecognized extension is not an error, it
// simply yields no words.
//
// Example:
//
//	words, warnings, err := scatters.Open("poems.md").Words()
func Open(filename string) *Ingestor {
	ing := &Ingestor{
		filename: filename,
		options:  defaultOptions(),
	}
	if filename == "" {
		ing.err = ErrNoFilename
	}
	return ing
}

// clone creates a copy of the Ingestor with a deep copy of options.
func (ing *Ingestor) clone() *Ingestor {
	return &Ingestor{
		filename: ing.filename,
		options:  ing.options.clone(),
		err:      ing.err,
		warnings: append([]Warning(nil), ing.warnings...),
	}
}

// AsFormat overrides extension-based format detection, for documents
// whose extension does not reflect their content (or is missing).
func (ing *Ingestor) AsFormat(f format.Format) *Ingestor {
	next := ing.clone()
	next.options.forcedFormat = f
	next.options.hasForced = true
	return next
}

// Format returns the format the document will be ingested as.
func (ing *Ingestor) Format() format.Format {
	return ing.options.detectFormat(ing.filename)
}

// Words extracts the document's normalized word tokens: lowercased,
// trimmed of surrounding punctuation, in document order, duplicates
// preserved. Extraction is all-or-nothing: on error no tokens are
// returned. An Unknown-format document yields an empty sequence and a
// nil error. Warnings report non-fatal issues such as skipped EPUB
// pages.
func (ing *Ingestor) Words() ([]string, []Warning, error) {
	if ing.err != nil {
		return nil, nil, ing.err
	}

	text, err := ing.extractText()
	if err != nil {
		return nil, nil, fmt.Errorf("ingesting %s: %w", ing.filename, err)
	}

	return token.Split(text), ing.warnings, nil
}

// extractText dispatches to the reader for the document's format and
// returns its raw text content.
func (ing *Ingestor) extractText() (string, error) {
	switch ing.Format() {
	case format.Plain:
		r, err := textdoc.Open(ing.filename)
		if err != nil {
			return "", err
		}
		defer r.Close()
		return r.Text()

	case format.Markdown:
		r, err := mddoc.Open(ing.filename)
		if err != nil {
			return "", err
		}
		defer r.Close()
		return r.Text()

	case format.EPUB:
		r, err := epubdoc.Open(ing.filename)
		if err != nil {
			return "", err
		}
		defer r.Close()
		if skipped := r.SkippedPages(); skipped > 0 {
			ing.warnings = append(ing.warnings, Warning{
				Path:    ing.filename,
				Message: fmt.Sprintf("skipped %d unreadable page(s)", skipped),
			})
		}
		return r.Text()

	default:
		// Unrecognized format: the document contributes nothing.
		return "", nil
	}
}
