package scatters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/scatters/format"
	"github.com/tsawler/scatters/wordbank"
)

// ErrEmptyVocabulary indicates that a corpus yielded no usable words
// after filtering; there is nothing to place.
var ErrEmptyVocabulary = errors.New("scatters: no usable words collected")

// Collector gathers words from a corpus of documents into a word bank.
// Documents are ingested sequentially; in directory mode a document that
// fails to ingest is recorded as a warning and skipped, while AddFile
// surfaces the failure to the caller.
type Collector struct {
	bank        *wordbank.Bank
	filesParsed int
	warnings    []Warning
}

// NewCollector creates a Collector over a fresh default word bank.
func NewCollector() *Collector {
	return NewCollectorWithBank(wordbank.New())
}

// NewCollectorWithBank creates a Collector that accumulates into an
// existing bank, e.g. one built with a custom stop-word list.
func NewCollectorWithBank(b *wordbank.Bank) *Collector {
	return &Collector{bank: b}
}

// AddFile ingests a single document into the bank. The word bank
// attributes new words to the document's base name. Ingestion failure is
// returned to the caller; nothing is added for a failed document.
func (c *Collector) AddFile(path string) error {
	words, warns, err := Open(path).Words()
	if err != nil {
		return err
	}
	c.warnings = append(c.warnings, warns...)
	c.bank.Add(words, filepath.Base(path))
	c.filesParsed++
	return nil
}

// AddDir ingests every recognized document directly inside dir
// (non-recursive). Documents with unrecognized extensions are ignored;
// documents that fail to ingest are recorded as warnings and skipped.
// Only the directory read itself can fail.
func (c *Collector) AddDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if format.Detect(path) == format.Unknown {
			continue
		}
		if err := c.AddFile(path); err != nil {
			c.warnings = append(c.warnings, Warning{Path: path, Message: err.Error()})
		}
	}

	return nil
}

// Bank returns the underlying word bank.
func (c *Collector) Bank() *wordbank.Bank {
	return c.bank
}

// FilesParsed returns the number of documents successfully ingested.
func (c *Collector) FilesParsed() int {
	return c.filesParsed
}

// Warnings returns the non-fatal issues recorded so far.
func (c *Collector) Warnings() []Warning {
	return c.warnings
}

// Finalize returns the collected vocabulary, or ErrEmptyVocabulary if
// filtering left nothing to place.
func (c *Collector) Finalize() ([]string, error) {
	if c.bank.Count() == 0 {
		return nil, ErrEmptyVocabulary
	}
	return c.bank.Words(), nil
}
