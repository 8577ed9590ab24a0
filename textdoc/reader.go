// Package textdoc provides plain text document reading.
package textdoc

import (
	"fmt"
	"io"
	"os"
)

// Reader provides access to plain text document content.
type Reader struct {
	content string
}

// Open opens a plain text file for reading.
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return &Reader{content: string(data)}, nil
}

// OpenReader reads plain text from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	return &Reader{content: string(data)}, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close (no file handles kept)
	return nil
}

// Text returns the full document content.
func (r *Reader) Text() (string, error) {
	return r.content, nil
}
