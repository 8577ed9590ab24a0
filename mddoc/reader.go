// Package mddoc provides Markdown document parsing.
//
// Content is extracted by walking the parsed document tree: text runs and
// inline code contribute their literal text, while fenced and indented
// code blocks are excluded entirely. The result is prose suitable for
// word tokenization, not a rendering of the document.
package mddoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Reader provides access to Markdown document content.
type Reader struct {
	source []byte
	doc    ast.Node
}

// Open opens a Markdown file for reading.
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return parse(data), nil
}

// OpenReader parses Markdown from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	return parse(data), nil
}

func parse(source []byte) *Reader {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(source))
	return &Reader{source: source, doc: doc}
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	return nil
}

// Text returns the document's prose content. Each text run and inline
// code span is followed by a single space so that tokens from adjacent
// constructs never merge.
func (r *Reader) Text() (string, error) {
	var b strings.Builder

	err := ast.Walk(r.doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			// Code block content never contributes words.
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					b.Write(t.Segment.Value(r.source))
				}
			}
			b.WriteByte(' ')
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if seg := node.Segment.Value(r.source); len(seg) > 0 {
				b.Write(seg)
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("walking document: %w", err)
	}

	return b.String(), nil
}
