package mddoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextBasic(t *testing.T) {
	r, err := OpenReader(strings.NewReader("# Title\n\nHello *World* again.\n"))
	if err != nil {
		t.Fatal(err)
	}

	text, err := r.Text()
	if err != nil {
		t.Fatalf("failed to extract text: %v", err)
	}

	for _, want := range []string{"Title", "Hello", "World", "again"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected text to contain %q, got %q", want, text)
		}
	}
}

func TestTextExcludesFencedCodeBlocks(t *testing.T) {
	md := "Hello World\n\n```\nignore_this\n```\n\ngoodbye\n"
	r, err := OpenReader(strings.NewReader(md))
	if err != nil {
		t.Fatal(err)
	}

	text, err := r.Text()
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(text, "ignore_this") {
		t.Errorf("code block content leaked into text: %q", text)
	}
	if !strings.Contains(text, "Hello") || !strings.Contains(text, "goodbye") {
		t.Errorf("prose content missing from text: %q", text)
	}
}

func TestTextExcludesIndentedCodeBlocks(t *testing.T) {
	md := "para one\n\n    indented_code_here\n\npara two\n"
	r, err := OpenReader(strings.NewReader(md))
	if err != nil {
		t.Fatal(err)
	}

	text, err := r.Text()
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(text, "indented_code_here") {
		t.Errorf("indented code leaked into text: %q", text)
	}
}

func TestTextIncludesInlineCode(t *testing.T) {
	r, err := OpenReader(strings.NewReader("run `inline` now\n"))
	if err != nil {
		t.Fatal(err)
	}

	text, err := r.Text()
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(text, "inline") {
		t.Errorf("inline code missing from text: %q", text)
	}
}

// Adjacent constructs must stay separated so their words never merge.
func TestTextSeparatesRuns(t *testing.T) {
	r, err := OpenReader(strings.NewReader("alpha\n\n## beta\n\ngamma"))
	if err != nil {
		t.Fatal(err)
	}

	text, err := r.Text()
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(text, "alphabeta") || strings.Contains(text, "betagamma") {
		t.Errorf("text runs merged: %q", text)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, []byte("just a note\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open file: %v", err)
	}
	defer r.Close()

	text, err := r.Text()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "note") {
		t.Errorf("expected text to contain %q, got %q", "note", text)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.md")); err == nil {
		t.Error("expected error for missing file")
	}
}
