package textdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(path, []byte("the sea rolls on\nforever\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open file: %v", err)
	}
	defer r.Close()

	text, err := r.Text()
	if err != nil {
		t.Fatalf("failed to read text: %v", err)
	}
	if !strings.Contains(text, "forever") {
		t.Errorf("expected text to contain %q, got %q", "forever", text)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOpenReader(t *testing.T) {
	r, err := OpenReader(strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}

	text, err := r.Text()
	if err != nil {
		t.Fatalf("failed to read text: %v", err)
	}
	if text != "hello world" {
		t.Errorf("got %q, want %q", text, "hello world")
	}
}
