package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"poem.txt", Plain},
		{"notes.md", Markdown},
		{"notes.markdown", Markdown},
		{"book.epub", EPUB},
		{"BOOK.EPUB", EPUB},
		{"Mixed.Md", Markdown},
		{"archive.zip", Unknown},
		{"README", Unknown},
		{"", Unknown},
		{"dir/file.txt", Plain},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Plain, "Plain"},
		{Markdown, "Markdown"},
		{EPUB, "EPUB"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatExtension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Plain, ".txt"},
		{Markdown, ".md"},
		{EPUB, ".epub"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format %v Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}
