package scatters

import "strings"

// Warning describes a non-fatal issue encountered while ingesting a
// document or collecting a corpus, such as a skipped unreadable EPUB
// page or a document that failed to parse during a directory scan.
type Warning struct {
	Path    string
	Message string
}

// String returns the warning formatted for display.
func (w Warning) String() string {
	if w.Path == "" {
		return w.Message
	}
	return w.Path + ": " + w.Message
}

// FormatWarnings joins warnings into a single printable string, one per
// line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
