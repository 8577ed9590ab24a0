// Package epubdoc provides EPUB document parsing.
package epubdoc

// Package represents the parsed OPF document.
type Package struct {
	Metadata Metadata
	Manifest map[string]ManifestItem // keyed by ID
	Spine    []SpineItem
	Version  string // "2.0" or "3.0"
}

// Metadata contains the EPUB metadata fields the library cares about.
type Metadata struct {
	Title      string
	Creator    []string // Multiple authors possible
	Language   string
	Identifier string // ISBN, UUID, etc.
}

// ManifestItem represents a file in the EPUB.
type ManifestItem struct {
	ID        string
	Href      string
	MediaType string
}

// SpineItem represents a content document in reading order.
type SpineItem struct {
	IDRef  string
	Linear bool // true if part of main reading order
}

// Page represents extracted content from one spine item.
type Page struct {
	ID      string
	Title   string
	Index   int
	Href    string
	Content []byte // Raw XHTML content
}
