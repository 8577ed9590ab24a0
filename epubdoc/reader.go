package epubdoc

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
)

// Reader-related errors.
var (
	ErrInvalidArchive  = errors.New("epub: invalid or corrupted archive")
	ErrInvalidMimetype = errors.New("epub: invalid mimetype (not an EPUB)")
	ErrMissingContent  = errors.New("epub: referenced content file not found")
	ErrDRMProtected    = errors.New("epub: file is DRM protected")
)

// Reader provides access to EPUB content.
type Reader struct {
	zr       *zip.ReadCloser
	zrReader *zip.Reader // For when opened from an io.ReaderAt
	pkg      *Package
	baseDir  string // Directory containing OPF (for resolving relative paths)
	pages    []*Page
	skipped  int // spine items whose content could not be read
}

// Open opens an EPUB file from a path.
func Open(filePath string) (*Reader, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, ErrInvalidArchive
	}

	r := &Reader{zr: zr}
	if err := r.init(&zr.Reader); err != nil {
		zr.Close()
		return nil, err
	}

	return r, nil
}

// OpenReader opens an EPUB from an io.ReaderAt.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, ErrInvalidArchive
	}

	r := &Reader{zrReader: zr}
	if err := r.init(zr); err != nil {
		return nil, err
	}

	return r, nil
}

// init initializes the reader by parsing the EPUB structure.
func (r *Reader) init(zr *zip.Reader) error {
	// Some EPUBs omit the mimetype file, so its absence is tolerated,
	// but a wrong value means this is some other kind of ZIP.
	if data, err := readZipFile(zr, "mimetype"); err == nil {
		if strings.TrimSpace(string(data)) != "application/epub+zip" {
			return ErrInvalidMimetype
		}
	}

	// Encrypted books cannot be read; reject rather than emit garbage.
	if _, err := readZipFile(zr, "META-INF/encryption.xml"); err == nil {
		return ErrDRMProtected
	}

	opfPath, err := parseContainer(zr)
	if err != nil {
		return err
	}

	pkg, baseDir, err := parseOPF(zr, opfPath)
	if err != nil {
		return err
	}

	r.pkg = pkg
	r.baseDir = baseDir

	return r.loadPages(zr)
}

// loadPages loads all spine items as pages. A spine item whose content
// is missing or unreadable is skipped, not fatal.
func (r *Reader) loadPages(zr *zip.Reader) error {
	r.pages = make([]*Page, 0, len(r.pkg.Spine))

	for i, spineItem := range r.pkg.Spine {
		item, ok := r.pkg.Manifest[spineItem.IDRef]
		if !ok {
			r.skipped++
			continue
		}

		href := r.resolveHref(item.Href)

		content, err := readZipFile(zr, href)
		if err != nil {
			r.skipped++
			continue
		}

		page := &Page{
			ID:      item.ID,
			Index:   i,
			Href:    href,
			Content: content,
		}
		page.Title = pageTitle(content)

		r.pages = append(r.pages, page)
	}

	if len(r.pages) == 0 {
		return ErrEmptySpine
	}

	return nil
}

// resolveHref resolves a relative href against the OPF base directory.
func (r *Reader) resolveHref(href string) string {
	// URL-decode the href
	if decoded, err := url.QueryUnescape(href); err == nil {
		href = decoded
	}

	if r.baseDir == "" {
		return href
	}
	return path.Join(r.baseDir, href)
}

// Close closes the reader and releases resources.
func (r *Reader) Close() error {
	if r.zr != nil {
		return r.zr.Close()
	}
	return nil
}

// Metadata returns the EPUB metadata.
func (r *Reader) Metadata() Metadata {
	return r.pkg.Metadata
}

// PageCount returns the number of readable pages.
func (r *Reader) PageCount() int {
	return len(r.pages)
}

// SkippedPages returns the number of spine items whose content could not
// be read and was therefore excluded from the document's text.
func (r *Reader) SkippedPages() int {
	return r.skipped
}

// Pages returns all readable pages in spine order.
func (r *Reader) Pages() []*Page {
	return r.pages
}

// Text extracts the plain text of every page in spine order, with
// markup tags stripped. Pages are joined by a single space so words at
// page boundaries never merge.
func (r *Reader) Text() (string, error) {
	parts := make([]string, 0, len(r.pages))
	for _, page := range r.pages {
		parts = append(parts, StripTags(string(page.Content)))
	}
	return strings.Join(parts, " "), nil
}

// pageTitle extracts a display title from page content: the head title
// if present, otherwise the first heading.
func pageTitle(content []byte) string {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return ""
	}

	var title, heading string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if title == "" {
					title = textContent(n)
				}
			case "h1", "h2", "h3":
				if heading == "" {
					heading = textContent(n)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	if title != "" {
		return title
	}
	return heading
}

// textContent collects the text beneath an HTML node.
func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.TrimSpace(b.String())
}
