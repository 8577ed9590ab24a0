package epubdoc

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"path"
)

// OPF-related errors.
var (
	ErrNoOPF      = errors.New("epub: missing package document (OPF)")
	ErrInvalidOPF = errors.New("epub: invalid package document")
	ErrEmptySpine = errors.New("epub: no content in spine")
)

// opfPackage represents the OPF package document.
type opfPackage struct {
	XMLName  xml.Name    `xml:"package"`
	Version  string      `xml:"version,attr"`
	Metadata opfMetadata `xml:"metadata"`
	Manifest opfManifest `xml:"manifest"`
	Spine    opfSpine    `xml:"spine"`
}

type opfMetadata struct {
	Title      []dcElement `xml:"title"`
	Creator    []dcElement `xml:"creator"`
	Language   []dcElement `xml:"language"`
	Identifier []dcElement `xml:"identifier"`
}

type dcElement struct {
	ID      string `xml:"id,attr"`
	Content string `xml:",chardata"`
}

type opfManifest struct {
	Items []opfItem `xml:"item"`
}

type opfItem struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
}

type opfSpine struct {
	ItemRefs []opfItemRef `xml:"itemref"`
}

type opfItemRef struct {
	IDRef  string `xml:"idref,attr"`
	Linear string `xml:"linear,attr"`
}

// parseOPF parses the OPF file and returns a Package plus the directory
// that relative hrefs resolve against.
func parseOPF(zr *zip.Reader, opfPath string) (*Package, string, error) {
	data, err := readZipFile(zr, opfPath)
	if err != nil {
		return nil, "", ErrNoOPF
	}

	var raw opfPackage
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, "", ErrInvalidOPF
	}

	pkg := &Package{
		Version:  raw.Version,
		Manifest: make(map[string]ManifestItem, len(raw.Manifest.Items)),
		Spine:    make([]SpineItem, 0, len(raw.Spine.ItemRefs)),
	}

	if len(raw.Metadata.Title) > 0 {
		pkg.Metadata.Title = raw.Metadata.Title[0].Content
	}
	for _, c := range raw.Metadata.Creator {
		if c.Content != "" {
			pkg.Metadata.Creator = append(pkg.Metadata.Creator, c.Content)
		}
	}
	if len(raw.Metadata.Language) > 0 {
		pkg.Metadata.Language = raw.Metadata.Language[0].Content
	}
	if len(raw.Metadata.Identifier) > 0 {
		pkg.Metadata.Identifier = raw.Metadata.Identifier[0].Content
	}

	for _, item := range raw.Manifest.Items {
		pkg.Manifest[item.ID] = ManifestItem{
			ID:        item.ID,
			Href:      item.Href,
			MediaType: item.MediaType,
		}
	}

	for _, ref := range raw.Spine.ItemRefs {
		pkg.Spine = append(pkg.Spine, SpineItem{
			IDRef:  ref.IDRef,
			Linear: ref.Linear != "no",
		})
	}

	baseDir := path.Dir(opfPath)
	if baseDir == "." {
		baseDir = ""
	}

	return pkg, baseDir, nil
}
