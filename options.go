package scatters

import "github.com/tsawler/scatters/format"

// IngestOptions holds configuration for document ingestion.
type IngestOptions struct {
	// forcedFormat overrides extension-based detection when hasForced
	// is set.
	forcedFormat format.Format
	hasForced    bool
}

// defaultOptions returns the default ingestion options.
func defaultOptions() IngestOptions {
	return IngestOptions{}
}

// clone creates a copy of IngestOptions. Each chain method on Ingestor
// returns a new instance, so options are never shared between chains.
func (o IngestOptions) clone() IngestOptions {
	return IngestOptions{
		forcedFormat: o.forcedFormat,
		hasForced:    o.hasForced,
	}
}

// detectFormat resolves the format a document will be ingested as.
func (o IngestOptions) detectFormat(filename string) format.Format {
	if o.hasForced {
		return o.forcedFormat
	}
	return format.Detect(filename)
}
