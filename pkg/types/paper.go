// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records shared between the source adapters, the
// note pipeline, and the CLI.
package types

// PaperMetadata is the normalized record every source adapter produces.
// Every field defaults to the empty string once metadata leaves an adapter;
// the renderer distinguishes only empty from non-empty, never absent.
type PaperMetadata struct {
	// Title is the paper title, or the literal "undefined" when the
	// source payload omits it.
	Title string `json:"title" yaml:"title"`

	// Authors lists display names in source-declared order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract; may be empty.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Venue is the publication venue with a four-digit year appended
	// when the source carries year data; may be empty.
	Venue string `json:"venue" yaml:"venue"`

	// PublicationDate is an ISO date string truncated to the date
	// portion; may be empty.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// URL is the canonical URL recorded in the note. Cross-referenced
	// source URLs are appended on their own lines beneath the first.
	URL string `json:"url" yaml:"url"`

	// SourceBody is the visible text of the paper's rendered full-text
	// page, fetched only on the arXiv path. Empty means no body is
	// available and future-work extraction is skipped.
	SourceBody string `json:"-" yaml:"-"`
}

// AuthorString joins the author names for rendering.
func (m PaperMetadata) AuthorString() string {
	s := ""
	for i, a := range m.Authors {
		if i > 0 {
			s += ", "
		}
		s += a
	}
	return s
}

// Enrichment holds the optional language-model outputs layered on top of
// the core metadata. Both fields are empty when enrichment is disabled or
// has degraded.
type Enrichment struct {
	// Tags is the whitespace-delimited tag list, marker-prefixed when
	// machine-suggested.
	Tags string `json:"tags" yaml:"tags"`

	// FutureWork is the short future-work summary, marker-prefixed when
	// machine-suggested.
	FutureWork string `json:"future_work" yaml:"future_work"`
}
