// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source resolves academic-paper URLs into normalized metadata
// records. A classifier maps each URL onto one adapter pipeline; the
// adapters translate the raw API payloads into types.PaperMetadata.
package source

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/paper-notes/pkg/types"
)

// Kind identifies the adapter pipeline that handles a URL.
type Kind int

const (
	KindUnsupported Kind = iota
	KindArxiv
	KindAggregation
)

func (k Kind) String() string {
	switch k {
	case KindArxiv:
		return "arxiv"
	case KindAggregation:
		return "aggregation"
	default:
		return "unsupported"
	}
}

// Aggregation-service identifier prefixes for cross-archive lookups.
const (
	PrefixArxiv = "arXiv:"
	PrefixACL   = "ACL:"
)

// Source is the classifier's verdict for one URL: which pipeline handles
// it, the identifier extracted from the URL, and, for the aggregation
// pipeline, the id-prefix family.
type Source struct {
	Kind   Kind
	Prefix string
	ID     string
}

// UnsupportedURLError reports a URL no adapter pipeline recognizes. It is
// raised before any network call is made.
type UnsupportedURLError struct {
	URL string
}

func (e *UnsupportedURLError) Error() string {
	return "unsupported URL: " + e.URL
}

// SourceAPIError reports an explicit error payload from a metadata source.
// The detail is logged, never shown to the user verbatim.
type SourceAPIError struct {
	Detail string
}

func (e *SourceAPIError) Error() string {
	return "source API error: " + e.Detail
}

// Classify maps a trimmed, lower-cased URL onto an adapter pipeline.
// URLs on arxiv.org go to the arXiv pipeline. Everything else goes to the
// aggregation pipeline, which recognizes arXiv-style and ACL-Anthology-style
// cross-archive ids plus bare aggregation-service ids. URLs matching no
// family are unsupported.
func Classify(url string) Source {
	id := Identifier(url)

	if strings.Contains(url, "arxiv.org") {
		return Source{Kind: KindArxiv, ID: id}
	}

	switch {
	case strings.Contains(url, "arxiv"):
		return Source{Kind: KindAggregation, Prefix: PrefixArxiv, ID: id}
	case strings.Contains(url, "aclanthology"):
		return Source{Kind: KindAggregation, Prefix: PrefixACL, ID: id}
	case strings.Contains(url, "semanticscholar"):
		return Source{Kind: KindAggregation, ID: id}
	}

	return Source{Kind: KindUnsupported, ID: id}
}

// Identifier extracts the lookup key from a URL: the trailing path segment
// after stripping one optional trailing slash.
func Identifier(url string) string {
	url = strings.TrimSuffix(url, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

// Fetcher dispatches a classified source to its adapter.
type Fetcher struct {
	Client *http.Client
	Config types.HTTPConfig
}

// Fetch resolves src into a metadata record. rawURL is the URL the user
// entered; the arXiv pipeline records it as the note URL and derives the
// full-text page from it. Diagnostics for swallowed best-effort failures
// go to w.
func (f *Fetcher) Fetch(ctx context.Context, src Source, rawURL string, w io.Writer) (types.PaperMetadata, error) {
	switch src.Kind {
	case KindArxiv:
		meta, err := f.fetchArxiv(ctx, src.ID, rawURL)
		if err != nil {
			return types.PaperMetadata{}, err
		}
		meta.SourceBody = f.fetchArxivBody(ctx, rawURL, w)
		return meta, nil
	case KindAggregation:
		return f.fetchAggregation(ctx, src.Prefix, src.ID)
	default:
		return types.PaperMetadata{}, &UnsupportedURLError{URL: rawURL}
	}
}
