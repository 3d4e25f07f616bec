// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pdiddy/paper-notes/internal/httputil"
	"github.com/pdiddy/paper-notes/pkg/types"
)

// aggregationAPIBase is the Semantic Scholar paper-lookup endpoint.
// Declared as a var so tests can substitute an httptest server.
var aggregationAPIBase = "https://api.semanticscholar.org/graph/v1/paper/"

// aggregationFields is the fixed field selection requested on every lookup.
const aggregationFields = "authors,title,abstract,url,venue,year,publicationDate,externalIds"

// Canonical URL bases for cross-archive references carried in externalIds.
const (
	arxivAbsBase     = "https://arxiv.org/abs/"
	aclAnthologyBase = "https://aclanthology.org/"
)

// Semantic Scholar Graph API JSON structures.
type aggregationPaper struct {
	Error           string              `json:"error"`
	Title           string              `json:"title"`
	Abstract        string              `json:"abstract"`
	URL             string              `json:"url"`
	Venue           string              `json:"venue"`
	Year            int                 `json:"year"`
	PublicationDate string              `json:"publicationDate"`
	Authors         []aggregationAuthor `json:"authors"`
	ExternalIDs     aggregationIDs      `json:"externalIds"`
}

type aggregationAuthor struct {
	Name string `json:"name"`
}

type aggregationIDs struct {
	ArXiv string `json:"ArXiv"`
	ACL   string `json:"ACL"`
	DOI   string `json:"DOI"`
}

// fetchAggregation looks up a single paper by prefixed identifier. An
// explicit error field in the payload raises a SourceAPIError; missing
// fields degrade to the per-field defaults.
func (f *Fetcher) fetchAggregation(ctx context.Context, prefix, id string) (types.PaperMetadata, error) {
	apiURL := fmt.Sprintf("%s%s%s?fields=%s", aggregationAPIBase, prefix, id, aggregationFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return types.PaperMetadata{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, f.Client, req, 0)
	if err != nil {
		return types.PaperMetadata{}, fmt.Errorf("aggregation API request: %w", err)
	}
	defer resp.Body.Close()

	var paper aggregationPaper
	if err := json.NewDecoder(resp.Body).Decode(&paper); err != nil {
		return types.PaperMetadata{}, fmt.Errorf("parsing aggregation response: %w", err)
	}

	if paper.Error != "" {
		return types.PaperMetadata{}, &SourceAPIError{Detail: paper.Error}
	}
	if resp.StatusCode != http.StatusOK {
		return types.PaperMetadata{}, fmt.Errorf("aggregation API returned HTTP %d", resp.StatusCode)
	}

	meta := types.PaperMetadata{
		Title:           missingTitle,
		Abstract:        paper.Abstract,
		PublicationDate: paper.PublicationDate,
		URL:             paper.URL,
		// No full-text access through the aggregation service.
		SourceBody: "",
	}

	if paper.Title != "" {
		meta.Title = paper.Title
	}

	for _, a := range paper.Authors {
		meta.Authors = append(meta.Authors, a.Name)
	}

	if paper.Venue != "" {
		meta.Venue = paper.Venue
		if paper.Year > 0 {
			meta.Venue += " " + strconv.Itoa(paper.Year)
		}
	}

	// Cross-archive references are informational only: the canonical URL
	// is appended beneath the primary one, no second fetch happens.
	if paper.ExternalIDs.ArXiv != "" {
		meta.URL += "\n" + arxivAbsBase + paper.ExternalIDs.ArXiv
	}
	if paper.ExternalIDs.ACL != "" {
		meta.URL += "\n" + aclAnthologyBase + paper.ExternalIDs.ACL
	}

	return meta, nil
}
