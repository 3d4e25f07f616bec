// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/paper-notes/pkg/types"
)

// arxivAPIBase is the arXiv metadata-query endpoint. Declared as a var so
// tests can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// missingTitle is the placeholder recorded when a source payload carries
// no title.
const missingTitle = "undefined"

// arXiv Atom feed XML structures. The feed carries its own <title> element
// before the first <entry>; decoding them into separate fields keeps the
// feed title out of the paper record.
type arxivFeed struct {
	Title   string       `xml:"title"`
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title     string        `xml:"title"`
	Summary   string        `xml:"summary"`
	Published string        `xml:"published"`
	Authors   []arxivAuthor `xml:"author"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

// fetchArxiv retrieves paper metadata from the arXiv API. Missing nodes
// degrade to the placeholder title or empty strings; only transport and
// decode failures abort.
func (f *Fetcher) fetchArxiv(ctx context.Context, arxivID, rawURL string) (types.PaperMetadata, error) {
	apiURL := fmt.Sprintf("%s?id_list=%s", arxivAPIBase, arxivID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return types.PaperMetadata{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.Config.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return types.PaperMetadata{}, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.PaperMetadata{}, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return types.PaperMetadata{}, fmt.Errorf("parsing arXiv response: %w", err)
	}

	meta := types.PaperMetadata{
		Title: missingTitle,
		URL:   rawURL,
		// arXiv has no venue concept.
		Venue: "",
	}

	if len(feed.Entries) == 0 {
		return meta, nil
	}

	entry := feed.Entries[0]
	if title := strings.TrimSpace(entry.Title); title != "" {
		meta.Title = title
	}
	meta.Abstract = strings.TrimSpace(entry.Summary)

	for _, a := range entry.Authors {
		meta.Authors = append(meta.Authors, strings.TrimSpace(a.Name))
	}

	// Truncate the RFC 3339 timestamp to its date portion.
	if entry.Published != "" {
		meta.PublicationDate = strings.SplitN(entry.Published, "T", 2)[0]
	}

	return meta, nil
}

// fetchArxivBody retrieves the paper's rendered full-text page and strips
// it to visible text. The page URL is the abstract URL with /abs/ replaced
// by /html/ and a v1 version suffix appended. Every failure is logged to w
// and swallowed; the note is still produced without a body.
func (f *Fetcher) fetchArxivBody(ctx context.Context, absURL string, w io.Writer) string {
	htmlURL := strings.Replace(absURL, "/abs/", "/html/", 1) + "v1"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, htmlURL, nil)
	if err != nil {
		fmt.Fprintf(w, "warning: full-text fetch skipped: %v\n", err)
		return ""
	}
	req.Header.Set("User-Agent", f.Config.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		fmt.Fprintf(w, "warning: full-text fetch failed: %v\n", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(w, "warning: full-text fetch returned HTTP %d\n", resp.StatusCode)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		fmt.Fprintf(w, "warning: full-text parse failed: %v\n", err)
		return ""
	}

	return doc.Find("body").Text()
}
