// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/paper-notes/pkg/types"
)

const arxivFeedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query: search_query=&amp;id_list=2301.07041</title>
  <entry>
    <id>http://arxiv.org/abs/2301.07041v1</id>
    <title>Attention Is All You Need</title>
    <summary>  We propose a new network architecture.  </summary>
    <published>2023-01-17T18:59:59Z</published>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
  </entry>
</feed>`

func testFetcher(client *http.Client) *Fetcher {
	return &Fetcher{
		Client: client,
		Config: types.HTTPConfig{UserAgent: "paper-notes/test"},
	}
}

func TestFetchArxivParsesFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id_list"); got != "2301.07041" {
			t.Errorf("id_list = %q, want %q", got, "2301.07041")
		}
		fmt.Fprint(w, arxivFeedFixture)
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	f := testFetcher(ts.Client())
	meta, err := f.fetchArxiv(context.Background(), "2301.07041", "https://arxiv.org/abs/2301.07041")
	if err != nil {
		t.Fatalf("fetchArxiv() error = %v", err)
	}

	// The feed-level <title> must not leak into the paper record.
	if meta.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q, want the entry title", meta.Title)
	}
	if meta.Abstract != "We propose a new network architecture." {
		t.Errorf("Abstract = %q", meta.Abstract)
	}
	wantAuthors := []string{"Ashish Vaswani", "Noam Shazeer"}
	if len(meta.Authors) != len(wantAuthors) {
		t.Fatalf("Authors = %v, want %v", meta.Authors, wantAuthors)
	}
	for i, a := range wantAuthors {
		if meta.Authors[i] != a {
			t.Errorf("Authors[%d] = %q, want %q", i, meta.Authors[i], a)
		}
	}
	if meta.PublicationDate != "2023-01-17" {
		t.Errorf("PublicationDate = %q, want date portion only", meta.PublicationDate)
	}
	if meta.Venue != "" {
		t.Errorf("Venue = %q, want empty (arXiv has no venue)", meta.Venue)
	}
	if meta.URL != "https://arxiv.org/abs/2301.07041" {
		t.Errorf("URL = %q, want the input URL", meta.URL)
	}
}

func TestFetchArxivEmptyFeedDegradesToPlaceholder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"><title>ArXiv Query</title></feed>`)
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	f := testFetcher(ts.Client())
	meta, err := f.fetchArxiv(context.Background(), "0000.00000", "https://arxiv.org/abs/0000.00000")
	if err != nil {
		t.Fatalf("fetchArxiv() error = %v, want degraded record", err)
	}
	if meta.Title != "undefined" {
		t.Errorf("Title = %q, want %q", meta.Title, "undefined")
	}
	if meta.Abstract != "" || len(meta.Authors) != 0 || meta.PublicationDate != "" {
		t.Errorf("missing fields must stay empty: %+v", meta)
	}
}

func TestFetchArxivServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	f := testFetcher(ts.Client())
	if _, err := f.fetchArxiv(context.Background(), "2301.07041", "https://arxiv.org/abs/2301.07041"); err == nil {
		t.Fatal("fetchArxiv() error = nil, want error on HTTP 500")
	}
}

func TestFetchArxivBodyStripsMarkup(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "v1") {
			t.Errorf("path = %q, want v1 version suffix", r.URL.Path)
		}
		fmt.Fprint(w, `<html><head><title>ignored</title></head><body><h1>Paper</h1><p>Future work includes scaling.</p></body></html>`)
	}))
	defer ts.Close()

	f := testFetcher(ts.Client())
	var log strings.Builder
	body := f.fetchArxivBody(context.Background(), ts.URL+"/abs/2301.07041", &log)

	if !strings.Contains(body, "Future work includes scaling.") {
		t.Errorf("body = %q, want visible text preserved", body)
	}
	if strings.Contains(body, "<p>") || strings.Contains(body, "ignored") {
		t.Errorf("body = %q, want markup and head content stripped", body)
	}
}

func TestFetchArxivBodyFailureIsSwallowed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	f := testFetcher(ts.Client())
	var log strings.Builder
	body := f.fetchArxivBody(context.Background(), ts.URL+"/abs/2301.07041", &log)

	if body != "" {
		t.Errorf("body = %q, want empty on failure", body)
	}
	if !strings.Contains(log.String(), "warning") {
		t.Errorf("log = %q, want a logged warning", log.String())
	}
}
