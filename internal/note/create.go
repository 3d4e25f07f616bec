// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package note

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/pdiddy/paper-notes/internal/enrich"
	"github.com/pdiddy/paper-notes/internal/source"
	"github.com/pdiddy/paper-notes/pkg/types"
)

// ErrBusy is returned when a note workflow is already in flight.
var ErrBusy = errors.New("a note workflow is already running")

// Store is the document store the workflow talks to.
type Store interface {
	// Exists reports whether a document is already present at path.
	Exists(path string) (bool, error)

	// Create materializes a new document at path. It fails if the
	// document already exists.
	Create(path, body string) error

	// OpenPath opens an existing document for the user.
	OpenPath(path string) error

	// Tags returns the tag labels already known to the store.
	Tags(ctx context.Context) ([]string, error)
}

// MetadataFetcher resolves a classified source into a metadata record.
type MetadataFetcher interface {
	Fetch(ctx context.Context, src source.Source, rawURL string, w io.Writer) (types.PaperMetadata, error)
}

// Creator wires the pipeline: classify, fetch, name, guard, enrich,
// render, create, open. One workflow runs at a time; a second invocation
// while one is in flight returns ErrBusy.
type Creator struct {
	Store    Store
	Fetcher  MetadataFetcher
	Enricher *enrich.Enricher
	Config   types.Config
	Out      io.Writer

	busy atomic.Bool
}

// CreateFromURL runs the whole workflow for one paper URL. Only an
// unsupported URL or a failed primary metadata fetch aborts it; every
// enrichment-adjacent failure degrades and the note is still created.
func (c *Creator) CreateFromURL(ctx context.Context, rawURL string) error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.busy.Store(false)

	url := strings.ToLower(strings.TrimSpace(rawURL))
	src := source.Classify(url)
	if src.Kind == source.KindUnsupported {
		return &source.UnsupportedURLError{URL: url}
	}

	switch src.Kind {
	case source.KindArxiv:
		fmt.Fprintln(c.Out, "Retrieving paper information from the arXiv API.")
	case source.KindAggregation:
		fmt.Fprintln(c.Out, "Retrieving paper information from the Semantic Scholar API.")
	}

	meta, err := c.Fetcher.Fetch(ctx, src, url, c.Out)
	if err != nil {
		return fmt.Errorf("fetching paper metadata: %w", err)
	}

	path := c.notePath(meta, src)

	exists, err := c.Store.Exists(path)
	if err != nil {
		return fmt.Errorf("checking for existing note: %w", err)
	}
	if exists {
		// Enrichment never runs in this branch; it would be wasted cost.
		fmt.Fprintln(c.Out, "Unable to create note. File already exists. Opening existing file.")
		return c.Store.OpenPath(path)
	}

	body := Render(meta, c.enrichMetadata(ctx, meta))

	if err := c.Store.Create(path, body); err != nil {
		return fmt.Errorf("creating note: %w", err)
	}
	fmt.Fprintf(c.Out, "created %s\n", path)
	return c.Store.OpenPath(path)
}

// notePath computes the target document path. The identifier comes from
// the input URL on the arXiv path and from the canonical URL the
// aggregation service reports otherwise.
func (c *Creator) notePath(meta types.PaperMetadata, src source.Source) string {
	id := src.ID
	if src.Kind == source.KindAggregation {
		if primary, _, _ := strings.Cut(meta.URL, "\n"); primary != "" {
			id = source.Identifier(primary)
		}
	}

	filename := Filename(meta.Title, c.Config.FileNaming, id)
	return filepath.Join(c.Config.FolderLocation, filename+".md")
}

// enrichMetadata runs both enrichment sub-operations, degrading each
// failure to an empty string after notifying the user.
func (c *Creator) enrichMetadata(ctx context.Context, meta types.PaperMetadata) types.Enrichment {
	if !c.Enricher.Enabled() {
		return types.Enrichment{}
	}

	known, err := c.Store.Tags(ctx)
	if err != nil {
		fmt.Fprintf(c.Out, "warning: reading vault tags: %v\n", err)
		known = nil
	}

	var enr types.Enrichment
	fmt.Fprintln(c.Out, "Querying the completion endpoint for tags. This may take a few seconds.")
	enr.Tags = c.degrade("tag suggestion", c.Enricher.SuggestTags(ctx, meta.Abstract, known))

	if len(meta.SourceBody) > 0 {
		fmt.Fprintln(c.Out, "Querying the completion endpoint for future work. This may take a few seconds.")
	}
	enr.FutureWork = c.degrade("future-work extraction", c.Enricher.ExtractFutureWork(ctx, meta.SourceBody))

	return enr
}

// degrade resolves an enrichment result to text, turning any classified
// failure into a user notice plus an empty string.
func (c *Creator) degrade(op string, r enrich.Result) string {
	if r.Err != nil {
		fmt.Fprintf(c.Out, "notice: %s failed, continuing without it (%v)\n", op, r.Err)
		return ""
	}
	return r.Text
}
