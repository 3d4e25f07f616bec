// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package note derives filenames, renders note bodies, and orchestrates
// the URL-to-note workflow against the document store.
package note

import (
	"strings"

	"github.com/pdiddy/paper-notes/internal/textutil"
	"github.com/pdiddy/paper-notes/pkg/types"
)

// Filename derives a note filename from the paper title and the configured
// naming policy. The identifier policy returns the identifier unchanged,
// case and punctuation preserved. Title-based policies split the title on
// single spaces, optionally drop stopwords, truncate to the first 3 or 5
// terms, and strip every character outside [A-Za-z0-9 ]. A title that
// reduces to nothing falls back to the identifier. Unknown policies are
// treated as the identifier policy.
func Filename(title string, policy types.NamingPolicy, identifier string) string {
	if policy == types.NameIdentifier || !policy.Valid() {
		return identifier
	}

	limit := 0 // all terms
	switch {
	case strings.Contains(string(policy), "first-3-title-terms"):
		limit = 3
	case strings.Contains(string(policy), "first-5-title-terms"):
		limit = 5
	}
	dropStopwords := strings.Contains(string(policy), "no-stopwords")

	var kept []string
	for _, term := range strings.Split(title, " ") {
		if dropStopwords && textutil.IsStopword(term) {
			continue
		}
		kept = append(kept, term)
	}
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}

	name := textutil.SanitizeFilename(strings.Join(kept, " "))
	if strings.TrimSpace(name) == "" {
		return identifier
	}
	return name
}
