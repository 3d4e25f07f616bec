// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package note

import (
	"strings"

	"github.com/pdiddy/paper-notes/internal/textutil"
	"github.com/pdiddy/paper-notes/pkg/types"
)

// Section headers of a rendered note, in order.
const (
	SectionTitle           = "Title"
	SectionAuthors         = "Authors"
	SectionURL             = "URL"
	SectionVenue           = "Venue"
	SectionPublicationDate = "Publication date"
	SectionAbstract        = "Abstract"
	SectionTags            = "Tags"
	SectionNotes           = "Notes"
)

// Render assembles the final note body. Free-text fields are
// whitespace-normalized before insertion; the URL block and the
// future-work text go in verbatim. The Notes section always starts with a
// "- " bullet, even when there is no future-work text.
func Render(meta types.PaperMetadata, enr types.Enrichment) string {
	title := textutil.Collapse(meta.Title)
	if title == "" {
		title = "undefined"
	}

	var b strings.Builder
	writeSection(&b, SectionTitle, title)
	writeSection(&b, SectionAuthors, textutil.Collapse(meta.AuthorString()))
	writeSection(&b, SectionURL, meta.URL)
	writeSection(&b, SectionVenue, textutil.Collapse(meta.Venue))
	writeSection(&b, SectionPublicationDate, textutil.Collapse(meta.PublicationDate))
	writeSection(&b, SectionAbstract, textutil.Collapse(meta.Abstract))
	writeSection(&b, SectionTags, textutil.Collapse(enr.Tags))
	writeSection(&b, SectionNotes, "- "+enr.FutureWork)
	return b.String()
}

func writeSection(b *strings.Builder, header, body string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString("# ")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
}
