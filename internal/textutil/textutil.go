// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil provides the pure text transforms the note pipeline is
// built on: whitespace collapsing, stopword filtering, and filename
// sanitization.
package textutil

import "strings"

// Collapse replaces every run of whitespace with a single space and trims
// both ends. An all-whitespace input collapses to the empty string.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SanitizeFilename strips every character outside [A-Za-z0-9 ].
func SanitizeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsStopword reports whether the lower-cased form of word is in the fixed
// English stopword set.
func IsStopword(word string) bool {
	return stopwords[strings.ToLower(word)]
}

// stopwords is the fixed English stopword set used by the no-stopwords
// naming policies.
var stopwords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "aren't": true, "as": true, "at": true,
	"be": true, "because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "but": true, "by": true,
	"can't": true, "cannot": true, "could": true, "couldn't": true,
	"did": true, "didn't": true, "do": true, "does": true, "doesn't": true,
	"doing": true, "don't": true, "down": true, "during": true,
	"each": true, "few": true, "for": true, "from": true, "further": true,
	"had": true, "hadn't": true, "has": true, "hasn't": true, "have": true,
	"haven't": true, "having": true, "he": true, "he'd": true, "he'll": true,
	"he's": true, "her": true, "here": true, "here's": true, "hers": true,
	"herself": true, "him": true, "himself": true, "his": true, "how": true,
	"how's": true, "i": true, "i'd": true, "i'll": true, "i'm": true,
	"i've": true, "if": true, "in": true, "into": true, "is": true,
	"isn't": true, "it": true, "it's": true, "its": true, "itself": true,
	"let's": true, "me": true, "more": true, "most": true, "mustn't": true,
	"my": true, "myself": true, "no": true, "nor": true, "not": true,
	"of": true, "off": true, "on": true, "once": true, "only": true,
	"or": true, "other": true, "ought": true, "our": true, "ours": true,
	"ourselves": true, "out": true, "over": true, "own": true,
	"same": true, "shan't": true, "she": true, "she'd": true, "she'll": true,
	"she's": true, "should": true, "shouldn't": true, "so": true,
	"some": true, "such": true,
	"than": true, "that": true, "that's": true, "the": true, "their": true,
	"theirs": true, "them": true, "themselves": true, "then": true,
	"there": true, "there's": true, "these": true, "they": true,
	"they'd": true, "they'll": true, "they're": true, "they've": true,
	"this": true, "those": true, "through": true, "to": true, "too": true,
	"under": true, "until": true, "up": true, "very": true,
	"was": true, "wasn't": true, "we": true, "we'd": true, "we'll": true,
	"we're": true, "we've": true, "were": true, "weren't": true,
	"what": true, "what's": true, "when": true, "when's": true,
	"where": true, "where's": true, "which": true, "while": true,
	"who": true, "who's": true, "whom": true, "why": true, "why's": true,
	"with": true, "won't": true, "would": true, "wouldn't": true,
	"you": true, "you'd": true, "you'll": true, "you're": true,
	"you've": true, "your": true, "yours": true, "yourself": true,
	"yourselves": true,
}
