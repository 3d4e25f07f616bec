// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NamingPolicy selects how a note filename is derived from a paper.
type NamingPolicy string

const (
	// NameIdentifier uses the raw paper identifier unchanged.
	NameIdentifier NamingPolicy = "identifier"

	NameFirst3Terms            NamingPolicy = "first-3-title-terms"
	NameFirst3TermsNoStopwords NamingPolicy = "first-3-title-terms-no-stopwords"
	NameFirst5Terms            NamingPolicy = "first-5-title-terms"
	NameFirst5TermsNoStopwords NamingPolicy = "first-5-title-terms-no-stopwords"
	NameAllTerms               NamingPolicy = "all-title-terms"
	NameAllTermsNoStopwords    NamingPolicy = "all-title-terms-no-stopwords"
)

// NamingPolicies lists the accepted policies in settings-display order.
var NamingPolicies = []NamingPolicy{
	NameIdentifier,
	NameFirst3Terms,
	NameFirst3TermsNoStopwords,
	NameFirst5Terms,
	NameFirst5TermsNoStopwords,
	NameAllTerms,
	NameAllTermsNoStopwords,
}

// Valid reports whether p is one of the accepted policies.
func (p NamingPolicy) Valid() bool {
	for _, known := range NamingPolicies {
		if p == known {
			return true
		}
	}
	return false
}
