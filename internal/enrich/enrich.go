// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich layers optional language-model output on top of paper
// metadata: a tag suggestion drawn from the tags already in the vault, and
// a short future-work summary extracted from the paper's full text.
//
// Both operations are best-effort. A failure is carried in the Result
// rather than returned, so the orchestration layer decides per call
// whether it degrades — it always does, enrichment never blocks note
// creation.
package enrich

import (
	"context"
	"strings"
)

// Marker is the glyph prefixed to machine-suggested content so the user
// can tell it apart from their own notes.
const Marker = "💻"

// Thresholds below which a completion is considered too short to keep.
const (
	minTagLength        = 3
	minFutureWorkLength = 10
	minBodyLength       = 50
)

// Backend performs a single chat completion.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Result carries either enrichment text or the classified reason it is
// missing. Text is empty whenever Err is set, and both are empty when the
// operation was skipped (disabled, or input below threshold).
type Result struct {
	Text string
	Err  error
}

// Enricher runs the two enrichment sub-operations. A nil Backend means
// enrichment is disabled; every operation then returns an empty Result
// without any network call.
type Enricher struct {
	Backend Backend
}

// Enabled reports whether a completion endpoint is configured.
func (e *Enricher) Enabled() bool {
	return e != nil && e.Backend != nil
}

// SuggestTags asks the completion endpoint to pick up to five of the
// vault's existing tags for the abstract. A usable suggestion (at least
// three characters) comes back marker-prefixed.
func (e *Enricher) SuggestTags(ctx context.Context, abstract string, knownTags []string) Result {
	if !e.Enabled() {
		return Result{}
	}

	prompt, err := renderTagPrompt(abstract, strings.Join(knownTags, " "))
	if err != nil {
		return Result{Err: err}
	}

	text, err := e.Backend.Complete(ctx, prompt)
	if err != nil {
		return Result{Err: err}
	}

	if len(text) >= minTagLength {
		text = Marker + " " + text
	}
	return Result{Text: text}
}

// ExtractFutureWork asks the completion endpoint for a summary (three
// sentences at most) of the future-work discussion in the paper body. It
// is skipped unless the body exceeds the minimum length; a usable summary
// (at least ten characters) comes back marker-prefixed.
func (e *Enricher) ExtractFutureWork(ctx context.Context, body string) Result {
	if !e.Enabled() || len(body) <= minBodyLength {
		return Result{}
	}

	prompt, err := renderFutureWorkPrompt(body)
	if err != nil {
		return Result{Err: err}
	}

	text, err := e.Backend.Complete(ctx, prompt)
	if err != nil {
		return Result{Err: err}
	}

	if len(text) >= minFutureWorkLength {
		text = Marker + " " + text
	}
	return Result{Text: text}
}
