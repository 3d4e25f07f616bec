// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import "testing"

func TestCollapse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", "Attention Is All You Need", "Attention Is All You Need"},
		{"runs of spaces", "Attention   Is  All", "Attention Is All"},
		{"tabs and newlines", "Attention\tIs\nAll", "Attention Is All"},
		{"leading and trailing", "  padded  ", "padded"},
		{"only whitespace", " \t\n ", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collapse(tt.input); got != tt.want {
				t.Errorf("Collapse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain words", "Attention Need Paper", "Attention Need Paper"},
		{"punctuation stripped", "BERT: Pre-training of Deep", "BERT Pretraining of Deep"},
		{"unicode stripped", "naïve Bayes résumé", "nave Bayes rsum"},
		{"digits kept", "GPT-4 and 3 friends", "GPT4 and 3 friends"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsStopword(t *testing.T) {
	for _, word := range []string{"the", "The", "THE", "is", "all", "you", "of"} {
		if !IsStopword(word) {
			t.Errorf("IsStopword(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"attention", "need", "paper", ""} {
		if IsStopword(word) {
			t.Errorf("IsStopword(%q) = true, want false", word)
		}
	}
}
