// Package entity defines the domain types shared by the summarization
// pipeline: documents, sentences, tokens and their guards.
package entity

import "strings"

// Document is the raw input text for a single summarization request.
// It is immutable once received and discarded after the response.
type Document string

// Blank reports whether the document is empty or whitespace-only.
func (d Document) Blank() bool {
	return strings.TrimSpace(string(d)) == ""
}

// Sentence is a contiguous substring of a document with a stable
// 0-based position in document order. The index is assigned by the
// sentence tokenizer and is the only ordering information used when
// a summary is re-ordered for output.
type Sentence struct {
	Index int
	Text  string
}

// Token is a word-like substring extracted from a sentence or document.
// Normalized is the lower-cased form used for frequency matching.
// Alphanumeric marks tokens made entirely of letters and digits;
// punctuation artifacts produced by the word tokenizer carry false.
type Token struct {
	Text         string
	Normalized   string
	Alphanumeric bool
}

// ScoredSentence pairs a sentence with its computed importance score.
// It exists only while a summary is being ranked.
type ScoredSentence struct {
	Sentence Sentence
	Score    float64
}

// FrequencyTable maps a normalized content word to its raw occurrence
// count within a single document. It is never shared across requests
// and never persisted.
type FrequencyTable map[string]int

// Count returns the occurrence count for the normalized word w,
// or zero if the word is absent.
func (t FrequencyTable) Count(w string) int {
	return t[w]
}
