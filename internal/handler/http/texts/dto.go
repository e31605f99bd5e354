// Package texts provides HTTP handlers for the summarization endpoints.
package texts

import "time"

// SummaryDTO is the JSON shape of a summarization result.
type SummaryDTO struct {
	Summary        []string `json:"summary"`
	TotalSentences int      `json:"total_sentences"`
	Policy         string   `json:"policy"`
}

// ArticleSummaryDTO is the JSON shape of a URL summarization result.
type ArticleSummaryDTO struct {
	URL            string   `json:"url"`
	Summary        []string `json:"summary"`
	TotalSentences int      `json:"total_sentences"`
}

// FeedItemDTO is the JSON shape of one summarized feed entry.
type FeedItemDTO struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at,omitempty"`
	Summary     []string  `json:"summary,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// BatchItemDTO is the JSON shape of one document's batch result.
type BatchItemDTO struct {
	Summary        []string `json:"summary,omitempty"`
	TotalSentences int      `json:"total_sentences,omitempty"`
	Error          string   `json:"error,omitempty"`
}
