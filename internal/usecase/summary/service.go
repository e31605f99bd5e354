// Package summary implements the extractive summarization pipeline:
// tokenization, stop-word filtered term frequency, sentence scoring and
// order-preserving selection. Control flow is strictly linear; no stage
// calls back into an earlier one.
package summary

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"texttools/internal/domain/entity"
	"texttools/internal/nlp/language"
	"texttools/internal/nlp/tokenizer"
	"texttools/internal/observability/metrics"
	"texttools/internal/observability/tracing"
)

// Service provides extractive summarization over raw text.
// It holds only read-only state (the tokenizer and language resources)
// and is safe for unsynchronized concurrent use; every call is a pure,
// bounded computation over its own document.
type Service struct {
	tok       *tokenizer.Tokenizer
	resources *language.Resources
}

// NewService creates a summarization service bound to the given
// language resources.
func NewService(resources *language.Resources) *Service {
	return &Service{
		tok:       tokenizer.New(resources),
		resources: resources,
	}
}

// Result is the outcome of a summarization call.
type Result struct {
	// Summary holds the selected sentences in original document order.
	Summary []string
	// TotalSentences is the number of sentences detected in the input.
	TotalSentences int
	// Policy is the selection policy that was applied.
	Policy Policy
}

// Summarize selects the `count` most important sentences of text,
// preserving their original order.
//
// Returns entity.ErrBlankText if text is empty or whitespace-only,
// entity.ErrInsufficientSentences if fewer than two sentences are
// detected, and entity.ErrInvalidCount if count < 1. Once the guards
// pass, scoring and selection are total and cannot fail.
func (s *Service) Summarize(ctx context.Context, text string, count int, policy Policy) (*Result, error) {
	start := time.Now()

	_, span := tracing.GetTracer().Start(ctx, "summary.Summarize")
	defer span.End()

	if count < 1 {
		metrics.RecordSummary(string(policy), "invalid_count", 0)
		return nil, entity.ErrInvalidCount
	}
	if entity.Document(text).Blank() {
		metrics.RecordSummary(string(policy), "blank_text", 0)
		return nil, entity.ErrBlankText
	}

	sentences := s.tok.SplitSentences(text)
	if len(sentences) < 2 {
		metrics.RecordSummary(string(policy), "insufficient_sentences", 0)
		return nil, entity.ErrInsufficientSentences
	}

	result := &Result{TotalSentences: len(sentences), Policy: policy}

	// The whole document is too short to trim: return everything in
	// original order, no scoring needed.
	if len(sentences) <= count {
		result.Summary = sentenceTexts(sentences)
		s.finish(result, start, span)
		return result, nil
	}

	table := BuildFrequencyTable(text, s.tok, s.resources)

	scored := make([]entity.ScoredSentence, len(sentences))
	for i, sent := range sentences {
		scored[i] = entity.ScoredSentence{
			Sentence: sent,
			Score:    Score(sent, table, s.tok),
		}
	}

	result.Summary = sentenceTexts(Select(scored, count, policy))
	s.finish(result, start, span)

	slog.Debug("summary produced",
		slog.Int("sentences_total", result.TotalSentences),
		slog.Int("sentences_selected", len(result.Summary)),
		slog.Int("content_words", len(table)),
		slog.String("policy", string(policy)))

	return result, nil
}

func (s *Service) finish(result *Result, start time.Time, span trace.Span) {
	metrics.RecordSummary(string(result.Policy), "success", time.Since(start))
	metrics.RecordSummarySize(result.TotalSentences, len(result.Summary))
	span.SetAttributes(
		attribute.Int("summary.sentences_total", result.TotalSentences),
		attribute.Int("summary.sentences_selected", len(result.Summary)),
		attribute.String("summary.policy", string(result.Policy)),
	)
}

func sentenceTexts(sentences []entity.Sentence) []string {
	texts := make([]string, len(sentences))
	for i, s := range sentences {
		texts[i] = s.Text
	}
	return texts
}
