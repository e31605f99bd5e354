// Package match scores how well a resume covers the vocabulary of a job
// description. The score is the percentage of distinct content words from
// the job description that also appear in the resume.
package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"texttools/internal/domain/entity"
	"texttools/internal/nlp/language"
	"texttools/internal/nlp/tokenizer"
	"texttools/internal/observability/metrics"
)

// Sentinel errors for resume matching.
var (
	// ErrEmptyResume indicates no text could be extracted from the
	// uploaded resume.
	ErrEmptyResume = errors.New("resume contains no extractable text")

	// ErrNoJobKeywords indicates the job description contained no
	// content words after stop-word filtering.
	ErrNoJobKeywords = errors.New("job description contains no keywords")
)

// PDFExtractor extracts plain text from PDF bytes.
type PDFExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// Report is the outcome of scoring a resume against a job description.
type Report struct {
	// Score is the coverage percentage, capped at 100.
	Score float64
	// Matched lists the job-description keywords found in the resume,
	// sorted alphabetically.
	Matched []string
	// Missing lists the job-description keywords absent from the
	// resume, sorted alphabetically.
	Missing []string
}

// Service computes resume/job-description match reports.
type Service struct {
	extractor PDFExtractor
	tok       *tokenizer.Tokenizer
	resources *language.Resources
}

// NewService creates a match service bound to the given PDF extractor
// and language resources.
func NewService(extractor PDFExtractor, resources *language.Resources) *Service {
	return &Service{
		extractor: extractor,
		tok:       tokenizer.New(resources),
		resources: resources,
	}
}

// ScoreResume extracts text from the resume PDF and scores it against
// jobDescription.
//
// Returns entity.ErrBlankText if the job description is blank,
// ErrNoJobKeywords if it holds no content words, and ErrEmptyResume if
// the PDF yields no text.
func (s *Service) ScoreResume(ctx context.Context, resumePDF []byte, jobDescription string) (*Report, error) {
	if entity.Document(jobDescription).Blank() {
		return nil, entity.ErrBlankText
	}

	resumeText, err := s.extractor.ExtractText(ctx, resumePDF)
	if err != nil {
		return nil, fmt.Errorf("extract resume text: %w", err)
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyResume
	}

	jobWords := s.contentWords(jobDescription)
	if len(jobWords) == 0 {
		return nil, ErrNoJobKeywords
	}
	resumeWords := s.contentWords(resumeText)

	report := &Report{}
	for word := range jobWords {
		if _, ok := resumeWords[word]; ok {
			report.Matched = append(report.Matched, word)
		} else {
			report.Missing = append(report.Missing, word)
		}
	}
	sort.Strings(report.Matched)
	sort.Strings(report.Missing)

	report.Score = float64(len(report.Matched)) / float64(len(jobWords)) * 100
	if report.Score > 100 {
		report.Score = 100
	}

	metrics.RecordMatchScore(report.Score)
	return report, nil
}

// contentWords returns the set of distinct lower-cased alphanumeric
// words in text with stop words removed, mirroring the summarizer's
// frequency-table filter.
func (s *Service) contentWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, tok := range s.tok.SplitWords(text) {
		if !tok.Alphanumeric {
			continue
		}
		if s.resources.IsStopWord(tok.Normalized) {
			continue
		}
		words[tok.Normalized] = struct{}{}
	}
	return words
}
