package match_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"texttools/internal/domain/entity"
	"texttools/internal/nlp/language"
	"texttools/internal/usecase/match"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(_ context.Context, _ []byte) (string, error) {
	return s.text, s.err
}

func newService(t *testing.T, extractor match.PDFExtractor) *match.Service {
	t.Helper()
	resources, err := language.English()
	if err != nil {
		t.Fatalf("load language resources: %v", err)
	}
	return match.NewService(extractor, resources)
}

func TestScoreResume(t *testing.T) {
	svc := newService(t, &stubExtractor{
		text: "Seasoned Go developer. Built Kubernetes operators and Postgres pipelines.",
	})

	report, err := svc.ScoreResume(context.Background(), []byte("pdf"),
		"Looking for a Go developer with Kubernetes experience")
	if err != nil {
		t.Fatalf("ScoreResume() error = %v", err)
	}

	// Job keywords after stop-word filtering: looking, go, developer,
	// kubernetes, experience. The resume covers go, developer,
	// kubernetes.
	if want := 3.0 / 5.0 * 100; math.Abs(report.Score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", report.Score, want)
	}
	if diff := cmp.Diff([]string{"developer", "go", "kubernetes"}, report.Matched); diff != "" {
		t.Errorf("Matched mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"experience", "looking"}, report.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreResume_FullCoverage(t *testing.T) {
	svc := newService(t, &stubExtractor{text: "go developer kubernetes"})

	report, err := svc.ScoreResume(context.Background(), []byte("pdf"), "go developer kubernetes")
	if err != nil {
		t.Fatalf("ScoreResume() error = %v", err)
	}
	if report.Score != 100 {
		t.Errorf("Score = %v, want 100", report.Score)
	}
	if len(report.Missing) != 0 {
		t.Errorf("Missing = %v, want empty", report.Missing)
	}
}

func TestScoreResume_CaseInsensitive(t *testing.T) {
	svc := newService(t, &stubExtractor{text: "GO DEVELOPER"})

	report, err := svc.ScoreResume(context.Background(), []byte("pdf"), "go developer")
	if err != nil {
		t.Fatalf("ScoreResume() error = %v", err)
	}
	if report.Score != 100 {
		t.Errorf("Score = %v, want 100", report.Score)
	}
}

func TestScoreResume_BlankJobDescription(t *testing.T) {
	svc := newService(t, &stubExtractor{text: "anything"})

	_, err := svc.ScoreResume(context.Background(), []byte("pdf"), "   ")
	if !errors.Is(err, entity.ErrBlankText) {
		t.Fatalf("ScoreResume() error = %v, want ErrBlankText", err)
	}
}

func TestScoreResume_NoJobKeywords(t *testing.T) {
	svc := newService(t, &stubExtractor{text: "anything"})

	// Every word is a stop word, so no keywords survive filtering.
	_, err := svc.ScoreResume(context.Background(), []byte("pdf"), "the and of to")
	if !errors.Is(err, match.ErrNoJobKeywords) {
		t.Fatalf("ScoreResume() error = %v, want ErrNoJobKeywords", err)
	}
}

func TestScoreResume_EmptyResume(t *testing.T) {
	svc := newService(t, &stubExtractor{text: "  \n "})

	_, err := svc.ScoreResume(context.Background(), []byte("pdf"), "go developer")
	if !errors.Is(err, match.ErrEmptyResume) {
		t.Fatalf("ScoreResume() error = %v, want ErrEmptyResume", err)
	}
}

func TestScoreResume_ExtractorError(t *testing.T) {
	extractErr := errors.New("corrupt file")
	svc := newService(t, &stubExtractor{err: extractErr})

	_, err := svc.ScoreResume(context.Background(), []byte("pdf"), "go developer")
	if !errors.Is(err, extractErr) {
		t.Fatalf("ScoreResume() error = %v, want wrapped extractor error", err)
	}
}
