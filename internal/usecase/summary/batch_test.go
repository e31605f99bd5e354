package summary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"texttools/internal/domain/entity"
	"texttools/internal/usecase/summary"
)

func TestSummarizeBatch(t *testing.T) {
	svc := newService(t)

	texts := []string{
		fourSentenceDoc,
		"",                       // per-item blank text error
		"Only one sentence here.", // per-item guard error
		"First point stands. Second point follows.",
	}

	items, err := svc.SummarizeBatch(context.Background(), texts, 2, summary.PolicyLeading)
	if err != nil {
		t.Fatalf("SummarizeBatch() error = %v", err)
	}
	if len(items) != len(texts) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(texts))
	}

	if items[0].Err != nil {
		t.Errorf("items[0].Err = %v, want nil", items[0].Err)
	}
	want := []string{"The cat sat.", "The cat ate fish."}
	if diff := cmp.Diff(want, items[0].Result.Summary); diff != "" {
		t.Errorf("items[0] summary mismatch (-want +got):\n%s", diff)
	}

	if !errors.Is(items[1].Err, entity.ErrBlankText) {
		t.Errorf("items[1].Err = %v, want ErrBlankText", items[1].Err)
	}
	if !errors.Is(items[2].Err, entity.ErrInsufficientSentences) {
		t.Errorf("items[2].Err = %v, want ErrInsufficientSentences", items[2].Err)
	}
	if items[3].Err != nil {
		t.Errorf("items[3].Err = %v, want nil", items[3].Err)
	}
}

func TestSummarizeBatch_EmptyInput(t *testing.T) {
	svc := newService(t)

	_, err := svc.SummarizeBatch(context.Background(), nil, 2, summary.PolicyLeading)
	var validationErr *entity.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("SummarizeBatch(nil) error = %v, want validation error", err)
	}
}

func TestSummarizeBatch_TooManyDocuments(t *testing.T) {
	svc := newService(t)

	texts := make([]string, summary.MaxBatchDocuments+1)
	for i := range texts {
		texts[i] = fourSentenceDoc
	}

	_, err := svc.SummarizeBatch(context.Background(), texts, 2, summary.PolicyLeading)
	var validationErr *entity.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("SummarizeBatch() error = %v, want validation error", err)
	}
}
