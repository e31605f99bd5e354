package summary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"texttools/internal/domain/entity"
	"texttools/internal/usecase/summary"
)

const fourSentenceDoc = "The cat sat. The cat ate fish. Dogs bark loudly. Fish swim fast."

func newService(t *testing.T) *summary.Service {
	t.Helper()
	return summary.NewService(newResources(t))
}

func TestSummarize_LeadingPolicy(t *testing.T) {
	svc := newService(t)

	result, err := svc.Summarize(context.Background(), fourSentenceDoc, 2, summary.PolicyLeading)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	want := []string{"The cat sat.", "The cat ate fish."}
	if diff := cmp.Diff(want, result.Summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
	if result.TotalSentences != 4 {
		t.Errorf("TotalSentences = %d, want 4", result.TotalSentences)
	}
	if result.Policy != summary.PolicyLeading {
		t.Errorf("Policy = %q, want %q", result.Policy, summary.PolicyLeading)
	}
}

func TestSummarize_GlobalPolicy(t *testing.T) {
	svc := newService(t)

	result, err := svc.Summarize(context.Background(), fourSentenceDoc, 2, summary.PolicyGlobal)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	// Scores: 0.6, 0.8333, 0.6, 0.8. Top two by score are sentences 1
	// and 3, returned in document order.
	want := []string{"The cat ate fish.", "Fish swim fast."}
	if diff := cmp.Diff(want, result.Summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_PassThroughWhenShortEnough(t *testing.T) {
	svc := newService(t)

	result, err := svc.Summarize(context.Background(), "One thing happened. Another followed.", 5, summary.PolicyLeading)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	want := []string{"One thing happened.", "Another followed."}
	if diff := cmp.Diff(want, result.Summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_NeverReturnsMoreThanCount(t *testing.T) {
	svc := newService(t)

	for count := 1; count <= 6; count++ {
		result, err := svc.Summarize(context.Background(), fourSentenceDoc, count, summary.PolicyGlobal)
		if err != nil {
			t.Fatalf("Summarize(count=%d) error = %v", count, err)
		}
		if len(result.Summary) > count {
			t.Errorf("count=%d: len(Summary) = %d, want <= %d", count, len(result.Summary), count)
		}
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	svc := newService(t)

	first, err := svc.Summarize(context.Background(), fourSentenceDoc, 2, summary.PolicyGlobal)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	second, err := svc.Summarize(context.Background(), fourSentenceDoc, 2, summary.PolicyGlobal)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if diff := cmp.Diff(first.Summary, second.Summary); diff != "" {
		t.Errorf("repeated call differs (-first +second):\n%s", diff)
	}
}

func TestSummarize_Guards(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name    string
		text    string
		count   int
		wantErr error
	}{
		{"blank text", "", 2, entity.ErrBlankText},
		{"whitespace only", "  \n\t ", 2, entity.ErrBlankText},
		{"single sentence", "Just one sentence here.", 2, entity.ErrInsufficientSentences},
		{"no terminators", "words without any boundary", 2, entity.ErrInsufficientSentences},
		{"zero count", fourSentenceDoc, 0, entity.ErrInvalidCount},
		{"negative count", fourSentenceDoc, -3, entity.ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Summarize(context.Background(), tt.text, tt.count, summary.PolicyLeading)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Summarize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSummarize_SummaryIsSubsequenceOfInput(t *testing.T) {
	svc := newService(t)

	result, err := svc.Summarize(context.Background(), fourSentenceDoc, 3, summary.PolicyGlobal)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	all := []string{"The cat sat.", "The cat ate fish.", "Dogs bark loudly.", "Fish swim fast."}
	pos := 0
	for _, s := range result.Summary {
		found := false
		for ; pos < len(all); pos++ {
			if all[pos] == s {
				found = true
				pos++
				break
			}
		}
		if !found {
			t.Fatalf("summary sentence %q not found in document order", s)
		}
	}
}
