package summary_test

import (
	"math"
	"testing"

	"texttools/internal/domain/entity"
	"texttools/internal/nlp/tokenizer"
	"texttools/internal/usecase/summary"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore(t *testing.T) {
	resources := newResources(t)
	tok := tokenizer.New(resources)

	doc := "The cat sat. The cat ate fish. Dogs bark loudly. Fish swim fast."
	table := summary.BuildFrequencyTable(doc, tok, resources)

	tests := []struct {
		name     string
		sentence string
		// tokens includes the trailing period artifact; the denominator
		// is token count + 1.
		want float64
	}{
		{
			name:     "first sentence",
			sentence: "The cat sat.",
			want:     3.0 / 5.0, // (cat 2 + sat 1) / (4 tokens + 1)
		},
		{
			name:     "second sentence",
			sentence: "The cat ate fish.",
			want:     5.0 / 6.0, // (cat 2 + ate 1 + fish 2) / (5 tokens + 1)
		},
		{
			name:     "fourth sentence",
			sentence: "Fish swim fast.",
			want:     4.0 / 5.0, // (fish 2 + swim 1 + fast 1) / (4 tokens + 1)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summary.Score(entity.Sentence{Text: tt.sentence}, table, tok)
			if !almostEqual(got, tt.want) {
				t.Errorf("Score(%q) = %v, want %v", tt.sentence, got, tt.want)
			}
		})
	}
}

func TestScore_StopWordsContributeNothing(t *testing.T) {
	resources := newResources(t)
	tok := tokenizer.New(resources)
	table := entity.FrequencyTable{"cat": 4}

	// "the" is a stop word so it never entered the table; it still
	// inflates the denominator via the token count.
	got := summary.Score(entity.Sentence{Text: "the the cat"}, table, tok)
	if !almostEqual(got, 1.0) { // 4 / (3 tokens + 1)
		t.Errorf("Score = %v, want 1.0", got)
	}
}

func TestScore_EmptyTable(t *testing.T) {
	resources := newResources(t)
	tok := tokenizer.New(resources)

	got := summary.Score(entity.Sentence{Text: "anything at all."}, entity.FrequencyTable{}, tok)
	if got != 0 {
		t.Errorf("Score = %v, want 0", got)
	}
}
