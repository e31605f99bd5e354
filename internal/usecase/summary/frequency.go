package summary

import (
	"texttools/internal/domain/entity"
	"texttools/internal/nlp/language"
	"texttools/internal/nlp/tokenizer"
)

// BuildFrequencyTable counts the content words of a document: tokens
// that are alphanumeric and whose lower-cased form is not a stop word.
// Case variants merge via lower-casing before counting.
//
// The table holds raw integer counts. Normalization happens during
// scoring, not here, so the table stays reusable for other scoring
// strategies.
//
// If every word is a stop word or non-alphanumeric the table is empty
// and all sentence scores come out zero; the selector's tie-break then
// decides. That is intended fallback behavior, not an error.
func BuildFrequencyTable(document string, tok *tokenizer.Tokenizer, resources *language.Resources) entity.FrequencyTable {
	table := make(entity.FrequencyTable)
	for _, t := range tok.SplitWords(document) {
		if !t.Alphanumeric {
			continue
		}
		if resources.IsStopWord(t.Normalized) {
			continue
		}
		table[t.Normalized]++
	}
	return table
}
