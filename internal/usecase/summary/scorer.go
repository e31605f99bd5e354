package summary

import (
	"texttools/internal/domain/entity"
	"texttools/internal/nlp/tokenizer"
)

// Score computes the importance of a sentence against a frequency
// table: the sum of the counts of its alphanumeric, lower-cased words
// that appear in the table, divided by (word count + 1).
//
// The +1 denominator avoids division by zero for degenerate sentences
// and slightly damps short sentences relative to longer ones carrying
// the same high-value words. Scoring parity depends on keeping it;
// do not replace it with a plain average. The word count includes
// punctuation artifacts, matching the raw token count of the sentence.
func Score(sentence entity.Sentence, table entity.FrequencyTable, tok *tokenizer.Tokenizer) float64 {
	tokens := tok.SplitWords(sentence.Text)

	sum := 0
	for _, t := range tokens {
		if !t.Alphanumeric {
			continue
		}
		sum += table.Count(t.Normalized)
	}

	return float64(sum) / float64(len(tokens)+1)
}
