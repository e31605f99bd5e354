// Package tokenizer implements deterministic sentence and word
// tokenization for the summarization pipeline.
//
// Sentence splitting is rule-based: a terminator (".", "!", "?") ends a
// sentence only when it is not part of an abbreviation, an initialism or
// a decimal number, and when what follows looks like the start of a new
// sentence. Identical input always yields identical output; there is no
// randomness and no locale-dependent case folding beyond simple
// lower-casing.
package tokenizer

import (
	"strings"
	"unicode"

	"texttools/internal/domain/entity"
	"texttools/internal/nlp/language"
)

// Tokenizer splits raw text into sentences and word tokens.
// It is stateless apart from the read-only language resources and is
// safe for concurrent use.
type Tokenizer struct {
	resources *language.Resources
}

// New creates a Tokenizer bound to the given language resources.
func New(resources *language.Resources) *Tokenizer {
	return &Tokenizer{resources: resources}
}

// SplitSentences splits a document into sentences in document order.
// Each sentence carries its stable 0-based index. Concatenated, the
// sentences recover the document modulo whitespace.
//
// An empty or boundary-free document yields an empty or single-element
// slice; refusing to summarize short input is the selector's concern,
// not the tokenizer's.
func (t *Tokenizer) SplitSentences(document string) []entity.Sentence {
	runes := []rune(document)
	var sentences []entity.Sentence

	emit := func(start, end int) {
		text := strings.TrimSpace(string(runes[start:end]))
		if text == "" {
			return
		}
		sentences = append(sentences, entity.Sentence{Index: len(sentences), Text: text})
	}

	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Absorb terminator runs ("...", "?!") and closing quotes or brackets.
		end := i
		for end+1 < len(runes) && isTerminator(runes[end+1]) {
			end++
		}
		for end+1 < len(runes) && isCloser(runes[end+1]) {
			end++
		}

		if r == '.' && end == i && !t.periodEndsSentence(runes, start, i) {
			continue
		}

		// A boundary needs end-of-text, or whitespace followed by
		// sentence-start evidence (capital, digit, opening quote).
		next := end + 1
		if next < len(runes) {
			if !unicode.IsSpace(runes[next]) {
				i = end
				continue
			}
			after := next
			for after < len(runes) && unicode.IsSpace(runes[after]) {
				after++
			}
			if after < len(runes) && !isSentenceStart(runes[after]) {
				i = end
				continue
			}
		}

		emit(start, end+1)
		start = end + 1
		i = end
	}
	emit(start, len(runes))

	return sentences
}

// SplitWords splits text into word tokens in order. Tokens are maximal
// runs of letters and digits (with intra-word apostrophes kept, so
// "don't" stays one token) or runs of other non-space characters, which
// surface as punctuation artifacts with Alphanumeric set to false.
func (t *Tokenizer) SplitWords(text string) []entity.Token {
	runes := []rune(text)
	var tokens []entity.Token

	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		start := i
		if isWordRune(runes[i]) {
			for i < len(runes) && (isWordRune(runes[i]) || isInnerApostrophe(runes, i)) {
				i++
			}
			raw := string(runes[start:i])
			tokens = append(tokens, entity.Token{
				Text:         raw,
				Normalized:   strings.ToLower(raw),
				Alphanumeric: isAlphanumeric(raw),
			})
			continue
		}

		for i < len(runes) && !unicode.IsSpace(runes[i]) && !isWordRune(runes[i]) {
			i++
		}
		raw := string(runes[start:i])
		tokens = append(tokens, entity.Token{
			Text:         raw,
			Normalized:   strings.ToLower(raw),
			Alphanumeric: false,
		})
	}

	return tokens
}

// periodEndsSentence decides whether the period at index i terminates a
// sentence, looking back at the word it is attached to.
func (t *Tokenizer) periodEndsSentence(runes []rune, start, i int) bool {
	// Collect the word immediately before the period.
	w := i - 1
	for w >= start && !unicode.IsSpace(runes[w]) {
		w--
	}
	word := string(runes[w+1 : i])
	if word == "" {
		return true
	}

	// Decimal numbers: "3.14".
	if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) && unicode.IsDigit(runes[i-1]) {
		return false
	}

	// Initials and initialisms: "J." in "J. Smith", "U.S" in "U.S.".
	if len([]rune(word)) == 1 && unicode.IsUpper(runes[i-1]) {
		return false
	}
	if strings.ContainsRune(word, '.') {
		return false
	}

	// Known abbreviations: "Dr.", "etc.".
	if t.resources.IsAbbreviation(word) {
		return false
	}

	return true
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}

func isSentenceStart(r rune) bool {
	if unicode.IsUpper(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '"', '\'', '(', '[', '“', '‘':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isInnerApostrophe reports whether the rune at i is an apostrophe with
// word runes on both sides.
func isInnerApostrophe(runes []rune, i int) bool {
	if runes[i] != '\'' && runes[i] != '’' {
		return false
	}
	return i > 0 && isWordRune(runes[i-1]) && i+1 < len(runes) && isWordRune(runes[i+1])
}

// isAlphanumeric reports whether every rune in s is a letter or digit.
// This mirrors the "is alphanumeric" predicate used to filter tokens
// before frequency counting.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}
