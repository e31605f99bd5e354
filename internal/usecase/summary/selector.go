package summary

import (
	"fmt"
	"sort"

	"texttools/internal/domain/entity"
)

// Policy names a sentence selection strategy.
type Policy string

const (
	// PolicyLeading is the default policy. It reproduces the legacy
	// two-phase selection: the candidate pool is the first `count`
	// sentences in document order, and that pool is then ranked by
	// score. A sentence at document index >= count can never be
	// selected regardless of its score. This is a known scope-limiting
	// quirk preserved as specified behavior, not a bug to silently fix.
	PolicyLeading Policy = "leading"

	// PolicyGlobal is the corrected variant: top-k by score over all
	// sentences, then re-ordered by document position. Callers opt in
	// by name; it never replaces the default silently.
	PolicyGlobal Policy = "global"
)

// ParsePolicy maps a request string to a Policy. An empty string
// selects the default. Unknown names are rejected.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyLeading:
		return PolicyLeading, nil
	case PolicyGlobal:
		return PolicyGlobal, nil
	}
	return "", &entity.ValidationError{Field: "policy", Message: fmt.Sprintf("unknown policy %q", s)}
}

// Select picks `count` sentences according to the policy and returns
// them in original document order. Score order decides which sentences
// are kept, never how they are presented. Equal scores keep ascending
// index order (stable sort).
//
// Callers guarantee count >= 1 and len(scored) == len(sentences); the
// guard and pass-through steps live in the service.
func Select(scored []entity.ScoredSentence, count int, policy Policy) []entity.Sentence {
	pool := make([]entity.ScoredSentence, len(scored))
	copy(pool, scored)

	// Phase 1: the candidate pool. Leading keeps the earliest `count`
	// sentences; global considers everything.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Sentence.Index < pool[j].Sentence.Index
	})
	if policy == PolicyLeading && count < len(pool) {
		pool = pool[:count]
	}

	// Phase 2: rank the pool by score, descending, stable.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score > pool[j].Score
	})
	if count < len(pool) {
		pool = pool[:count]
	}

	// Output in original document order.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Sentence.Index < pool[j].Sentence.Index
	})

	selected := make([]entity.Sentence, len(pool))
	for i, s := range pool {
		selected[i] = s.Sentence
	}
	return selected
}
