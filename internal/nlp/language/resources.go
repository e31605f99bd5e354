// Package language loads the static language resources used by the
// tokenizer and the frequency model: the stop-word list and the
// abbreviation list for sentence boundary detection.
//
// Resources are loaded once at process start and are immutable
// afterwards, so a single value can be shared by any number of
// concurrent summarization requests without synchronization.
package language

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed english.yaml
var englishYAML []byte

// Resources holds the read-only language data for one language.
// Construct it with Load (or English) during startup and pass it
// explicitly to the components that need it; there is no package-level
// mutable state.
type Resources struct {
	stopWords     map[string]struct{}
	abbreviations map[string]struct{}
}

// resourceFile mirrors the on-disk YAML layout.
type resourceFile struct {
	StopWords     []string `yaml:"stop_words"`
	Abbreviations []string `yaml:"abbreviations"`
}

// English loads the embedded English resources.
// A failure here is a configuration error and fatal to the process:
// summarization cannot run without stop words and abbreviations.
func English() (*Resources, error) {
	return Load(englishYAML)
}

// Load parses language resources from YAML data.
// Returns an error if the data cannot be parsed or the stop-word
// list is empty.
func Load(data []byte) (*Resources, error) {
	var file resourceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse language resources: %w", err)
	}
	if len(file.StopWords) == 0 {
		return nil, fmt.Errorf("language resources missing stop words")
	}

	r := &Resources{
		stopWords:     make(map[string]struct{}, len(file.StopWords)),
		abbreviations: make(map[string]struct{}, len(file.Abbreviations)),
	}
	for _, w := range file.StopWords {
		r.stopWords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	for _, a := range file.Abbreviations {
		r.abbreviations[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}
	return r, nil
}

// IsStopWord reports whether the lower-cased form of w is a stop word.
func (r *Resources) IsStopWord(w string) bool {
	_, ok := r.stopWords[strings.ToLower(w)]
	return ok
}

// IsAbbreviation reports whether w (without its trailing period) is a
// known abbreviation. The comparison is case-insensitive.
func (r *Resources) IsAbbreviation(w string) bool {
	_, ok := r.abbreviations[strings.ToLower(w)]
	return ok
}

// StopWordCount returns the number of loaded stop words.
func (r *Resources) StopWordCount() int {
	return len(r.stopWords)
}
