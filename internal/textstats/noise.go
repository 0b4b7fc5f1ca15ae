package textstats

import (
	"strings"

	"github.com/kljensen/snowball"
)

// NoiseFilter rejects junk terms in three layers: a denylist of document and
// publisher artifacts (matched on the word stem, so "chapters" hits
// "chapter"), structural patterns (underscores, single characters, pure
// digits), and a concept-only dictionary gate. Immutable after construction.
type NoiseFilter struct {
	denyStems  map[string]struct{}
	dictionary *DictionaryValidator
	language   string
}

// NewNoiseFilter builds a filter from a denylist and a dictionary validator.
// An empty denylist falls back to the embedded defaults.
func NewNoiseFilter(denylist []string, dictionary *DictionaryValidator, language string) *NoiseFilter {
	if len(denylist) == 0 {
		denylist = DefaultDenylist()
	}
	if language == "" {
		language = "english"
	}

	stems := make(map[string]struct{}, len(denylist))
	for _, w := range denylist {
		stems[stemWord(w, language)] = struct{}{}
	}

	return &NoiseFilter{
		denyStems:  stems,
		dictionary: dictionary,
		language:   language,
	}
}

// IsNoise reports whether a term (single word or phrase) should be rejected
// outright. A phrase is noise if any of its words is noise.
func (f *NoiseFilter) IsNoise(term string) bool {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return true
	}
	if strings.HasPrefix(term, "_") || strings.HasSuffix(term, "_") {
		return true
	}

	parts := strings.Fields(term)
	if len(parts) == 0 {
		return true
	}
	for _, word := range parts {
		if f.isNoiseWord(word) {
			return true
		}
	}
	return false
}

// IsValidConcept applies the stricter concept gate on top of IsNoise: the
// term must be a single alphabetic word and either resolve against the
// general dictionary or match the technical compound allowlist. This keeps
// proper nouns and OCR junk out of concept lists.
func (f *NoiseFilter) IsValidConcept(term string) bool {
	term = strings.TrimSpace(strings.ToLower(term))
	if f.IsNoise(term) {
		return false
	}
	if !isAlphabetic(term) {
		return false
	}
	return f.dictionary.Accepts(term)
}

func (f *NoiseFilter) isNoiseWord(word string) bool {
	if len([]rune(word)) < 2 {
		return true
	}
	if isNumeric(word) {
		return true
	}
	if strings.HasPrefix(word, "_") || strings.HasSuffix(word, "_") {
		return true
	}
	_, denied := f.denyStems[stemWord(word, f.language)]
	return denied
}

// stemWord reduces a word to its snowball stem. On stemming failure the
// lowercased word itself is used, which only weakens dedup, never breaks it.
func stemWord(word, language string) string {
	stem, err := snowball.Stem(strings.ToLower(word), language, false)
	if err != nil || stem == "" {
		return strings.ToLower(word)
	}
	return stem
}
