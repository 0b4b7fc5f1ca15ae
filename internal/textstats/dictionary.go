package textstats

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// dictionaryFalsePositiveRate sizes the Bloom filter backing dictionary
// lookups. A false positive admits a junk concept; it never drops a real one.
const dictionaryFalsePositiveRate = 0.0001

// DictionaryValidator answers whether a term is recognizable vocabulary:
// either present in a general dictionary or matching a curated suffix
// allowlist of technical compound terms. It is immutable after construction
// and safe to share across goroutines.
type DictionaryValidator struct {
	filter   *bloom.BloomFilter
	suffixes []string
}

// NewDictionaryValidator builds a validator over the given wordlist and
// compound-term suffixes. Empty slices fall back to the embedded defaults.
func NewDictionaryValidator(dictionary, suffixes []string) *DictionaryValidator {
	if len(dictionary) == 0 {
		dictionary = DefaultDictionary()
	}
	if len(suffixes) == 0 {
		suffixes = DefaultAllowlistSuffixes()
	}

	filter := bloom.NewWithEstimates(uint(len(dictionary)), dictionaryFalsePositiveRate)
	for _, w := range dictionary {
		filter.AddString(strings.ToLower(w))
	}

	normalized := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		// Stored with a leading hyphen so "api" does not match mid-word.
		if !strings.HasPrefix(s, "-") {
			s = "-" + s
		}
		normalized = append(normalized, s)
	}

	return &DictionaryValidator{filter: filter, suffixes: normalized}
}

// InDictionary reports whether the word might be in the general dictionary.
// False positives are possible at the configured rate; false negatives are not.
func (v *DictionaryValidator) InDictionary(word string) bool {
	return v.filter.TestString(strings.ToLower(word))
}

// MatchesAllowlist reports whether the term ends with a curated technical
// compound suffix (e.g. "-service", "-api").
func (v *DictionaryValidator) MatchesAllowlist(term string) bool {
	lower := strings.ToLower(term)
	for _, suffix := range v.suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// Accepts reports whether a term is usable as a concept: resolvable against
// the dictionary or matching the compound-term allowlist.
func (v *DictionaryValidator) Accepts(term string) bool {
	return v.InDictionary(term) || v.MatchesAllowlist(term)
}
