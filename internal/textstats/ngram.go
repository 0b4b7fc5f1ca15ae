package textstats

import (
	"strings"

	"github.com/jackzampolin/spine/internal/types"
)

// CleanNgrams drops any multi-word phrase containing the same word twice
// (case-insensitive). Repeated words inside a phrase are a known artifact of
// repetitive or OCR-damaged text ("Models Models Applications").
func CleanNgrams(terms []types.WeightedTerm) []types.WeightedTerm {
	out := make([]types.WeightedTerm, 0, len(terms))
	for _, t := range terms {
		if hasRepeatedWord(t.Term) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// CleanNgramStrings is CleanNgrams over bare strings.
func CleanNgramStrings(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if hasRepeatedWord(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func hasRepeatedWord(phrase string) bool {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) < 2 {
		return false
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			return true
		}
		seen[w] = struct{}{}
	}
	return false
}
