package textstats

import (
	"sort"
	"strings"
)

// conceptWindowSize is the sliding co-occurrence window, in filtered tokens.
const conceptWindowSize = 4

// ConceptRanker ranks single terms by degree centrality over a co-occurrence
// graph built from the text. Terms must pass the concept gate of the noise
// filter before they enter the graph. Degenerate input (too short to form
// any co-occurrence edge) yields an empty result; the extractor facade falls
// back to keyword-derived concepts in that case.
type ConceptRanker struct {
	stopwords map[string]struct{}
	noise     *NoiseFilter
}

// NewConceptRanker builds a ranker over the given stopwords and noise filter.
func NewConceptRanker(stopwords []string, noise *NoiseFilter) *ConceptRanker {
	if len(stopwords) == 0 {
		stopwords = DefaultStopwords()
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &ConceptRanker{stopwords: set, noise: noise}
}

// Rank returns up to topN concepts ordered by descending centrality, ties
// broken lexicographically so output is deterministic.
func (r *ConceptRanker) Rank(text string, topN int) []string {
	tokens := r.filteredTokens(text)
	if len(tokens) < 2 {
		return nil
	}

	// Weighted degree over a sliding window: each pair of distinct terms
	// appearing within the window contributes one unit to both endpoints.
	degree := make(map[string]int)
	for i := range tokens {
		for j := i + 1; j < len(tokens) && j < i+conceptWindowSize; j++ {
			if tokens[i] == tokens[j] {
				continue
			}
			degree[tokens[i]]++
			degree[tokens[j]]++
		}
	}
	if len(degree) == 0 {
		return nil
	}

	terms := make([]string, 0, len(degree))
	for t := range degree {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if degree[terms[i]] != degree[terms[j]] {
			return degree[terms[i]] > degree[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if topN < len(terms) {
		terms = terms[:topN]
	}
	return terms
}

func (r *ConceptRanker) filteredTokens(text string) []string {
	var out []string
	for _, w := range Words(text) {
		if _, stop := r.stopwords[w]; stop {
			continue
		}
		if !r.noise.IsValidConcept(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
