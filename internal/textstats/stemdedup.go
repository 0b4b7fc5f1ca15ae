package textstats

import (
	"strings"

	"github.com/jackzampolin/spine/internal/types"
)

// StemDeduplicator collapses keyword and concept lists to one surviving
// surface form per linguistic root. Single-word and multi-word entries are
// deduplicated independently: a phrase sharing a root with a single word is
// not a duplicate of it. The first (highest-ranked) form survives with its
// score intact.
type StemDeduplicator struct {
	language            string
	similarityThreshold float64
}

// NewStemDeduplicator builds a deduplicator. The similarity threshold
// controls near-duplicate phrase collapsing via stem-set overlap; values
// outside (0, 1] disable it.
func NewStemDeduplicator(language string, similarityThreshold float64) *StemDeduplicator {
	if language == "" {
		language = "english"
	}
	return &StemDeduplicator{language: language, similarityThreshold: similarityThreshold}
}

// Dedup returns the terms that survive stem deduplication, preserving input
// order and scores.
func (d *StemDeduplicator) Dedup(terms []types.WeightedTerm) []types.WeightedTerm {
	seen := make(map[string]struct{}, len(terms))
	var keptPhraseStems [][]string
	out := make([]types.WeightedTerm, 0, len(terms))

	for _, t := range terms {
		words := strings.Fields(strings.ToLower(strings.TrimSpace(t.Term)))
		if len(words) == 0 {
			continue
		}

		stems := make([]string, len(words))
		for i, w := range words {
			stems[i] = stemWord(w, d.language)
		}

		var key string
		if len(stems) == 1 {
			key = "w:" + stems[0]
		} else {
			key = "p:" + strings.Join(stems, " ")
		}
		if _, dup := seen[key]; dup {
			continue
		}

		// Near-duplicate collapse applies to phrases only: a phrase whose
		// stem set overlaps a kept phrase above the threshold is dropped.
		if len(stems) > 1 && d.similarityThreshold > 0 && d.similarityThreshold <= 1 {
			if nearDuplicate(stems, keptPhraseStems, d.similarityThreshold) {
				continue
			}
			keptPhraseStems = append(keptPhraseStems, stems)
		}

		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// DedupStrings is Dedup over bare strings, used for concept lists.
func (d *StemDeduplicator) DedupStrings(terms []string) []string {
	weighted := make([]types.WeightedTerm, len(terms))
	for i, t := range terms {
		weighted[i] = types.WeightedTerm{Term: t}
	}
	deduped := d.Dedup(weighted)
	out := make([]string, len(deduped))
	for i, t := range deduped {
		out[i] = t.Term
	}
	return out
}

// nearDuplicate reports whether the stem set of a candidate phrase overlaps
// any kept phrase's stem set at or above the threshold (Jaccard measure).
func nearDuplicate(stems []string, kept [][]string, threshold float64) bool {
	set := make(map[string]struct{}, len(stems))
	for _, s := range stems {
		set[s] = struct{}{}
	}
	for _, other := range kept {
		otherSet := make(map[string]struct{}, len(other))
		for _, s := range other {
			otherSet[s] = struct{}{}
		}
		inter := 0
		for s := range set {
			if _, ok := otherSet[s]; ok {
				inter++
			}
		}
		union := len(set) + len(otherSet) - inter
		if union > 0 && float64(inter)/float64(union) >= threshold {
			return true
		}
	}
	return false
}
