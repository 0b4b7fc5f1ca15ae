package textstats

import (
	"math"
	"sort"
	"strings"
)

// Summarizer selects the most central sentences of a text up to a target
// ratio. Selected sentences are emitted verbatim and in their original
// order; the summarizer never paraphrases.
type Summarizer struct {
	stopwords map[string]struct{}
}

// NewSummarizer builds a summarizer over the given stopword list.
func NewSummarizer(stopwords []string) *Summarizer {
	if len(stopwords) == 0 {
		stopwords = DefaultStopwords()
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Summarizer{stopwords: set}
}

// Summarize returns the extractive summary for ratio in (0, 1]. An empty
// return value signals degenerate input; the caller is expected to apply the
// first-sentence fallback.
func (s *Summarizer) Summarize(text string, ratio float64) string {
	sents := Sentences(text)
	if len(sents) == 0 {
		return ""
	}
	if len(sents) == 1 {
		return sents[0]
	}

	// Word frequency over content words.
	freq := make(map[string]int)
	for _, w := range Words(text) {
		if _, stop := s.stopwords[w]; stop {
			continue
		}
		freq[w]++
	}
	if len(freq) == 0 {
		return ""
	}

	// Mean content-word frequency per sentence. Dividing by token count
	// keeps long sentences from winning on length alone.
	scores := make([]float64, len(sents))
	for i, sent := range sents {
		tokens := Words(sent)
		if len(tokens) == 0 {
			continue
		}
		var sum float64
		for _, w := range tokens {
			sum += float64(freq[w])
		}
		scores[i] = sum / float64(len(tokens))
	}

	target := int(math.Ceil(ratio * float64(len(sents))))
	if target < 1 {
		target = 1
	}
	if target >= len(sents) {
		target = len(sents) - 1 // summary must be shorter than the input
	}

	// Pick the highest-scoring sentences, earlier sentence winning ties,
	// then restore original order.
	idx := make([]int, len(sents))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if scores[idx[a]] != scores[idx[b]] {
			return scores[idx[a]] > scores[idx[b]]
		}
		return idx[a] < idx[b]
	})
	selected := idx[:target]
	sort.Ints(selected)

	parts := make([]string, len(selected))
	for i, j := range selected {
		parts[i] = sents[j]
	}
	return strings.Join(parts, " ")
}

// FirstSentenceFallback returns the first sentence terminated with a period,
// the documented degraded-output form.
func FirstSentenceFallback(text string) string {
	sents := Sentences(text)
	if len(sents) == 0 {
		return ""
	}
	first := sents[0]
	if !strings.HasSuffix(first, ".") && !strings.HasSuffix(first, "!") && !strings.HasSuffix(first, "?") {
		first += "."
	}
	return first
}
