package textstats

import (
	"sort"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/jackzampolin/spine/internal/types"
)

// KeywordRanker ranks candidate phrases with an unsupervised co-occurrence
// measure (RAKE-style): text is split into candidate runs at stopwords,
// punctuation, and numbers, then each run is scored by the degree-to-frequency
// ratio of its words. No training step; identical input always yields
// identical output. Scores follow the lower-is-better convention.
type KeywordRanker struct {
	stopwords       map[string]struct{}
	maxPhraseLength int
}

// NewKeywordRanker builds a ranker. maxPhraseLength caps candidate n-gram
// width; longer runs are chunked into consecutive candidates of at most
// that width.
func NewKeywordRanker(stopwords []string, maxPhraseLength int) *KeywordRanker {
	if len(stopwords) == 0 {
		stopwords = DefaultStopwords()
	}
	if maxPhraseLength <= 0 {
		maxPhraseLength = 3
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &KeywordRanker{stopwords: set, maxPhraseLength: maxPhraseLength}
}

// RankAll returns every candidate phrase with its salience score, best
// (lowest score) first. Callers cap and deduplicate downstream at their own
// threshold.
func (r *KeywordRanker) RankAll(text string) []types.WeightedTerm {
	phrases := r.candidatePhrases(text)
	if len(phrases) == 0 {
		return nil
	}

	// Word degree and frequency over all candidate runs.
	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, phrase := range phrases {
		for _, w := range phrase {
			freq[w]++
			degree[w] += len(phrase)
		}
	}

	// Best (highest RAKE) score per unique surface form.
	rakeScores := make(map[string]float64, len(phrases))
	for _, phrase := range phrases {
		var s float64
		for _, w := range phrase {
			s += float64(degree[w]) / float64(freq[w])
		}
		term := strings.Join(phrase, " ")
		if prev, ok := rakeScores[term]; !ok || s > prev {
			rakeScores[term] = s
		}
	}

	out := make([]types.WeightedTerm, 0, len(rakeScores))
	for term, rake := range rakeScores {
		// Invert so that lower score means higher salience.
		out = append(out, types.WeightedTerm{Term: term, Score: 1.0 / (1.0 + rake)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// candidatePhrases splits text into stopword-delimited word runs, one slice
// of lowercase words per run.
func (r *KeywordRanker) candidatePhrases(text string) [][]string {
	var phrases [][]string
	for _, sentence := range Sentences(text) {
		var run []string
		flush := func() {
			for start := 0; start < len(run); start += r.maxPhraseLength {
				end := start + r.maxPhraseLength
				if end > len(run) {
					end = len(run)
				}
				phrases = append(phrases, run[start:end])
			}
			run = nil
		}

		tokens := words.FromString(sentence)
		for tokens.Next() {
			tok := tokens.Value()
			if strings.TrimSpace(tok) == "" {
				continue // whitespace never breaks a run
			}
			lower := strings.ToLower(tok)
			if !hasLetterOrDigit(lower) || isNumeric(lower) {
				flush()
				continue
			}
			if _, stop := r.stopwords[lower]; stop {
				flush()
				continue
			}
			run = append(run, lower)
		}
		flush()
	}
	return phrases
}
