// Package textstats implements deterministic, stateless statistical content
// extraction: keyword ranking, concept ranking, and extractive summarization
// over raw text, with shared noise filtering and stem deduplication. Nothing
// here performs I/O or keeps per-call state; an Extractor is safe to share
// across goroutines.
package textstats

import (
	"fmt"
	"strings"

	"github.com/jackzampolin/spine/internal/types"
)

// Config holds the immutable tuning knobs for an Extractor. Zero values fall
// back to the embedded defaults, so Config{} is a usable configuration.
type Config struct {
	// MaxPhraseLength caps ranked keyword n-gram width (default 3).
	MaxPhraseLength int
	// DedupSimilarityThreshold collapses near-duplicate phrases whose stem
	// sets overlap at or above this value (default 0.9).
	DedupSimilarityThreshold float64
	// Language selects the snowball stemmer (default "english").
	Language string
	// Stopwords, Denylist, AllowlistSuffixes, and Dictionary override the
	// embedded word lists; empty slices keep the defaults.
	Stopwords         []string
	Denylist          []string
	AllowlistSuffixes []string
	Dictionary        []string
}

// DefaultConfig returns the configuration used when callers have no opinion.
func DefaultConfig() Config {
	return Config{
		MaxPhraseLength:          3,
		DedupSimilarityThreshold: 0.9,
		Language:                 "english",
	}
}

// Extractor is the statistical extraction facade. Construct once, share
// freely; all methods are pure functions over their arguments.
type Extractor struct {
	keywords   *KeywordRanker
	concepts   *ConceptRanker
	summarizer *Summarizer
	noise      *NoiseFilter
	dedup      *StemDeduplicator
}

// New builds an Extractor from cfg.
func New(cfg Config) *Extractor {
	if cfg.MaxPhraseLength <= 0 {
		cfg.MaxPhraseLength = 3
	}
	if cfg.DedupSimilarityThreshold <= 0 || cfg.DedupSimilarityThreshold > 1 {
		cfg.DedupSimilarityThreshold = 0.9
	}
	if cfg.Language == "" {
		cfg.Language = "english"
	}

	dictionary := NewDictionaryValidator(cfg.Dictionary, cfg.AllowlistSuffixes)
	noise := NewNoiseFilter(cfg.Denylist, dictionary, cfg.Language)

	return &Extractor{
		keywords:   NewKeywordRanker(cfg.Stopwords, cfg.MaxPhraseLength),
		concepts:   NewConceptRanker(cfg.Stopwords, noise),
		summarizer: NewSummarizer(cfg.Stopwords),
		noise:      noise,
		dedup:      NewStemDeduplicator(cfg.Language, cfg.DedupSimilarityThreshold),
	}
}

// ExtractKeywords returns up to topN ranked keywords for the text, noise
// filtered and stem deduplicated, best first.
func (e *Extractor) ExtractKeywords(text string, topN int) ([]types.WeightedTerm, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	if topN <= 0 {
		return nil, fmt.Errorf("%w: topN must be positive, got %d", ErrInvalidParameter, topN)
	}

	ranked := e.keywords.RankAll(text)

	kept := ranked[:0:0]
	for _, t := range ranked {
		if e.noise.IsNoise(t.Term) {
			continue
		}
		kept = append(kept, t)
	}
	kept = CleanNgrams(kept)
	kept = e.dedup.Dedup(kept)

	if topN < len(kept) {
		kept = kept[:topN]
	}
	return kept, nil
}

// ExtractConcepts returns up to topN single-word concepts. When the
// centrality ranker yields nothing (degenerate input), concepts are derived
// deterministically from the keyword ranking instead.
func (e *Extractor) ExtractConcepts(text string, topN int) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	if topN <= 0 {
		return nil, fmt.Errorf("%w: topN must be positive, got %d", ErrInvalidParameter, topN)
	}

	concepts := e.concepts.Rank(text, topN)
	if len(concepts) == 0 {
		concepts = e.conceptsFromKeywords(text, topN)
	}

	concepts = CleanNgramStrings(concepts)
	concepts = e.dedup.DedupStrings(concepts)
	if topN < len(concepts) {
		concepts = concepts[:topN]
	}
	return concepts, nil
}

// GenerateSummary returns an extractive summary for ratio in (0, 1]. On
// degenerate input it degrades to the first sentence plus a period.
func (e *Extractor) GenerateSummary(text string, ratio float64) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	if ratio <= 0 || ratio > 1 {
		return "", fmt.Errorf("%w: ratio must be in (0, 1], got %g", ErrInvalidParameter, ratio)
	}

	summary := e.summarizer.Summarize(text, ratio)
	if summary == "" {
		summary = FirstSentenceFallback(text)
	}
	return summary, nil
}

// Extract runs all three extractions over the same text.
func (e *Extractor) Extract(text string, topN int, ratio float64) (*types.ExtractionResult, error) {
	keywords, err := e.ExtractKeywords(text, topN)
	if err != nil {
		return nil, err
	}
	concepts, err := e.ExtractConcepts(text, topN)
	if err != nil {
		return nil, err
	}
	summary, err := e.GenerateSummary(text, ratio)
	if err != nil {
		return nil, err
	}
	return &types.ExtractionResult{Keywords: keywords, Concepts: concepts, Summary: summary}, nil
}

// conceptsFromKeywords is the documented fallback: single words pulled from
// the keyword ranking, in rank order, that pass the concept gate.
func (e *Extractor) conceptsFromKeywords(text string, topN int) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, kw := range e.keywords.RankAll(text) {
		for _, word := range strings.Fields(kw.Term) {
			if _, dup := seen[word]; dup {
				continue
			}
			if !e.noise.IsValidConcept(word) {
				continue
			}
			seen[word] = struct{}{}
			out = append(out, word)
			if len(out) >= topN {
				return out
			}
		}
	}
	return out
}
