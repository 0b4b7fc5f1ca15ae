package config

import (
	"github.com/jackzampolin/spine/internal/detect"
)

// Config holds spine configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Detect  detect.Config `mapstructure:"detect" yaml:"detect"`
	Extract ExtractCfg    `mapstructure:"extract" yaml:"extract"`
}

// ExtractCfg configures the statistical extractor. Word lists left empty
// keep the embedded defaults.
type ExtractCfg struct {
	// KeywordMaxPhraseLength is the max n-gram width for ranked keywords.
	KeywordMaxPhraseLength int `mapstructure:"keyword_max_phrase_length" yaml:"keyword_max_phrase_length"`
	// DedupSimilarityThreshold collapses near-duplicate phrases.
	DedupSimilarityThreshold float64 `mapstructure:"dedup_similarity_threshold" yaml:"dedup_similarity_threshold"`
	// Language selects the stemmer language.
	Language string `mapstructure:"language" yaml:"language"`
	// Stopwords, Denylist, AllowlistSuffixes, Dictionary override the
	// embedded word lists.
	Stopwords         []string `mapstructure:"stopwords" yaml:"stopwords,omitempty"`
	Denylist          []string `mapstructure:"denylist" yaml:"denylist,omitempty"`
	AllowlistSuffixes []string `mapstructure:"allowlist_suffixes" yaml:"allowlist_suffixes,omitempty"`
	Dictionary        []string `mapstructure:"dictionary" yaml:"dictionary,omitempty"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Detect: detect.DefaultConfig(),
		Extract: ExtractCfg{
			KeywordMaxPhraseLength:   3,
			DedupSimilarityThreshold: 0.9,
			Language:                 "english",
		},
	}
}
