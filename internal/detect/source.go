// Package detect turns raw per-page document text into a validated,
// non-overlapping partition of the document into chapters. Candidate sources
// are tried in strict priority order and their proposals pass through a fixed
// filter chain; everything is deterministic and free of I/O.
package detect

import "github.com/jackzampolin/spine/internal/types"

// CandidateSource is a strategy producing unvalidated chapter boundary
// proposals. A source that finds nothing returns an empty slice; it never
// returns an error, since a malformed or unreadable page is simply treated
// as non-matching.
type CandidateSource interface {
	// Name identifies the source in logs and reports.
	Name() string
	// Detect proposes chapter boundaries for the given pages. The metadata
	// map is only consulted by sources that need it (Explicit).
	Detect(pages []types.Page, meta map[string]any) []types.ChapterBoundary
}

// Config holds the detection thresholds. Zero values fall back to defaults,
// so Config{} is usable.
type Config struct {
	// MinKeywordsForValidity is the content-density acceptance floor.
	MinKeywordsForValidity int `mapstructure:"min_keywords_for_validity" yaml:"min_keywords_for_validity"`
	// TOCNumberDensityThreshold is the isolated-number rejection ceiling.
	TOCNumberDensityThreshold int `mapstructure:"toc_number_density_threshold" yaml:"toc_number_density_threshold"`
	// MinChapterLength merges too-close topic-shift boundaries, in pages.
	MinChapterLength int `mapstructure:"min_chapter_length" yaml:"min_chapter_length"`
	// TopicShiftSimilarityThreshold is the similarity floor that triggers a split.
	TopicShiftSimilarityThreshold float64 `mapstructure:"topic_shift_similarity_threshold" yaml:"topic_shift_similarity_threshold"`
	// MarkerScanWindowLines is the per-page prefix scanned for regex markers.
	MarkerScanWindowLines int `mapstructure:"marker_scan_window_lines" yaml:"marker_scan_window_lines"`
	// TOCScanPages bounds the leading pages scanned for a contents page.
	TOCScanPages int `mapstructure:"toc_scan_pages" yaml:"toc_scan_pages"`
	// DensityPrefixChars bounds the start-page prefix fed to the validators.
	DensityPrefixChars int `mapstructure:"density_prefix_chars" yaml:"density_prefix_chars"`
	// TopicVectorSize is the top-K weighted-term vector width per page.
	TopicVectorSize int `mapstructure:"topic_vector_size" yaml:"topic_vector_size"`
}

// DefaultConfig returns the detection defaults.
func DefaultConfig() Config {
	return Config{
		MinKeywordsForValidity:        4,
		TOCNumberDensityThreshold:     8,
		MinChapterLength:              5,
		TopicShiftSimilarityThreshold: 0.3,
		MarkerScanWindowLines:         25,
		TOCScanPages:                  20,
		DensityPrefixChars:            2000,
		TopicVectorSize:               10,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MinKeywordsForValidity <= 0 {
		c.MinKeywordsForValidity = d.MinKeywordsForValidity
	}
	if c.TOCNumberDensityThreshold <= 0 {
		c.TOCNumberDensityThreshold = d.TOCNumberDensityThreshold
	}
	if c.MinChapterLength <= 0 {
		c.MinChapterLength = d.MinChapterLength
	}
	if c.TopicShiftSimilarityThreshold <= 0 || c.TopicShiftSimilarityThreshold >= 1 {
		c.TopicShiftSimilarityThreshold = d.TopicShiftSimilarityThreshold
	}
	if c.MarkerScanWindowLines <= 0 {
		c.MarkerScanWindowLines = d.MarkerScanWindowLines
	}
	if c.TOCScanPages <= 0 {
		c.TOCScanPages = d.TOCScanPages
	}
	if c.DensityPrefixChars <= 0 {
		c.DensityPrefixChars = d.DensityPrefixChars
	}
	if c.TopicVectorSize <= 0 {
		c.TopicVectorSize = d.TopicVectorSize
	}
	return c
}

// prefix returns the first n runes of text, the bounded window every
// validator operates on.
func prefix(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// lastPageNumber returns the highest page number in the sequence, or 0 for
// an empty document.
func lastPageNumber(pages []types.Page) int {
	last := 0
	for _, p := range pages {
		if p.PageNumber > last {
			last = p.PageNumber
		}
	}
	return last
}
