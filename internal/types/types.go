// Package types provides shared types used across multiple packages.
// This package has no dependencies on other spine packages to avoid import cycles.
package types

import (
	"fmt"
	"strings"
)

// DetectionMethod indicates which candidate source produced a chapter boundary.
type DetectionMethod string

const (
	// MethodExplicit indicates the boundary came from externally supplied metadata.
	MethodExplicit DetectionMethod = "explicit"
	// MethodTOC indicates the boundary was parsed from a table-of-contents page.
	MethodTOC DetectionMethod = "toc"
	// MethodMarker indicates the boundary matched a chapter marker pattern in page text.
	MethodMarker DetectionMethod = "marker"
	// MethodTopicShift indicates the boundary was inferred from a topic similarity drop.
	MethodTopicShift DetectionMethod = "topic_shift"
)

// ParseDetectionMethod converts a string to a DetectionMethod.
// Returns MethodMarker if the string is not recognized.
func ParseDetectionMethod(s string) DetectionMethod {
	switch s {
	case "explicit":
		return MethodExplicit
	case "toc":
		return MethodTOC
	case "marker":
		return MethodMarker
	case "topic_shift":
		return MethodTopicShift
	default:
		return MethodMarker
	}
}

// Page is a single page of document text. Pages are immutable and supplied
// externally; sequence order matters for adjacency-based detection but gaps
// in numbering are tolerated.
type Page struct {
	PageNumber int    `json:"page_number" yaml:"page_number"`
	Text       string `json:"text" yaml:"text"`
}

// ChapterBoundary is a validated chapter span within a document.
type ChapterBoundary struct {
	ChapterNumber int             `json:"chapter_number" yaml:"chapter_number"`
	Title         string          `json:"title" yaml:"title"`
	StartPage     int             `json:"start_page" yaml:"start_page"`
	EndPage       int             `json:"end_page" yaml:"end_page"`
	Method        DetectionMethod `json:"method" yaml:"method"`
}

// Validate checks the boundary's field invariants.
func (b ChapterBoundary) Validate() error {
	if b.ChapterNumber <= 0 {
		return fmt.Errorf("chapter number must be positive, got %d", b.ChapterNumber)
	}
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("chapter %d has empty title", b.ChapterNumber)
	}
	if b.StartPage > b.EndPage {
		return fmt.Errorf("chapter %d start page %d after end page %d", b.ChapterNumber, b.StartPage, b.EndPage)
	}
	return nil
}

// WeightedTerm is a ranked term. Lower score means higher salience; every
// ranker in spine preserves this convention.
type WeightedTerm struct {
	Term  string  `json:"term" yaml:"term"`
	Score float64 `json:"score" yaml:"score"`
}

// ExtractionResult holds the statistical metadata extracted from one text.
// Keywords and concepts are unique within one result, not across calls.
type ExtractionResult struct {
	Keywords []WeightedTerm `json:"keywords" yaml:"keywords"`
	Concepts []string       `json:"concepts" yaml:"concepts"`
	Summary  string         `json:"summary" yaml:"summary"`
}
